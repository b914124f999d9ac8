// Command seed fills the complexes collection with demo complexes built
// through the setup wizard, and prints an operator token for local testing.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"sportify/config"
	"sportify/database"
	complexRepo "sportify/database/repository/complex"
	draftRepo "sportify/database/repository/draft"
	"sportify/models"
	"sportify/services/draft"
	"sportify/services/submission"
	"sportify/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const operatorID = "seed-operator"

// fixedLocations answers lookups without the remote directory.
type fixedLocations struct{}

func (fixedLocations) ResolveProvince(_ context.Context, code string) (models.LocationOption, error) {
	return models.LocationOption{Code: code, Label: "Thanh pho Ho Chi Minh", Value: code}, nil
}

func (fixedLocations) ResolveWard(_ context.Context, _, code string) (models.LocationOption, error) {
	return models.LocationOption{Code: code, Label: "Phuong Ben Thanh", Value: code}, nil
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := database.InitDB(logger); err != nil {
		log.Fatalf("seed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.CloseDB(context.Background()) //nolint:errcheck

	// Clear previously seeded complexes.
	db := database.Database()
	if _, err := db.Collection("complexes").DeleteMany(ctx, bson.M{"operatorId": operatorID}); err != nil {
		log.Fatalf("Failed to clear complexes collection: %v", err)
	}

	repo := complexRepo.NewMongoComplexRepo(db)
	svc := &draft.DefaultDraftService{
		Store:     draftRepo.NewMemoryDraftStore(0),
		Locations: fixedLocations{},
		Submitter: &submission.StoreSubmitter{Repo: repo, Logger: logger},
		NewID:     utils.NewID,
		Settings:  draft.Settings{DefaultSlotMinutes: config.AppConfig.DefaultSlotMinutes, MaxBulkFields: config.AppConfig.MaxBulkFields},
		Logger:    logger,
	}

	fieldTypes := []models.FieldType{models.FieldType5, models.FieldType7, models.FieldType11}
	for i := 1; i <= 5; i++ {
		id, err := seedComplex(ctx, svc, i, fieldTypes[rand.Intn(len(fieldTypes))])
		if err != nil {
			log.Fatalf("Failed to seed complex %d: %v", i, err)
		}
		fmt.Printf("Inserted complex %s\n", id)
	}

	token, err := utils.GenerateToken(operatorID, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to mint operator token: %v", err)
	}
	fmt.Printf("Operator token (%s): %s\n", operatorID, token)
}

// seedComplex walks one draft through every wizard step and submits it.
func seedComplex(ctx context.Context, svc draft.DraftService, n int, fieldType models.FieldType) (string, error) {
	v, err := svc.Create(ctx, operatorID)
	if err != nil {
		return "", err
	}
	id := v.Draft.ID

	open, closing := models.MustTimeOfDay("06:00"), models.MustTimeOfDay("22:00")
	info := models.ComplexInfo{
		Name:        fmt.Sprintf("Demo Complex %d", n),
		Street:      fmt.Sprintf("%d Le Loi", 10+n),
		Province:    "79",
		Ward:        "26743",
		Phone:       fmt.Sprintf("090000%04d", n),
		OpeningTime: &open,
		ClosingTime: &closing,
	}
	if _, err := svc.UpdateComplex(ctx, operatorID, id, info); err != nil {
		return "", err
	}
	if _, err := svc.Next(ctx, operatorID, id); err != nil {
		return "", err
	}

	v, err = svc.BulkAddFields(ctx, operatorID, id, "Pitch {number}", 1+rand.Intn(3), fieldType)
	if err != nil {
		return "", err
	}
	if _, err := svc.Next(ctx, operatorID, id); err != nil {
		return "", err
	}

	// Back-to-back 90 minute slots from opening, evening slots priced higher.
	source := v.Draft.Fields[0].ID
	for start := open; start.Add(90) <= closing; start = start.Add(90) {
		price := 200000.0
		if start >= models.MustTimeOfDay("17:00") {
			price = 350000.0
		}
		in := models.SlotInput{StartTime: start.String(), EndTime: start.Add(90).String(), Price: &price}
		if _, err := svc.AddSlot(ctx, operatorID, id, source, in); err != nil {
			return "", err
		}
	}
	if len(v.Draft.Fields) > 1 {
		if _, err := svc.ApplyToAll(ctx, operatorID, id, source); err != nil {
			return "", err
		}
	}
	if _, err := svc.Next(ctx, operatorID, id); err != nil {
		return "", err
	}

	res, err := svc.Submit(ctx, operatorID, id)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}
