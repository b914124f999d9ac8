package complexRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sportify/models"
)

func (r *mongoComplexRepo) Create(ctx context.Context, rec models.ComplexRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, rec)
	return err
}

func (r *mongoComplexRepo) GetByID(ctx context.Context, id string) (*models.ComplexRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.ComplexRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *mongoComplexRepo) ListByOperator(ctx context.Context, operatorID string) ([]models.ComplexRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"operatorId": operatorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.ComplexRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
