package complexRepo

import (
	"context"
	"errors"

	"sportify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no complex matches the lookup.
var ErrNotFound = errors.New("complex not found")

// ComplexRepository stores complexes created through the setup wizard.
type ComplexRepository interface {
	Create(ctx context.Context, rec models.ComplexRecord) error
	GetByID(ctx context.Context, id string) (*models.ComplexRecord, error)
	ListByOperator(ctx context.Context, operatorID string) ([]models.ComplexRecord, error)
}

type mongoComplexRepo struct {
	coll *mongo.Collection
}

// NewMongoComplexRepo constructs a ComplexRepository on the given database.
func NewMongoComplexRepo(db *mongo.Database) ComplexRepository {
	return &mongoComplexRepo{
		coll: db.Collection("complexes"),
	}
}
