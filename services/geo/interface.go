package geo

import (
	"context"
	"errors"

	"sportify/models"
)

// ErrUnknownCode is returned when a province or ward code is not in the directory.
var ErrUnknownCode = errors.New("unknown location code")

// Directory is the upstream province/ward lookup service.
type Directory interface {
	ListProvinces(ctx context.Context) ([]models.LocationOption, error)
	ListWards(ctx context.Context, provinceCode string) ([]models.LocationOption, error)
}

// Cache stores directory listings by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]models.LocationOption, bool)
	Set(ctx context.Context, key string, options []models.LocationOption)
}
