// Package geo resolves province and ward codes through a cached directory.
package geo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"sportify/models"
)

const (
	provincesKey = "provinces"
	fetchTimeout = 10 * time.Second
)

// Service answers directory lookups from the cache, falling back to the
// upstream directory. Concurrent misses for the same key share one request.
type Service struct {
	dir    Directory
	cache  Cache
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(dir Directory, cache Cache, logger *zap.Logger) *Service {
	return &Service{dir: dir, cache: cache, logger: logger}
}

func (s *Service) ListProvinces(ctx context.Context) ([]models.LocationOption, error) {
	return s.load(ctx, provincesKey, func(ctx context.Context) ([]models.LocationOption, error) {
		return s.dir.ListProvinces(ctx)
	})
}

func (s *Service) ListWards(ctx context.Context, provinceCode string) ([]models.LocationOption, error) {
	return s.load(ctx, "wards:"+provinceCode, func(ctx context.Context) ([]models.LocationOption, error) {
		return s.dir.ListWards(ctx, provinceCode)
	})
}

// ResolveProvince finds the directory entry for provinceCode.
func (s *Service) ResolveProvince(ctx context.Context, provinceCode string) (models.LocationOption, error) {
	provinces, err := s.ListProvinces(ctx)
	if err != nil {
		return models.LocationOption{}, err
	}
	return find(provinces, provinceCode)
}

// ResolveWard finds the directory entry for wardCode within provinceCode.
func (s *Service) ResolveWard(ctx context.Context, provinceCode, wardCode string) (models.LocationOption, error) {
	wards, err := s.ListWards(ctx, provinceCode)
	if err != nil {
		return models.LocationOption{}, err
	}
	return find(wards, wardCode)
}

func (s *Service) load(ctx context.Context, key string, fetch func(context.Context) ([]models.LocationOption, error)) ([]models.LocationOption, error) {
	if options, ok := s.cache.Get(ctx, key); ok {
		return options, nil
	}
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		// Waiters share this fetch, so one caller leaving must not fail the rest.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		options, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(fetchCtx, key, options)
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Coalesced directory lookup", zap.String("key", key))
	}
	return v.([]models.LocationOption), nil
}

func find(options []models.LocationOption, code string) (models.LocationOption, error) {
	for _, o := range options {
		if o.Code == code {
			return o, nil
		}
	}
	return models.LocationOption{}, fmt.Errorf("%w: %s", ErrUnknownCode, code)
}
