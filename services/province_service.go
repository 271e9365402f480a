package services

import (
	"context"
	"strings"

	"immat-api/models"
)

// ProvinceStore reads the province/city reference table.
type ProvinceStore interface {
	DistinctProvinces(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context, province string) ([]string, error)
}

type ProvinceService struct {
	store ProvinceStore
}

func NewProvinceService(store ProvinceStore) *ProvinceService {
	return &ProvinceService{store: store}
}

func (s *ProvinceService) ListProvinces(ctx context.Context) ([]models.ProvinceRow, error) {
	provinces, err := s.store.DistinctProvinces(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ProvinceRow, len(provinces))
	for i, p := range provinces {
		rows[i] = models.ProvinceRow{Province: p}
	}
	return rows, nil
}

// ListCities fails with ErrMissingParameter before touching storage when
// the province is empty.
func (s *ProvinceService) ListCities(ctx context.Context, province string) ([]string, error) {
	if strings.TrimSpace(province) == "" {
		return nil, ErrMissingParameter
	}
	return s.store.DistinctCities(ctx, province)
}
