package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"immat-api/models"
)

type ProvinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) *ProvinceRepository {
	return &ProvinceRepository{db: db}
}

// DistinctProvinces returns each non-null, non-empty province once.
func (r *ProvinceRepository) DistinctProvinces(ctx context.Context) ([]string, error) {
	provinces := []string{}
	err := r.db.WithContext(ctx).Model(&models.Province{}).
		Distinct("province").
		Where("province IS NOT NULL AND province <> ''").
		Order("province").
		Pluck("province", &provinces).Error
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	return provinces, nil
}

// DistinctCities returns each non-null, non-empty city of the province once.
func (r *ProvinceRepository) DistinctCities(ctx context.Context, province string) ([]string, error) {
	cities := []string{}
	err := r.db.WithContext(ctx).Model(&models.Province{}).
		Distinct("ville").
		Where("province = ?", province).
		Where("ville IS NOT NULL AND ville <> ''").
		Order("ville").
		Pluck("ville", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("list cities of %s: %w", province, err)
	}
	return cities, nil
}
