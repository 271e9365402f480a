package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"immat-api/models"
)

type MotorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

// FindAll returns every registration, ordered by frame number.
func (r *MotorcycleRepository) FindAll(ctx context.Context) ([]models.Motorcycle, error) {
	motorcycles := []models.Motorcycle{}
	if err := r.db.WithContext(ctx).Order("FrameNumber").Find(&motorcycles).Error; err != nil {
		return nil, fmt.Errorf("list motorcycles: %w", err)
	}
	return motorcycles, nil
}

// FindByFrameNumber returns ErrNotFound when no record has this key.
func (r *MotorcycleRepository) FindByFrameNumber(ctx context.Context, frameNumber string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	err := r.db.WithContext(ctx).Where("FrameNumber = ?", frameNumber).First(&motorcycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find motorcycle %s: %w", frameNumber, err)
	}
	return &motorcycle, nil
}

// CreateAll inserts the batch in a single transaction: either every record
// is stored or none is.
func (r *MotorcycleRepository) CreateAll(ctx context.Context, motorcycles []models.Motorcycle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range motorcycles {
			if err := tx.Create(&motorcycles[i]).Error; err != nil {
				return fmt.Errorf("insert motorcycle %s: %w", motorcycles[i].FrameNumber, err)
			}
		}
		return nil
	})
}

// UpdateColumns applies column updates to one record inside a transaction.
// A nil value stores NULL. Returns ErrNotFound when the key does not exist.
func (r *MotorcycleRepository) UpdateColumns(ctx context.Context, frameNumber string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var motorcycle models.Motorcycle
		if err := tx.Where("FrameNumber = ?", frameNumber).First(&motorcycle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find motorcycle %s: %w", frameNumber, err)
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&motorcycle).Updates(updates).Error; err != nil {
			return fmt.Errorf("update motorcycle %s: %w", frameNumber, err)
		}
		return nil
	})
}
