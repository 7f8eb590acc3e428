package postgres

import (
	"context"

	"byteBrosStore/domain"

	"gorm.io/gorm"
)

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{
		DB: db,
	}
}

func (r *SupportRepository) Create(ctx context.Context, interaction *domain.SupportInteraction) error {
	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return err
	}

	return nil
}
