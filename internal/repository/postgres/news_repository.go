package postgres

import (
	"context"

	"byteBrosStore/domain"

	"gorm.io/gorm"
)

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{
		DB: db,
	}
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]domain.News, error) {
	var news []domain.News

	err := r.DB.WithContext(ctx).Order("data DESC").Find(&news).Error
	if err != nil {
		return nil, err
	}

	return news, nil
}

func (r *NewsRepository) Create(ctx context.Context, item *domain.News) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}

	return nil
}
