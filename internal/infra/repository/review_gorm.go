package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv model.Review) (int64, error) {
	err := r.db.WithContext(ctx).Create(&rv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, repo.ErrConflict
	}
	if err != nil {
		return 0, err
	}
	return rv.ID, nil
}

func (r *ReviewGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.Review, bool, error) {
	var rv model.Review
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Review{}, false, nil
	}
	if err != nil {
		return model.Review{}, false, err
	}
	return rv, true, nil
}
