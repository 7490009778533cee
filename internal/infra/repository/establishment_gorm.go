package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type EstablishmentGormRepository struct {
	db *gorm.DB
}

func NewEstablishmentGormRepository(db *gorm.DB) *EstablishmentGormRepository {
	return &EstablishmentGormRepository{db: db}
}

func (r *EstablishmentGormRepository) Create(ctx context.Context, e model.Establishment) (int64, error) {
	err := r.db.WithContext(ctx).Create(&e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, repo.ErrConflict
	}
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (r *EstablishmentGormRepository) FindByID(ctx context.Context, establishmentID int64) (model.Establishment, error) {
	var e model.Establishment
	err := r.db.WithContext(ctx).Where("id = ?", establishmentID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Establishment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Establishment{}, err
	}
	return e, nil
}

func (r *EstablishmentGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Establishment, error) {
	var e model.Establishment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Establishment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Establishment{}, err
	}
	return e, nil
}
