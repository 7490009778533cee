package repository

import (
	"context"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

type EstablishmentRepository interface {
	Create(ctx context.Context, e model.Establishment) (int64, error)
	FindByID(ctx context.Context, establishmentID int64) (model.Establishment, error)
	FindByUserID(ctx context.Context, userID int64) (model.Establishment, error)
}
