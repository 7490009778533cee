package repository

import (
	"context"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r model.Review) (int64, error)

	//注文に対する評価の有無
	FindByOrderID(ctx context.Context, orderID int64) (model.Review, bool, error)
}
