package repository

import (
	"context"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p model.PaymentRecord) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) (model.PaymentRecord, error)
	UpdateStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) error
}
