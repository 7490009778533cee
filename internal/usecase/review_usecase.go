package usecase

import (
	"context"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type ReviewUsecase struct {
	tx    repo.TransactionManager
	clock Clock
}

func NewReviewUsecase(tx repo.TransactionManager, clock Clock) *ReviewUsecase {
	return &ReviewUsecase{tx: tx, clock: clock}
}

type CreateReviewInput struct {
	OrderID int64
	Rating  int
	Comment string
}

// 受け取り済みの自分の注文にだけ評価を付けられる。注文ごとに1件。
func (u *ReviewUsecase) Create(ctx context.Context, consumerID int64, in CreateReviewInput) (int64, error) {
	if consumerID <= 0 {
		return 0, NewServiceError(ErrInvalidInput, "invalid consumer id")
	}
	if in.OrderID <= 0 {
		return 0, NewServiceError(ErrInvalidInput, "invalid order id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return 0, NewServiceError(ErrInvalidInput, "rating must be between 1 and 5")
	}

	var reviewID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return NewServiceError(ErrOrderNotFound, "order not found")
		}
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}

		//他人の注文は「存在しない扱い」にする
		if o.ConsumerID != consumerID {
			return NewServiceError(ErrOrderNotFound, "order not found")
		}
		if o.Status != model.OrderStatusPickedUp {
			return NewServiceError(ErrInvalidState, "order not picked up")
		}

		if _, found, err := r.Reviews().FindByOrderID(ctx, in.OrderID); err != nil {
			return NewServiceError(ErrInternal, "db error")
		} else if found {
			return NewServiceError(ErrInvalidState, "order already reviewed")
		}

		reviewID, err = r.Reviews().Create(ctx, model.Review{
			OrderID:   in.OrderID,
			Rating:    in.Rating,
			Comment:   in.Comment,
			CreatedAt: u.clock.Now(),
		})
		if err == repo.ErrConflict {
			return NewServiceError(ErrInvalidState, "order already reviewed")
		}
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return reviewID, nil
}
