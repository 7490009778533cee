package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type Clock interface {
	Now() time.Time
}

// 注文ライフサイクルのオーケストレータ。
// create / validate pickup / cancel をそれぞれ1トランザクションで実行する。
type OrderUsecase struct {
	tx         repo.TransactionManager
	codes      PickupCodeGenerator
	settlement Settlement
	clock      Clock
}

func NewOrderUsecase(tx repo.TransactionManager, codes PickupCodeGenerator, settlement Settlement, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, codes: codes, settlement: settlement, clock: clock}
}

type CreateOrderInput struct {
	OfferID  int64
	Quantity int64
}

type CreateOrderOutput struct {
	ID         int64           `json:"id"`
	PickupCode string          `json:"pickup_code"`
	TotalValue decimal.Decimal `json:"total_value"`
	Status     string          `json:"status"`
}

// STORAGE_CONFLICTだけ全体を1回リトライする
func (u *OrderUsecase) withConflictRetry(fn func() error) error {
	err := fn()
	if IsKind(err, ErrStorageConflict) {
		return fn()
	}
	return err
}

// 在庫予約→決済→注文作成→PAIDへ、を1つの原子的な単位として実行する。
// 減算後に何かが失敗したらトランザクションごと巻き戻る（在庫は失われない）。
func (u *OrderUsecase) Create(ctx context.Context, consumerID int64, in CreateOrderInput) (CreateOrderOutput, error) {
	if consumerID <= 0 {
		return CreateOrderOutput{}, NewServiceError(ErrInvalidInput, "invalid consumer id")
	}
	if in.OfferID <= 0 {
		return CreateOrderOutput{}, NewServiceError(ErrInvalidInput, "invalid offer id")
	}
	if in.Quantity < 1 {
		return CreateOrderOutput{}, NewServiceError(ErrInvalidInput, "quantity must be >= 1")
	}

	var out CreateOrderOutput

	err := u.withConflictRetry(func() error {
		return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			//販売価格の確認
			offer, err := r.Offers().FindByID(ctx, in.OfferID)
			if err == repo.ErrNotFound {
				return NewServiceError(ErrOfferNotFound, "offer not found")
			}
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}

			//条件付きUPDATEで在庫を減算（足りないなら false）
			ok, err := r.Inventory().Reserve(ctx, in.OfferID, in.Quantity)
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}
			if !ok {
				return NewServiceError(ErrInsufficientStock, "insufficient stock")
			}

			//作成時点の価格で確定。以後変更しない。
			total := offer.SalePrice.Mul(decimal.NewFromInt(in.Quantity))

			res, err := u.settlement.Settle(ctx, consumerID, total)
			if err != nil {
				return NewServiceError(ErrInternal, "settlement error")
			}
			if !res.Approved {
				return NewServiceError(ErrPaymentRefused, "payment refused")
			}

			now := u.clock.Now()
			code := u.codes.Generate(consumerID, in.OfferID, in.Quantity, now)

			orderID, err := r.Orders().Create(ctx, model.Order{
				ConsumerID: consumerID,
				OfferID:    in.OfferID,
				Quantity:   in.Quantity,
				TotalValue: total,
				PickupCode: code,
				Status:     model.OrderStatusReserved,
				CreatedAt:  now,
			})
			if err == repo.ErrConflict {
				//コード衝突。リトライで別のナノ秒から作り直す。
				return NewServiceError(ErrStorageConflict, "pickup code collision")
			}
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}

			if _, err := r.Payments().Create(ctx, model.PaymentRecord{
				OrderID:     orderID,
				Method:      res.Method,
				Status:      model.PaymentStatusApproved,
				ExternalRef: res.ExternalRef,
				CreatedAt:   now,
				UpdatedAt:   now,
			}); err != nil {
				return NewServiceError(ErrInternal, "db error")
			}

			//決済済みなので即PAIDへ
			moved, err := r.Orders().TransitionStatus(ctx, orderID, model.OrderStatusReserved, model.OrderStatusPaid)
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}
			if !moved {
				return NewServiceError(ErrStorageConflict, "lost status update")
			}

			out = CreateOrderOutput{
				ID:         orderID,
				PickupCode: code,
				TotalValue: total,
				Status:     string(model.OrderStatusPaid),
			}
			return nil
		})
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}
	return out, nil
}

type PickupOutput struct {
	OfferTitle    string `json:"offer_title"`
	Establishment string `json:"establishment"`
}

// 受け取りコードの検証。成功後に同じコードで呼んでも二重適用にはならず、
// 常に ALREADY_PICKED_UP で失敗する。
func (u *OrderUsecase) ValidatePickup(ctx context.Context, code string) (PickupOutput, error) {
	code = NormalizePickupCode(code)
	if code == "" {
		return PickupOutput{}, NewServiceError(ErrInvalidInput, "code required")
	}

	var out PickupOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Orders().FindByCode(ctx, code)
		if err == repo.ErrNotFound {
			return NewServiceError(ErrCodeNotFound, "invalid code")
		}
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}

		if p.Status == model.OrderStatusPickedUp {
			return NewServiceError(ErrAlreadyPickedUp, "order already picked up")
		}
		if p.Status == model.OrderStatusCanceled {
			return NewServiceError(ErrOrderCanceled, "order canceled")
		}
		if !model.CanTransition(p.Status, model.OrderStatusPickedUp) {
			return NewServiceError(ErrInvalidState, "order cannot be picked up")
		}

		//読んだときのステータスを条件にして更新。0行なら並行で先に取られた。
		ok, err := r.Orders().MarkPickedUp(ctx, p.OrderID, p.Status, u.clock.Now())
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}
		if !ok {
			return NewServiceError(ErrAlreadyPickedUp, "order already picked up")
		}

		out = PickupOutput{
			OfferTitle:    p.OfferTitle,
			Establishment: p.Establishment,
		}
		return nil
	})

	if err != nil {
		return PickupOutput{}, err
	}
	return out, nil
}

// キャンセル。ステータス変更・在庫戻し・（PAIDだった場合の）返金を
// 1トランザクションでコミットする。
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewServiceError(ErrInvalidInput, "invalid order id")
	}

	return u.withConflictRetry(func() error {
		return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			o, err := r.Orders().FindByID(ctx, orderID)
			if err == repo.ErrNotFound {
				return NewServiceError(ErrOrderNotFound, "order not found")
			}
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}

			//終端ガード
			if !model.CanTransition(o.Status, model.OrderStatusCanceled) {
				return NewServiceError(ErrInvalidState, "order cannot be canceled")
			}

			moved, err := r.Orders().TransitionStatus(ctx, orderID, o.Status, model.OrderStatusCanceled)
			if err != nil {
				return NewServiceError(ErrInternal, "db error")
			}
			if !moved {
				//並行更新に負けた。リトライで現状を読み直す。
				return NewServiceError(ErrStorageConflict, "lost status update")
			}

			//在庫戻し
			if err := r.Inventory().Release(ctx, o.OfferID, o.Quantity); err != nil {
				return NewServiceError(ErrInternal, "db error")
			}

			//PAIDだった場合だけ返金
			if o.Status == model.OrderStatusPaid {
				p, err := r.Payments().FindByOrderID(ctx, orderID)
				if err != nil {
					return NewServiceError(ErrInternal, "db error")
				}
				if err := r.Payments().UpdateStatus(ctx, p.ID, model.PaymentStatusRefunded); err != nil {
					return NewServiceError(ErrInternal, "db error")
				}
			}

			return nil
		})
	})
}

func (u *OrderUsecase) ListByConsumer(ctx context.Context, consumerID int64) ([]repo.ConsumerOrderRow, error) {
	if consumerID <= 0 {
		return []repo.ConsumerOrderRow{}, NewServiceError(ErrInvalidInput, "invalid consumer id")
	}

	var rows []repo.ConsumerOrderRow

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		rows, err = r.Orders().ListByConsumer(ctx, consumerID)
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}
		return nil
	})

	if err != nil {
		return []repo.ConsumerOrderRow{}, err
	}
	return rows, nil
}

func (u *OrderUsecase) ListByEstablishment(ctx context.Context, establishmentID int64) ([]repo.EstablishmentOrderRow, error) {
	if establishmentID <= 0 {
		return []repo.EstablishmentOrderRow{}, NewServiceError(ErrInvalidInput, "invalid establishment id")
	}

	var rows []repo.EstablishmentOrderRow

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		rows, err = r.Orders().ListByEstablishment(ctx, establishmentID)
		if err != nil {
			return NewServiceError(ErrInternal, "db error")
		}
		return nil
	})

	if err != nil {
		return []repo.EstablishmentOrderRow{}, err
	}
	return rows, nil
}
