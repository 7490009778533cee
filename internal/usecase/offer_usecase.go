package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type OfferUsecase struct {
	offers         repo.OfferRepository
	establishments repo.EstablishmentRepository
	clock          Clock
}

func NewOfferUsecase(offers repo.OfferRepository, establishments repo.EstablishmentRepository, clock Clock) *OfferUsecase {
	return &OfferUsecase{offers: offers, establishments: establishments, clock: clock}
}

type CreateOfferInput struct {
	Title         string
	Description   string
	Category      string
	OriginalPrice decimal.Decimal
	SalePrice     decimal.Decimal
	Stock         int64
	PickupStart   string
	PickupEnd     string
}

func (u *OfferUsecase) Create(ctx context.Context, establishmentID int64, in CreateOfferInput) (int64, error) {
	if establishmentID <= 0 {
		return 0, NewServiceError(ErrInvalidInput, "invalid establishment id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewServiceError(ErrInvalidInput, "title required")
	}
	if !in.SalePrice.IsPositive() {
		return 0, NewServiceError(ErrInvalidInput, "sale price must be > 0")
	}
	//割引になっていないオファーは作れない
	if in.SalePrice.GreaterThanOrEqual(in.OriginalPrice) {
		return 0, NewServiceError(ErrInvalidInput, "sale price must be < original price")
	}
	if in.Stock < 1 {
		return 0, NewServiceError(ErrInvalidInput, "stock must be >= 1")
	}
	if strings.TrimSpace(in.PickupStart) == "" || strings.TrimSpace(in.PickupEnd) == "" {
		return 0, NewServiceError(ErrInvalidInput, "pickup window required")
	}

	//店舗の存在確認
	_, err := u.establishments.FindByID(ctx, establishmentID)
	if err == repo.ErrNotFound {
		return 0, NewServiceError(ErrInvalidInput, "establishment not found")
	}
	if err != nil {
		return 0, NewServiceError(ErrInternal, "db error")
	}

	id, err := u.offers.Create(ctx, model.Offer{
		EstablishmentID: establishmentID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Category:        in.Category,
		OriginalPrice:   in.OriginalPrice,
		SalePrice:       in.SalePrice,
		InitialStock:    in.Stock,
		CurrentStock:    in.Stock,
		PickupStart:     strings.TrimSpace(in.PickupStart),
		PickupEnd:       strings.TrimSpace(in.PickupEnd),
		Status:          model.OfferStatusActive,
		CreatedAt:       u.clock.Now(),
	})
	if err != nil {
		return 0, NewServiceError(ErrInternal, "db error")
	}
	return id, nil
}

func (u *OfferUsecase) ListActive(ctx context.Context) ([]repo.ActiveOfferRow, error) {
	rows, err := u.offers.ListActive(ctx)
	if err != nil {
		return []repo.ActiveOfferRow{}, NewServiceError(ErrInternal, "db error")
	}
	return rows, nil
}

// 一時停止（ACTIVE → PAUSED）
func (u *OfferUsecase) Pause(ctx context.Context, establishmentID int64, offerID int64) error {
	return u.setStatus(ctx, establishmentID, offerID, model.OfferStatusActive, model.OfferStatusPaused)
}

// 再開（PAUSED → ACTIVE）
func (u *OfferUsecase) Resume(ctx context.Context, establishmentID int64, offerID int64) error {
	return u.setStatus(ctx, establishmentID, offerID, model.OfferStatusPaused, model.OfferStatusActive)
}

func (u *OfferUsecase) setStatus(ctx context.Context, establishmentID int64, offerID int64, from model.OfferStatus, to model.OfferStatus) error {
	if establishmentID <= 0 {
		return NewServiceError(ErrInvalidInput, "invalid establishment id")
	}
	if offerID <= 0 {
		return NewServiceError(ErrInvalidInput, "invalid offer id")
	}

	o, err := u.offers.FindByID(ctx, offerID)
	if err == repo.ErrNotFound {
		return NewServiceError(ErrOfferNotFound, "offer not found")
	}
	if err != nil {
		return NewServiceError(ErrInternal, "db error")
	}

	//他店舗のオファーは「存在しない扱い」にする
	if o.EstablishmentID != establishmentID {
		return NewServiceError(ErrOfferNotFound, "offer not found")
	}
	if o.Status != from {
		return NewServiceError(ErrInvalidState, "offer not in expected status")
	}

	//読んだときのステータスを条件にして更新。0行なら並行で変えられた。
	ok, err := u.offers.UpdateStatus(ctx, offerID, from, to)
	if err != nil {
		return NewServiceError(ErrInternal, "db error")
	}
	if !ok {
		return NewServiceError(ErrInvalidState, "offer not in expected status")
	}
	return nil
}
