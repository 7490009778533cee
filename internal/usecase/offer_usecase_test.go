package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

func validOfferInput() CreateOfferInput {
	return CreateOfferInput{
		Title:         "Combo Surpresa",
		Description:   "Pães e doces do dia",
		Category:      "padaria",
		OriginalPrice: decimal.RequireFromString("30.00"),
		SalePrice:     decimal.RequireFromString("12.00"),
		Stock:         5,
		PickupStart:   "18:00",
		PickupEnd:     "20:00",
	}
}

// Test: オファー作成の成功パス（初期在庫＝現在在庫、ACTIVE）
func TestCreateOfferSuccess(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	establishments.On("FindByID", mock.Anything, int64(2)).Return(model.Establishment{ID: 2}, nil)
	offers.On("Create", mock.Anything, mock.MatchedBy(func(o model.Offer) bool {
		return o.EstablishmentID == 2 && o.Title == "Combo Surpresa" &&
			o.InitialStock == 5 && o.CurrentStock == 5 &&
			o.Status == model.OfferStatusActive &&
			o.CreatedAt.Equal(testNow)
	})).Return(int64(10), nil)

	id, err := uc.Create(context.Background(), 2, validOfferInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), id)
	offers.AssertExpectations(t)
}

// Test: 割引になっていない価格は弾く
func TestCreateOfferRejectsNonDiscountedPrice(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	in := validOfferInput()
	in.SalePrice = decimal.RequireFromString("30.00") // 元値と同じ

	_, err := uc.Create(context.Background(), 2, in)

	assert.True(t, IsKind(err, ErrInvalidInput))
	offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 在庫0のオファーは作れない
func TestCreateOfferRejectsZeroStock(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	in := validOfferInput()
	in.Stock = 0

	_, err := uc.Create(context.Background(), 2, in)

	assert.True(t, IsKind(err, ErrInvalidInput))
}

// Test: 受け取り時間帯は必須
func TestCreateOfferRequiresPickupWindow(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	in := validOfferInput()
	in.PickupEnd = " "

	_, err := uc.Create(context.Background(), 2, in)

	assert.True(t, IsKind(err, ErrInvalidInput))
}

// Test: 店舗が存在しない
func TestCreateOfferUnknownEstablishment(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	establishments.On("FindByID", mock.Anything, int64(99)).Return(model.Establishment{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), 99, validOfferInput())

	assert.True(t, IsKind(err, ErrInvalidInput))
	offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 一時停止（ACTIVE → PAUSED）
func TestPauseOffer(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	offers.On("FindByID", mock.Anything, int64(10)).Return(model.Offer{ID: 10, EstablishmentID: 2, Status: model.OfferStatusActive}, nil)
	offers.On("UpdateStatus", mock.Anything, int64(10), model.OfferStatusActive, model.OfferStatusPaused).Return(true, nil)

	err := uc.Pause(context.Background(), 2, 10)

	assert.NoError(t, err)
	offers.AssertExpectations(t)
}

// Test: 並行でステータスを変えられていたら0行更新になり、適用しない
func TestPauseOfferLostRace(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	offers.On("FindByID", mock.Anything, int64(10)).Return(model.Offer{ID: 10, EstablishmentID: 2, Status: model.OfferStatusActive}, nil)
	offers.On("UpdateStatus", mock.Anything, int64(10), model.OfferStatusActive, model.OfferStatusPaused).Return(false, nil)

	err := uc.Pause(context.Background(), 2, 10)

	assert.True(t, IsKind(err, ErrInvalidState))
}

// Test: 他店舗のオファーは存在しない扱い
func TestPauseOfferOwnedByAnotherEstablishment(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	offers.On("FindByID", mock.Anything, int64(10)).Return(model.Offer{ID: 10, EstablishmentID: 3, Status: model.OfferStatusActive}, nil)

	err := uc.Pause(context.Background(), 2, 10)

	assert.True(t, IsKind(err, ErrOfferNotFound))
	offers.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test: 停止中でないオファーは再開できない
func TestResumeOfferNotPaused(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	offers.On("FindByID", mock.Anything, int64(10)).Return(model.Offer{ID: 10, EstablishmentID: 2, Status: model.OfferStatusActive}, nil)

	err := uc.Resume(context.Background(), 2, 10)

	assert.True(t, IsKind(err, ErrInvalidState))
}

// Test: 公開中オファーの一覧
func TestListActiveOffers(t *testing.T) {
	offers := new(MockOfferRepository)
	establishments := new(MockEstablishmentRepository)
	uc := NewOfferUsecase(offers, establishments, &fixedClock{t: testNow})

	rows := []repo.ActiveOfferRow{
		{ID: 10, Title: "Combo Surpresa", Establishment: "Padaria Central", CurrentStock: 3},
	}
	offers.On("ListActive", mock.Anything).Return(rows, nil)

	got, err := uc.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Combo Surpresa", got[0].Title)
}
