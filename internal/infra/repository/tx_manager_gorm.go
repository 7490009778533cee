package repository

import (
	"context"

	"gorm.io/gorm"

	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type txReposGorm struct {
	offers    repo.OfferRepository
	inventory repo.InventoryRepository
	orders    repo.OrderRepository
	payments  repo.PaymentRepository
	reviews   repo.ReviewRepository
}

func (r *txReposGorm) Offers() repo.OfferRepository        { return r.offers }
func (r *txReposGorm) Inventory() repo.InventoryRepository { return r.inventory }
func (r *txReposGorm) Orders() repo.OrderRepository        { return r.orders }
func (r *txReposGorm) Payments() repo.PaymentRepository    { return r.payments }
func (r *txReposGorm) Reviews() repo.ReviewRepository      { return r.reviews }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがエラーを返すと全部ロールバックされる（在庫減算も含めて）。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			offers:    NewOfferGormRepository(tx),
			inventory: NewInventoryGormRepository(tx),
			orders:    NewOrderGormRepository(tx),
			payments:  NewPaymentGormRepository(tx),
			reviews:   NewReviewGormRepository(tx),
		}
		return fn(r)
	})
}
