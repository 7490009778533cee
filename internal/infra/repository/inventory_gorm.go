package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arthurezende/pega-ai/internal/domain/model"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす。
// チェックと減算を1つの条件付きUPDATEで行い、RowsAffectedで確定する。
// 同じオファーに並行で来ても二重に通ることはない。
func (r *InventoryGormRepository) Reserve(ctx context.Context, offerID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ? AND current_stock >= ?", offerID, qty).
		Update("current_stock", gorm.Expr("current_stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）。initial_stock を超える戻しは
// 二重戻ししか起き得ないのでエラーにする。
func (r *InventoryGormRepository) Release(ctx context.Context, offerID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ? AND current_stock + ? <= initial_stock", offerID, qty).
		Update("current_stock", gorm.Expr("current_stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("stock release exceeds initial stock")
	}
	return nil
}
