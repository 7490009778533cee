package repository

import "context"

// オファーごとの在庫カウンタの唯一の更新窓口。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算する。足りなければ false。
	Reserve(ctx context.Context, offerID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセル）。initial_stock を超える戻しは拒否する。
	Release(ctx context.Context, offerID int64, qty int64) error
}
