package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 受け取りコードのユニーク制約違反は ErrConflict で返す
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	err := r.db.WithContext(ctx).Create(&order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, repo.ErrConflict
	}
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByCode(ctx context.Context, code string) (repo.PickupRow, error) {
	var row repo.PickupRow

	err := r.db.WithContext(ctx).
		Table("orders p").
		Select(`p.id AS order_id, p.status, o.title AS offer_title, e.trade_name AS establishment`).
		Joins("JOIN offers o ON p.offer_id = o.id").
		Joins("JOIN establishments e ON o.establishment_id = e.id").
		Where("p.pickup_code = ?", code).
		Scan(&row).Error
	if err != nil {
		return repo.PickupRow{}, err
	}
	if row.OrderID == 0 {
		return repo.PickupRow{}, repo.ErrNotFound
	}

	return row, nil
}

// 事前ステータスが一致するときだけ遷移させる。
// RowsAffected == 0 なら並行更新に負けたということ。
func (r *OrderGormRepository) TransitionStatus(ctx context.Context, orderID int64, from model.OrderStatus, to model.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ステータスと受け取り時刻を1回のUPDATEで更新する
func (r *OrderGormRepository) MarkPickedUp(ctx context.Context, orderID int64, from model.OrderStatus, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]interface{}{
			"status":       model.OrderStatusPickedUp,
			"picked_up_at": at,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderGormRepository) ListByConsumer(ctx context.Context, consumerID int64) ([]repo.ConsumerOrderRow, error) {
	var rows []repo.ConsumerOrderRow

	err := r.db.WithContext(ctx).
		Table("orders p").
		Select(`p.id, p.pickup_code, p.total_value, p.status, p.created_at,
			o.title AS offer_title, e.trade_name AS establishment, e.address,
			o.pickup_start, o.pickup_end`).
		Joins("JOIN offers o ON p.offer_id = o.id").
		Joins("JOIN establishments e ON o.establishment_id = e.id").
		Where("p.consumer_id = ?", consumerID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.ConsumerOrderRow{}, err
	}

	return rows, nil
}

func (r *OrderGormRepository) ListByEstablishment(ctx context.Context, establishmentID int64) ([]repo.EstablishmentOrderRow, error) {
	var rows []repo.EstablishmentOrderRow

	err := r.db.WithContext(ctx).
		Table("orders p").
		Select(`p.id, p.pickup_code, p.total_value, p.status, p.created_at,
			o.title AS offer_title, u.name AS consumer_name, u.phone AS consumer_phone`).
		Joins("JOIN offers o ON p.offer_id = o.id").
		Joins("JOIN users u ON p.consumer_id = u.id").
		Where("o.establishment_id = ?", establishmentID).
		Order("p.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.EstablishmentOrderRow{}, err
	}

	return rows, nil
}
