package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arthurezende/pega-ai/internal/domain/model"
	repo "github.com/arthurezende/pega-ai/internal/repository"
)

type OfferGormRepository struct {
	db *gorm.DB
}

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func (r *OfferGormRepository) Create(ctx context.Context, offer model.Offer) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&offer).Error; err != nil {
		return 0, err
	}
	return offer.ID, nil
}

func (r *OfferGormRepository) FindByID(ctx context.Context, offerID int64) (model.Offer, error) {
	var o model.Offer
	err := r.db.WithContext(ctx).Where("id = ?", offerID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Offer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Offer{}, err
	}
	return o, nil
}

// 事前ステータスが一致するときだけ更新する。
// RowsAffected == 0 なら並行更新に負けたということ。
func (r *OfferGormRepository) UpdateStatus(ctx context.Context, offerID int64, from model.OfferStatus, to model.OfferStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("id = ? AND status = ?", offerID, from).
		Update("status", to)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// 公開中かつ在庫ありのオファーを新しい順で返す
func (r *OfferGormRepository) ListActive(ctx context.Context) ([]repo.ActiveOfferRow, error) {
	var rows []repo.ActiveOfferRow

	err := r.db.WithContext(ctx).
		Table("offers o").
		Select(`o.id, o.title, o.description, o.category, o.original_price, o.sale_price,
			o.current_stock, o.pickup_start, o.pickup_end,
			e.trade_name AS establishment, e.address, e.latitude, e.longitude`).
		Joins("JOIN establishments e ON o.establishment_id = e.id").
		Where("o.status = ? AND o.current_stock > 0", model.OfferStatusActive).
		Order("o.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.ActiveOfferRow{}, err
	}

	return rows, nil
}
