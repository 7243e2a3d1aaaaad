package mysql

import (
	"context"

	orderDomain "lodge-portal/internal/domain/order"

	"gorm.io/gorm"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("order_id = ?", orderID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, orderDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uint64) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll(ctx context.Context, status orderDomain.Status) ([]orderDomain.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Preload("Customer")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []orderDomain.Order
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status orderDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&orderDomain.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&orderDomain.Order{}).
			Where("order_id = ?", orderID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return orderDomain.ErrNotFound
		}
	}
	return nil
}
