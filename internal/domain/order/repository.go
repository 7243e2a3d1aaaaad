package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]Order, error)
	ListAll(ctx context.Context, status Status) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}
