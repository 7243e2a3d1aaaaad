package servicereq

import "context"

type Filter struct {
	Status      Status
	ServiceType ServiceType
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	ListByUser(ctx context.Context, userID uint64) ([]Request, error)
	List(ctx context.Context, f Filter, limit int) ([]Request, error)
	UpdateStatus(ctx context.Context, requestID string, status Status) (*Request, error)
}
