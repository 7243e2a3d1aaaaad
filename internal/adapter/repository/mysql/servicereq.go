package mysql

import (
	"context"

	serviceDomain "lodge-portal/internal/domain/servicereq"

	"gorm.io/gorm"
)

type ServiceRequestRepository struct{ db *gorm.DB }

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *serviceDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ServiceRequestRepository) ListByUser(ctx context.Context, userID uint64) ([]serviceDomain.Request, error) {
	var out []serviceDomain.Request
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ServiceRequestRepository) List(ctx context.Context, f serviceDomain.Filter, limit int) ([]serviceDomain.Request, error) {
	q := r.db.WithContext(ctx)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []serviceDomain.Request
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, requestID string, status serviceDomain.Status) (*serviceDomain.Request, error) {
	var out serviceDomain.Request
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", requestID).First(&out).Error; err != nil {
			return notFound(err, serviceDomain.ErrNotFound)
		}
		out.Status = status
		return tx.Model(&out).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
