package recruitmentmock

import (
	"context"

	domain "lodge-portal/internal/domain/recruitment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByUserFn         func(ctx context.Context, userID uint64) ([]domain.Application, error)
	ListAllFn            func(ctx context.Context, status domain.Status) ([]domain.Application, error)
	UpdateStatusFn       func(ctx context.Context, applicationID string, status domain.Status, reviewNotes *string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Application, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context, status domain.Status) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, applicationID string, status domain.Status, reviewNotes *string) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, applicationID, status, reviewNotes)
	}
	return nil
}
