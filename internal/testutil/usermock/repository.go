package usermock

import (
	"context"

	"lodge-portal/internal/domain/activity"
	domain "lodge-portal/internal/domain/user"
)

var (
	_ domain.Repository   = (*Repo)(nil)
	_ activity.Repository = (*ActivityRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	SaveFn          func(ctx context.Context, u *domain.User) error
	GetByPublicIDFn func(ctx context.Context, publicID string) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context, f domain.Filter) ([]domain.User, error)
	DeleteFn        func(ctx context.Context, publicID string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	if m.GetByPublicIDFn != nil {
		return m.GetByPublicIDFn(ctx, publicID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, publicID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, publicID)
	}
	return nil
}

// ActivityRepo records every log it is given.
type ActivityRepo struct {
	Logs     []activity.Log
	RecordFn func(ctx context.Context, l *activity.Log) error
}

func (m *ActivityRepo) Record(ctx context.Context, l *activity.Log) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, l)
	}
	m.Logs = append(m.Logs, *l)
	return nil
}
