package vouchermock

import (
	"context"
	"time"

	domain "lodge-portal/internal/domain/voucher"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups report domain.ErrNotFound; unset writes succeed.
type Repo struct {
	CreateFn          func(ctx context.Context, v *domain.Voucher) error
	GetByCodeFn       func(ctx context.Context, code string) (*domain.Voucher, error)
	ExistsByCodeFn    func(ctx context.Context, code string) (bool, error)
	RedeemFn          func(ctx context.Context, code string, redeemerID uint64, at time.Time) (*domain.Voucher, error)
	ListWithPartiesFn func(ctx context.Context) ([]domain.Voucher, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.Voucher) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFn != nil {
		return m.ExistsByCodeFn(ctx, code)
	}
	return false, nil
}

func (m *Repo) Redeem(ctx context.Context, code string, redeemerID uint64, at time.Time) (*domain.Voucher, error) {
	if m.RedeemFn != nil {
		return m.RedeemFn(ctx, code, redeemerID, at)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListWithParties(ctx context.Context) ([]domain.Voucher, error) {
	if m.ListWithPartiesFn != nil {
		return m.ListWithPartiesFn(ctx)
	}
	return nil, nil
}
