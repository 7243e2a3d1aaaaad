package voucher

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v *Voucher) error
	GetByCode(ctx context.Context, code string) (*Voucher, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Redeem flips used=false→true for code in a single conditional write.
	// Returns ErrNotFound when no such code exists and ErrAlreadyUsed when the
	// write matched nothing because another redemption got there first.
	Redeem(ctx context.Context, code string, redeemerID uint64, at time.Time) (*Voucher, error)

	// ListWithParties returns every voucher newest first with Issuer and
	// Redeemer loaded.
	ListWithParties(ctx context.Context) ([]Voucher, error)
}
