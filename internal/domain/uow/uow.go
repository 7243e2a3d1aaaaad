package uow

import (
	"context"

	"lodge-portal/internal/domain/document"
	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/voucher"
)

// Repos are bound to one transaction; every write through them commits or
// rolls back together.
type Repos struct {
	Vouchers     voucher.Repository
	Recruitments recruitment.Repository
	Documents    document.Repository
	Files        document.FileStore
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
