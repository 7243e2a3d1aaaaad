package voucher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge-portal/internal/domain/voucher"
	"lodge-portal/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// MaxCodeAttempts bounds the resample loop in Issue.
const MaxCodeAttempts = 32

type Usecase struct {
	repo    voucher.Repository
	newCode func() (string, error)
}

func NewUsecase(r voucher.Repository) *Usecase {
	return &Usecase{repo: r, newCode: voucher.GenerateCode}
}

// WithCodeGenerator swaps the code source; tests use it to force collisions.
func (u *Usecase) WithCodeGenerator(gen func() (string, error)) *Usecase {
	u.newCode = gen
	return u
}

func (u *Usecase) Issue(ctx context.Context, in IssueInput, issuerID uint64) (*VoucherDTO, error) {
	if in.Amount <= 0 {
		return nil, voucher.ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = voucher.DefaultCurrency
	}

	for attempt := 1; attempt <= MaxCodeAttempts; attempt++ {
		code, err := u.newCode()
		if err != nil {
			return nil, fmt.Errorf("generate voucher code: %w", err)
		}
		exists, err := u.repo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		v := &voucher.Voucher{
			Code:      code,
			Amount:    in.Amount,
			Currency:  currency,
			CreatedBy: issuerID,
		}
		// The unique index settles a race with a concurrent Issue that drew
		// the same code after our existence check.
		if err := u.repo.Create(ctx, v); err != nil {
			if errors.Is(err, voucher.ErrCodeTaken) {
				continue
			}
			return nil, err
		}

		metrics.VoucherIssued()
		logrus.WithFields(logrus.Fields{
			"code":     v.Code,
			"amount":   v.Amount,
			"currency": v.Currency,
			"attempts": attempt,
		}).Info("voucher issued")
		return toDTO(v), nil
	}
	return nil, voucher.ErrCodeExhausted
}

// Validate never mutates the ledger.
func (u *Usecase) Validate(ctx context.Context, code string) (*ValidationDTO, error) {
	v, err := u.repo.GetByCode(ctx, voucher.NormalizeCode(code))
	switch {
	case errors.Is(err, voucher.ErrNotFound):
		metrics.VoucherCheck("validate", metrics.OutcomeNotFound)
		return nil, err
	case err != nil:
		metrics.VoucherCheck("validate", metrics.OutcomeError)
		return nil, err
	case v.Used:
		metrics.VoucherCheck("validate", metrics.OutcomeUsed)
		return nil, voucher.ErrAlreadyUsed
	}
	metrics.VoucherCheck("validate", metrics.OutcomeOK)
	return &ValidationDTO{Valid: true, Code: v.Code, Amount: v.Amount, Currency: v.Currency}, nil
}

func (u *Usecase) List(ctx context.Context) ([]VoucherDTO, error) {
	list, err := u.repo.ListWithParties(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VoucherDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}
