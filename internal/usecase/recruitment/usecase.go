package recruitment

import (
	"context"
	"errors"
	"strings"
	"time"

	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/uow"
	"lodge-portal/internal/domain/voucher"
	"lodge-portal/internal/infrastructure/metrics"
	voucherUC "lodge-portal/internal/usecase/voucher"
	"lodge-portal/pkg/id"

	"github.com/sirupsen/logrus"
)

// VoucherChecker is the read-only side of the voucher ledger.
type VoucherChecker interface {
	Validate(ctx context.Context, code string) (*voucherUC.ValidationDTO, error)
}

type Usecase struct {
	vouchers VoucherChecker
	repo     recruitment.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(vouchers VoucherChecker, repo recruitment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{vouchers: vouchers, repo: repo, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// CheckVoucher gates the application form. It has no side effects.
func (u *Usecase) CheckVoucher(ctx context.Context, code string) (*voucherUC.ValidationDTO, error) {
	return u.vouchers.Validate(ctx, code)
}

// Submit redeems the voucher and stores the application in one transaction.
// The redemption is a conditional write, so of two racing submissions for the
// same code exactly one commits and the other gets voucher.ErrAlreadyUsed.
func (u *Usecase) Submit(ctx context.Context, userID uint64, in SubmitInput) (*ApplicationDTO, error) {
	app, err := buildApplication(userID, in)
	if err != nil {
		return nil, err
	}
	code := voucher.NormalizeCode(in.VoucherCode)

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vouchers.Redeem(ctx, code, userID, u.now())
		if err != nil {
			return err
		}
		app.VoucherID = v.ID
		app.VoucherCode = v.Code
		if err := r.Recruitments.Create(ctx, app); err != nil {
			if errors.Is(err, recruitment.ErrVoucherConsumed) {
				return voucher.ErrAlreadyUsed
			}
			return err
		}
		return nil
	})
	switch {
	case errors.Is(err, voucher.ErrNotFound):
		metrics.VoucherCheck("redeem", metrics.OutcomeNotFound)
		return nil, err
	case errors.Is(err, voucher.ErrAlreadyUsed):
		metrics.VoucherCheck("redeem", metrics.OutcomeUsed)
		return nil, err
	case err != nil:
		metrics.VoucherCheck("redeem", metrics.OutcomeError)
		return nil, err
	}

	metrics.VoucherCheck("redeem", metrics.OutcomeOK)
	logrus.WithFields(logrus.Fields{
		"application_id": app.ApplicationID,
		"voucher":        app.VoucherCode,
	}).Info("recruitment application submitted")

	dto := toDTO(app)
	return &dto, nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]ApplicationDTO, error) {
	list, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// ListAll is the admin view. An empty status lists everything.
func (u *Usecase) ListAll(ctx context.Context, status string) ([]ApplicationDTO, error) {
	st := recruitment.Status(strings.ToUpper(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, recruitment.ErrInvalidStatus
	}
	list, err := u.repo.ListAll(ctx, st)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// UpdateStatus overwrites the review status. Any status may follow any other.
func (u *Usecase) UpdateStatus(ctx context.Context, applicationID string, in UpdateStatusInput) (*ApplicationDTO, error) {
	st := recruitment.Status(in.Status)
	if !st.Valid() {
		return nil, recruitment.ErrInvalidStatus
	}
	if err := u.repo.UpdateStatus(ctx, applicationID, st, in.ReviewNotes); err != nil {
		return nil, err
	}
	app, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"status":         st,
	}).Info("recruitment status updated")
	dto := toDTO(app)
	return &dto, nil
}

func toDTOs(list []recruitment.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(list))
	for i := range list {
		out = append(out, toDTO(&list[i]))
	}
	return out
}

// buildApplication enforces the rules that hold regardless of transport:
// three complete references, the belief attestation, and details for every
// yes answer.
func buildApplication(userID uint64, in SubmitInput) (*recruitment.Application, error) {
	if len(in.References) != recruitment.RequiredReferences {
		return nil, recruitment.ErrReferenceCount
	}
	refs := make([]recruitment.Reference, 0, len(in.References))
	for i, r := range in.References {
		ref := recruitment.Reference{
			Position:     i + 1,
			Name:         strings.TrimSpace(r.Name),
			Relationship: strings.TrimSpace(r.Relationship),
			Phone:        strings.TrimSpace(r.Phone),
			Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		}
		if !ref.Complete() {
			return nil, recruitment.ErrReferenceCount
		}
		refs = append(refs, ref)
	}
	if !in.BeliefInSupremeBeing {
		return nil, recruitment.ErrAttestationRequired
	}
	if (in.CriminalRecord && strings.TrimSpace(in.CriminalDetails) == "") ||
		(in.RelativesInFreemasonry && strings.TrimSpace(in.RelativeDetails) == "") {
		return nil, recruitment.ErrMissingDetails
	}
	if in.YearsInProfession < 0 {
		return nil, recruitment.ErrInvalidYears
	}
	dob, err := time.Parse(time.DateOnly, strings.TrimSpace(in.DateOfBirth))
	if err != nil || !dob.Before(time.Now()) {
		return nil, recruitment.ErrInvalidDateOfBirth
	}

	return &recruitment.Application{
		ApplicationID:          id.NewID32(),
		UserID:                 userID,
		FullName:               strings.TrimSpace(in.FullName),
		DateOfBirth:            dob,
		PlaceOfBirth:           strings.TrimSpace(in.PlaceOfBirth),
		Nationality:            strings.TrimSpace(in.Nationality),
		Email:                  strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:                  strings.TrimSpace(in.Phone),
		Address:                strings.TrimSpace(in.Address),
		City:                   strings.TrimSpace(in.City),
		State:                  strings.TrimSpace(in.State),
		Country:                strings.TrimSpace(in.Country),
		PostalCode:             strings.TrimSpace(in.PostalCode),
		Occupation:             strings.TrimSpace(in.Occupation),
		Employer:               strings.TrimSpace(in.Employer),
		YearsInProfession:      in.YearsInProfession,
		Reason:                 in.Reason,
		KnowledgeOfFreemasonry: in.KnowledgeOfFreemasonry,
		RecommendedBy:          strings.TrimSpace(in.RecommendedBy),
		PreviouslyApplied:      in.PreviouslyApplied,
		RelativesInFreemasonry: in.RelativesInFreemasonry,
		RelativeDetails:        in.RelativeDetails,
		References:             refs,
		CriminalRecord:         in.CriminalRecord,
		CriminalDetails:        in.CriminalDetails,
		MoralCharacter:         in.MoralCharacter,
		BeliefInSupremeBeing:   in.BeliefInSupremeBeing,
		Status:                 recruitment.StatusPending,
	}, nil
}
