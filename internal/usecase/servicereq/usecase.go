package servicereq

import (
	"context"
	"strings"

	"lodge-portal/internal/domain/servicereq"
	"lodge-portal/internal/domain/user"
	"lodge-portal/pkg/id"

	"github.com/sirupsen/logrus"
)

type Usecase struct {
	repo servicereq.Repository
}

func NewUsecase(repo servicereq.Repository) *Usecase { return &Usecase{repo: repo} }

// Create copies the requester's email and name onto the request so admin
// listings read without a join.
func (u *Usecase) Create(ctx context.Context, requester *user.User, in CreateInput) (*servicereq.Request, error) {
	st := servicereq.ServiceType(strings.ToUpper(strings.TrimSpace(in.ServiceType)))
	if !st.Valid() {
		return nil, servicereq.ErrInvalidServiceType
	}
	urgency := servicereq.UrgencyStandard
	if in.Urgency != "" {
		urgency = servicereq.Urgency(strings.ToUpper(strings.TrimSpace(in.Urgency)))
		if !urgency.Valid() {
			return nil, servicereq.ErrInvalidUrgency
		}
	}

	req := &servicereq.Request{
		RequestID:    id.NewID32(),
		UserID:       requester.ID,
		UserEmail:    requester.Email,
		UserFullName: requester.FullName,
		ServiceType:  st,
		Urgency:      urgency,
		Details:      strings.TrimSpace(in.Details),
		Status:       servicereq.StatusPending,
	}
	if err := u.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"type":       req.ServiceType,
		"urgency":    req.Urgency,
	}).Info("service request created")
	return req, nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]servicereq.Request, error) {
	list, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// List is the admin view, newest first and capped at servicereq.ListLimit.
func (u *Usecase) List(ctx context.Context, f ListFilter) ([]servicereq.Request, error) {
	df := servicereq.Filter{
		Status:      servicereq.Status(strings.ToUpper(strings.TrimSpace(f.Status))),
		ServiceType: servicereq.ServiceType(strings.ToUpper(strings.TrimSpace(f.ServiceType))),
	}
	if df.Status != "" && !df.Status.Valid() {
		return nil, servicereq.ErrInvalidStatus
	}
	if df.ServiceType != "" && !df.ServiceType.Valid() {
		return nil, servicereq.ErrInvalidServiceType
	}
	list, err := u.repo.List(ctx, df, servicereq.ListLimit)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, requestID string, in UpdateStatusInput) (*servicereq.Request, error) {
	st := servicereq.Status(in.Status)
	if !st.Valid() {
		return nil, servicereq.ErrInvalidStatus
	}
	req, err := u.repo.UpdateStatus(ctx, requestID, st)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"request_id": requestID, "status": st}).Info("service request status updated")
	return req, nil
}

func nonNil(list []servicereq.Request) []servicereq.Request {
	if list == nil {
		return []servicereq.Request{}
	}
	return list
}
