package account

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"lodge-portal/internal/domain/activity"
	"lodge-portal/internal/domain/user"
	"lodge-portal/pkg/id"

	"github.com/sirupsen/logrus"
)

type TokenIssuer interface {
	Issue(subject, email, role string) (string, time.Time, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// CSVHeader is the first row of ExportCSV.
var CSVHeader = []string{"Name", "Email", "Phone", "Country", "City", "Occupation", "Status", "Date"}

type Usecase struct {
	users    user.Repository
	activity activity.Repository
	tokens   TokenIssuer
	hasher   PasswordHasher
}

func NewUsecase(users user.Repository, logs activity.Repository, tokens TokenIssuer, hasher PasswordHasher) *Usecase {
	return &Usecase{users: users, activity: logs, tokens: tokens, hasher: hasher}
}

func (u *Usecase) Signup(ctx context.Context, in SignupInput, client ClientInfo) (*user.User, error) {
	if !in.AcceptTerms {
		return nil, user.ErrTermsRequired
	}
	if len(in.Password) < user.MinPasswordLength {
		return nil, user.ErrWeakPassword
	}
	appType := user.AppMembership
	if in.ApplicationType != "" {
		appType = user.ApplicationType(strings.ToUpper(in.ApplicationType))
		if !appType.Valid() {
			return nil, user.ErrInvalidType
		}
	}
	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := &user.User{
		PublicID:        id.NewID32(),
		FullName:        strings.TrimSpace(in.FullName),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:           strings.TrimSpace(in.Phone),
		Gender:          strings.TrimSpace(in.Gender),
		Country:         strings.TrimSpace(in.Country),
		City:            strings.TrimSpace(in.City),
		Occupation:      strings.TrimSpace(in.Occupation),
		PasswordHash:    hash,
		Role:            user.RoleUser,
		Status:          user.StatusPending,
		ApplicationType: appType,
	}
	if err := u.users.Create(ctx, acc); err != nil {
		return nil, err
	}
	u.record(ctx, acc.ID, activity.ActionSignup, client)
	return acc, nil
}

// Login answers ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (u *Usecase) Login(ctx context.Context, in LoginInput, client ClientInfo) (*SessionDTO, error) {
	acc, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.hasher.Compare(acc.PasswordHash, in.Password) {
		return nil, user.ErrInvalidCredentials
	}

	token, exp, err := u.tokens.Issue(acc.PublicID, acc.Email, string(acc.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	u.record(ctx, acc.ID, activity.ActionLogin, client)
	return &SessionDTO{Token: token, ExpiresAt: exp, User: acc}, nil
}

// Resolve loads the account behind a session. Deleted accounts no longer
// resolve even while their token is unexpired.
func (u *Usecase) Resolve(ctx context.Context, publicID string) (*user.User, error) {
	return u.users.GetByPublicID(ctx, publicID)
}

func (u *Usecase) ListUsers(ctx context.Context, f ListFilter) ([]user.User, error) {
	df, err := toFilter(f)
	if err != nil {
		return nil, err
	}
	list, err := u.users.List(ctx, df)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []user.User{}
	}
	return list, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, publicID string, in UpdateStatusInput) (*user.User, error) {
	st := user.Status(in.Status)
	if !st.Valid() {
		return nil, user.ErrInvalidStatus
	}
	acc, err := u.users.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	acc.Status = st
	if err := u.users.Save(ctx, acc); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": publicID, "status": st}).Info("membership status updated")
	return acc, nil
}

func (u *Usecase) Delete(ctx context.Context, publicID string) error {
	if err := u.users.Delete(ctx, publicID); err != nil {
		return err
	}
	logrus.WithField("user_id", publicID).Info("account deleted")
	return nil
}

// ExportCSV writes the filtered member list, newest first.
func (u *Usecase) ExportCSV(ctx context.Context, f ListFilter, w io.Writer) error {
	list, err := u.ListUsers(ctx, f)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, m := range list {
		row := []string{
			m.FullName, m.Email, m.Phone, m.Country, m.City, m.Occupation,
			string(m.Status), m.CreatedAt.UTC().Format(time.DateOnly),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toFilter(f ListFilter) (user.Filter, error) {
	out := user.Filter{
		Country: strings.TrimSpace(f.Country),
		Status:  user.Status(strings.ToUpper(strings.TrimSpace(f.Status))),
		Search:  strings.TrimSpace(f.Search),
	}
	if out.Status != "" && !out.Status.Valid() {
		return user.Filter{}, user.ErrInvalidStatus
	}
	return out, nil
}

// record never fails the caller; a lost audit row is logged instead.
func (u *Usecase) record(ctx context.Context, userID uint64, action activity.Action, client ClientInfo) {
	err := u.activity.Record(ctx, &activity.Log{
		UserID:    userID,
		Action:    action,
		IPAddress: client.IP,
		UserAgent: client.UserAgent,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"action":  action,
		}).Warn("activity log write failed")
	}
}
