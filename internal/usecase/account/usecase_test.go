package account

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"lodge-portal/internal/adapter/repository/mysql"
	"lodge-portal/internal/domain/activity"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/infrastructure/auth"
	"lodge-portal/internal/testutil/testdb"
	"lodge-portal/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func signupInput(email string) SignupInput {
	return SignupInput{
		FullName:    "Ama Owusu",
		Email:       email,
		Phone:       "+233200000001",
		Gender:      "female",
		Country:     "Ghana",
		City:        "Accra",
		Occupation:  "Surveyor",
		Password:    "correct horse",
		AcceptTerms: true,
	}
}

func newDBUsecase(t *testing.T) (*Usecase, *mysql.UserRepository) {
	t.Helper()
	db := testdb.Open(t)
	users := mysql.NewUserRepository(db)
	uc := NewUsecase(users, mysql.NewActivityRepository(db), auth.NewTokenManager(secret, time.Hour), auth.BcryptHasher{Cost: 4})
	return uc, users
}

func TestSignupThenLogin(t *testing.T) {
	uc, users := newDBUsecase(t)
	ctx := context.Background()
	client := ClientInfo{IP: "10.0.0.7", UserAgent: "test"}

	acc, err := uc.Signup(ctx, signupInput("  Ama@Example.COM "), client)
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", acc.Email)
	assert.Equal(t, user.RoleUser, acc.Role)
	assert.Equal(t, user.StatusPending, acc.Status)
	assert.Equal(t, user.AppMembership, acc.ApplicationType)
	assert.NotEqual(t, "correct horse", acc.PasswordHash)
	assert.Len(t, acc.PublicID, 32)

	_, err = uc.Signup(ctx, signupInput("ama@example.com"), client)
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	sess, err := uc.Login(ctx, LoginInput{Email: "AMA@example.com", Password: "correct horse"}, client)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, acc.PublicID, sess.User.PublicID)

	claims, err := auth.NewTokenManager(secret, time.Hour).Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, acc.PublicID, claims.Subject)
	assert.Equal(t, "USER", claims.Role)

	got, err := uc.Resolve(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, "ama@example.com", got.Email)

	require.NoError(t, uc.Delete(ctx, acc.PublicID))
	_, err = uc.Resolve(ctx, claims.Subject)
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = users.GetByEmail(ctx, "ama@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _ := newDBUsecase(t)
	ctx := context.Background()
	_, err := uc.Signup(ctx, signupInput("kofi@example.com"), ClientInfo{})
	require.NoError(t, err)

	for name, in := range map[string]LoginInput{
		"unknown email":  {Email: "nobody@example.com", Password: "correct horse"},
		"wrong password": {Email: "kofi@example.com", Password: "battery staple"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Login(ctx, in, ClientInfo{})
			assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		})
	}
}

func TestSignup_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *SignupInput)
		wantErr error
	}{
		{"terms not accepted", func(in *SignupInput) { in.AcceptTerms = false }, user.ErrTermsRequired},
		{"short password", func(in *SignupInput) { in.Password = "short" }, user.ErrWeakPassword},
		{"unknown application type", func(in *SignupInput) { in.ApplicationType = "LIFETIME" }, user.ErrInvalidType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &usermock.Repo{CreateFn: func(context.Context, *user.User) error {
				t.Fatal("Create must not be called")
				return nil
			}}
			uc := NewUsecase(repo, &usermock.ActivityRepo{}, auth.NewTokenManager(secret, time.Hour), auth.BcryptHasher{Cost: 4})
			in := signupInput("x@example.com")
			tc.mutate(&in)
			_, err := uc.Signup(context.Background(), in, ClientInfo{})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestActivityLog(t *testing.T) {
	logs := &usermock.ActivityRepo{}
	var stored *user.User
	repo := &usermock.Repo{
		CreateFn: func(_ context.Context, u *user.User) error {
			u.ID = 9
			stored = u
			return nil
		},
		GetByEmailFn: func(context.Context, string) (*user.User, error) { return stored, nil },
	}
	uc := NewUsecase(repo, logs, auth.NewTokenManager(secret, time.Hour), auth.BcryptHasher{Cost: 4})
	client := ClientInfo{IP: "192.0.2.1", UserAgent: "curl/8"}

	_, err := uc.Signup(context.Background(), signupInput("yaw@example.com"), client)
	require.NoError(t, err)
	_, err = uc.Login(context.Background(), LoginInput{Email: "yaw@example.com", Password: "correct horse"}, client)
	require.NoError(t, err)

	require.Len(t, logs.Logs, 2)
	assert.Equal(t, activity.ActionSignup, logs.Logs[0].Action)
	assert.Equal(t, activity.ActionLogin, logs.Logs[1].Action)
	assert.Equal(t, uint64(9), logs.Logs[1].UserID)
	assert.Equal(t, "192.0.2.1", logs.Logs[1].IPAddress)
}

func TestActivityLogFailureDoesNotFailLogin(t *testing.T) {
	hash, err := auth.BcryptHasher{Cost: 4}.Hash("correct horse")
	require.NoError(t, err)
	repo := &usermock.Repo{GetByEmailFn: func(context.Context, string) (*user.User, error) {
		return &user.User{ID: 1, PublicID: "p", Email: "e@example.com", PasswordHash: hash, Role: user.RoleUser}, nil
	}}
	logs := &usermock.ActivityRepo{RecordFn: func(context.Context, *activity.Log) error { return errors.New("disk full") }}
	uc := NewUsecase(repo, logs, auth.NewTokenManager(secret, time.Hour), auth.BcryptHasher{Cost: 4})

	_, err = uc.Login(context.Background(), LoginInput{Email: "e@example.com", Password: "correct horse"}, ClientInfo{})
	assert.NoError(t, err)
}

func TestAdminStatusAndListing(t *testing.T) {
	uc, _ := newDBUsecase(t)
	ctx := context.Background()

	a, err := uc.Signup(ctx, signupInput("ama@example.com"), ClientInfo{})
	require.NoError(t, err)
	in := signupInput("kojo@example.com")
	in.FullName = "Kojo Boateng"
	in.Country = "Nigeria"
	_, err = uc.Signup(ctx, in, ClientInfo{})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, a.PublicID, UpdateStatusInput{Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, user.StatusApproved, updated.Status)

	_, err = uc.UpdateStatus(ctx, "missing", UpdateStatusInput{Status: "APPROVED"})
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = uc.UpdateStatus(ctx, a.PublicID, UpdateStatusInput{Status: "BANNED"})
	assert.ErrorIs(t, err, user.ErrInvalidStatus)

	approved, err := uc.ListUsers(ctx, ListFilter{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "ama@example.com", approved[0].Email)

	found, err := uc.ListUsers(ctx, ListFilter{Search: "BOAT"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Nigeria", found[0].Country)

	none, err := uc.ListUsers(ctx, ListFilter{Country: "Togo"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = uc.ListUsers(ctx, ListFilter{Status: "whatever"})
	assert.ErrorIs(t, err, user.ErrInvalidStatus)

	assert.ErrorIs(t, uc.Delete(ctx, "missing"), user.ErrNotFound)
}

func TestExportCSV(t *testing.T) {
	created := time.Date(2026, 3, 14, 22, 5, 0, 0, time.UTC)
	repo := &usermock.Repo{ListFn: func(_ context.Context, f user.Filter) ([]user.User, error) {
		assert.Equal(t, "Ghana", f.Country)
		return []user.User{{
			FullName: "Mensah, Kwame", Email: "k@example.com", Phone: "+233", Country: "Ghana",
			City: "Accra", Occupation: "Engineer", Status: user.StatusApproved, CreatedAt: created,
		}}, nil
	}}
	uc := NewUsecase(repo, &usermock.ActivityRepo{}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(context.Background(), ListFilter{Country: "Ghana"}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"Mensah, Kwame", "k@example.com", "+233", "Ghana", "Accra", "Engineer", "APPROVED", "2026-03-14"}, rows[1])
}
