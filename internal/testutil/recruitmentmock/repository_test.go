package recruitmentmock

import (
	"context"
	"errors"
	"testing"

	domain "lodge-portal/internal/domain/recruitment"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	a := &domain.Application{ApplicationID: "APP-1"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Application) error {
			called = true
			if gotCtx != ctx || got != a {
				t.Fatalf("args mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, a); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	m = &Repo{}
	if err := m.Create(ctx, a); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	notes := "ok"
	m := &Repo{
		UpdateStatusFn: func(_ context.Context, id string, status domain.Status, reviewNotes *string) error {
			if id != "APP-2" || status != domain.StatusApproved || reviewNotes != &notes {
				t.Fatalf("args mismatch: %s %s %v", id, status, reviewNotes)
			}
			return domain.ErrNotFound
		},
	}
	if err := m.UpdateStatus(ctx, "APP-2", domain.StatusApproved, &notes); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateStatus: got %v", err)
	}
	if _, err := (&Repo{}).GetByApplicationID(ctx, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByApplicationID default: got %v", err)
	}
}
