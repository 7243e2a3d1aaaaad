package usermock

import (
	"context"
	"errors"
	"testing"

	"lodge-portal/internal/domain/activity"
	domain "lodge-portal/internal/domain/user"
)

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.GetByEmail(ctx, "a@b.c"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail default: got %v", err)
	}
	if _, err := m.GetByPublicID(ctx, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByPublicID default: got %v", err)
	}
	if err := m.Create(ctx, &domain.User{}); err != nil {
		t.Fatalf("Create default: got %v", err)
	}
}

func TestActivityRepo_Collects(t *testing.T) {
	m := &ActivityRepo{}
	_ = m.Record(context.Background(), &activity.Log{UserID: 1, Action: activity.ActionLogin})
	_ = m.Record(context.Background(), &activity.Log{UserID: 1, Action: activity.ActionSignup})
	if len(m.Logs) != 2 || m.Logs[1].Action != activity.ActionSignup {
		t.Fatalf("logs = %+v", m.Logs)
	}
}
