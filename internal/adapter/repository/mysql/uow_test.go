package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	recruitmentDomain "lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/uow"
	"lodge-portal/internal/domain/user"
	voucherDomain "lodge-portal/internal/domain/voucher"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	seedVoucher(t, db, "COMMIT2222", admin)

	guow := NewGormUoW(db)
	var appID string
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vouchers.Redeem(ctx, "COMMIT2222", member.ID, time.Now().UTC())
		if err != nil {
			return err
		}
		app := makeApplication(member, v)
		appID = app.ApplicationID
		return r.Recruitments.Create(ctx, app)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	v, err := NewVoucherRepository(db).GetByCode(ctx, "COMMIT2222")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if !v.Used {
		t.Fatalf("voucher not used after commit")
	}
	if _, err := NewRecruitmentRepository(db).GetByApplicationID(ctx, appID); err != nil {
		t.Fatalf("application not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	seedVoucher(t, db, "ROLLBACK22", admin)

	guow := NewGormUoW(db)
	sentinel := errors.New("boom")
	var appID string

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vouchers.Redeem(ctx, "ROLLBACK22", member.ID, time.Now().UTC())
		if err != nil {
			return err
		}
		app := makeApplication(member, v)
		appID = app.ApplicationID
		if err := r.Recruitments.Create(ctx, app); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	v, err := NewVoucherRepository(db).GetByCode(ctx, "ROLLBACK22")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if v.Used || v.UsedBy != nil {
		t.Fatalf("voucher still marked used after rollback: %+v", v)
	}
	if _, err := NewRecruitmentRepository(db).GetByApplicationID(ctx, appID); !errors.Is(err, recruitmentDomain.ErrNotFound) {
		t.Fatalf("expected application absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinTx_AlreadyUsedLeavesNoApplication(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	seedVoucher(t, db, "TWICE22222", admin)
	guow := NewGormUoW(db)

	submit := func() error {
		return guow.WithinTx(ctx, func(r uow.Repos) error {
			v, err := r.Vouchers.Redeem(ctx, "TWICE22222", member.ID, time.Now().UTC())
			if err != nil {
				return err
			}
			return r.Recruitments.Create(ctx, makeApplication(member, v))
		})
	}
	if err := submit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := submit(); !errors.Is(err, voucherDomain.ErrAlreadyUsed) {
		t.Fatalf("second submit: expected ErrAlreadyUsed, got %v", err)
	}

	n, err := NewRecruitmentRepository(db).CountByVoucherCode(ctx, "TWICE22222")
	if err != nil || n != 1 {
		t.Fatalf("CountByVoucherCode = %d, %v; want 1", n, err)
	}
}

func TestGormUoW_WithinTx_DocumentAndFile(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	guow := NewGormUoW(db)

	doc, file := makeDocument(member, admin, "f-rollback")
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Files.Put(ctx, file); err != nil {
			return err
		}
		if err := r.Documents.Create(ctx, doc); err != nil {
			return err
		}
		return errors.New("stop")
	})

	if _, err := NewFileRepository(db).Get(ctx, "f-rollback"); err == nil {
		t.Fatalf("blob survived rollback")
	}
	if _, err := NewDocumentRepository(db).GetByDocumentID(ctx, doc.DocumentID); err == nil {
		t.Fatalf("document survived rollback")
	}
}
