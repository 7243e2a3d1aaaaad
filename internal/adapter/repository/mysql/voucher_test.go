package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"lodge-portal/internal/domain/user"
	voucherDomain "lodge-portal/internal/domain/voucher"
)

func TestVoucherRepository_CreateAndGetByCode(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	repo := NewVoucherRepository(db)
	ctx := context.Background()

	v := seedVoucher(t, db, "ABCDEFGH23", admin)
	if v.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByCode(ctx, "ABCDEFGH23")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.Used || got.Amount != 50 || got.Currency != "USD" || got.CreatedBy != admin.ID {
		t.Errorf("unexpected voucher: %+v", got)
	}

	ok, err := repo.ExistsByCode(ctx, "ABCDEFGH23")
	if err != nil || !ok {
		t.Fatalf("ExistsByCode = %v, %v", ok, err)
	}
	ok, err = repo.ExistsByCode(ctx, "ZZZZZZZZZZ")
	if err != nil || ok {
		t.Fatalf("ExistsByCode(missing) = %v, %v", ok, err)
	}
}

func TestVoucherRepository_Create_DuplicateCode(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	seedVoucher(t, db, "DUPDUPDUP2", admin)

	err := NewVoucherRepository(db).Create(context.Background(), &voucherDomain.Voucher{
		Code: "DUPDUPDUP2", Amount: 10, Currency: "USD", CreatedBy: admin.ID,
	})
	if !errors.Is(err, voucherDomain.ErrCodeTaken) {
		t.Fatalf("expected ErrCodeTaken, got %v", err)
	}
}

func TestVoucherRepository_GetByCode_NotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := NewVoucherRepository(db).GetByCode(context.Background(), "NOPE222222")
	if !errors.Is(err, voucherDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVoucherRepository_Redeem_SingleUse(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	first := seedUser(t, db, "first@example.com", user.RoleUser)
	second := seedUser(t, db, "second@example.com", user.RoleUser)
	seedVoucher(t, db, "ONCEONLY22", admin)
	repo := NewVoucherRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	got, err := repo.Redeem(ctx, "ONCEONLY22", first.ID, at)
	if err != nil {
		t.Fatalf("first Redeem: %v", err)
	}
	if !got.Used || got.UsedBy == nil || *got.UsedBy != first.ID || got.UsedAt == nil {
		t.Fatalf("voucher not marked used: %+v", got)
	}

	if _, err := repo.Redeem(ctx, "ONCEONLY22", second.ID, at.Add(time.Hour)); !errors.Is(err, voucherDomain.ErrAlreadyUsed) {
		t.Fatalf("second Redeem: expected ErrAlreadyUsed, got %v", err)
	}

	after, err := repo.GetByCode(ctx, "ONCEONLY22")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if *after.UsedBy != first.ID {
		t.Fatalf("redeemer changed to %d", *after.UsedBy)
	}
}

func TestVoucherRepository_Redeem_Unknown(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "u@example.com", user.RoleUser)
	_, err := NewVoucherRepository(db).Redeem(context.Background(), "MISSING222", u.ID, time.Now())
	if !errors.Is(err, voucherDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVoucherRepository_ListWithParties(t *testing.T) {
	db := openTestDB(t)
	admin := seedUser(t, db, "admin@example.com", user.RoleAdmin)
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	repo := NewVoucherRepository(db)
	ctx := context.Background()

	seedVoucher(t, db, "AAAAAAAAA2", admin)
	seedVoucher(t, db, "BBBBBBBBB3", admin)
	if _, err := repo.Redeem(ctx, "AAAAAAAAA2", member.ID, time.Now().UTC()); err != nil {
		t.Fatalf("Redeem: %v", err)
	}

	list, err := repo.ListWithParties(ctx)
	if err != nil {
		t.Fatalf("ListWithParties: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	for _, v := range list {
		if v.Issuer == nil || v.Issuer.Email != admin.Email {
			t.Errorf("%s: issuer not loaded: %+v", v.Code, v.Issuer)
		}
		switch v.Code {
		case "AAAAAAAAA2":
			if v.Redeemer == nil || v.Redeemer.Email != member.Email {
				t.Errorf("redeemer not loaded: %+v", v.Redeemer)
			}
		case "BBBBBBBBB3":
			if v.Redeemer != nil {
				t.Errorf("unused voucher has redeemer: %+v", v.Redeemer)
			}
		}
	}
}
