package mysql

import (
	"context"
	"testing"
	"time"

	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"
	"lodge-portal/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema. A single
// connection keeps every statement on the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{
		PublicID:     id.NewID32(),
		FullName:     "Test " + email,
		Email:        email,
		Phone:        "+10000000000",
		Gender:       "male",
		Country:      "Ghana",
		City:         "Accra",
		Occupation:   "Engineer",
		PasswordHash: "x",
		Role:         role,
		Status:       user.StatusPending,
	}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedVoucher(t *testing.T, db *gorm.DB, code string, issuer *user.User) *voucher.Voucher {
	t.Helper()
	v := &voucher.Voucher{Code: code, Amount: 50, Currency: "USD", CreatedBy: issuer.ID}
	if err := NewVoucherRepository(db).Create(context.Background(), v); err != nil {
		t.Fatalf("seed voucher: %v", err)
	}
	return v
}

func makeApplication(owner *user.User, v *voucher.Voucher) *recruitment.Application {
	refs := make([]recruitment.Reference, 0, recruitment.RequiredReferences)
	for i := 1; i <= recruitment.RequiredReferences; i++ {
		refs = append(refs, recruitment.Reference{
			Position:     i,
			Name:         "Ref",
			Relationship: "Friend",
			Phone:        "+1555000000",
			Email:        "ref@example.com",
		})
	}
	return &recruitment.Application{
		ApplicationID:          id.NewID32(),
		UserID:                 owner.ID,
		VoucherID:              v.ID,
		VoucherCode:            v.Code,
		FullName:               owner.FullName,
		DateOfBirth:            time.Date(1985, 4, 2, 0, 0, 0, 0, time.UTC),
		PlaceOfBirth:           "Kumasi",
		Nationality:            "Ghanaian",
		Email:                  owner.Email,
		Phone:                  owner.Phone,
		Address:                "1 Main St",
		City:                   "Accra",
		State:                  "Greater Accra",
		Country:                "Ghana",
		PostalCode:             "00233",
		Occupation:             "Engineer",
		Employer:               "Acme",
		YearsInProfession:      7,
		Reason:                 "Fellowship",
		KnowledgeOfFreemasonry: "Some",
		References:             refs,
		MoralCharacter:         "Good",
		BeliefInSupremeBeing:   true,
		Status:                 recruitment.StatusPending,
	}
}
