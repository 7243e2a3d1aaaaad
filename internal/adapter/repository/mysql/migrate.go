package mysql

import (
	"lodge-portal/internal/domain/activity"
	"lodge-portal/internal/domain/document"
	"lodge-portal/internal/domain/handoff"
	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/product"
	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/servicereq"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&activity.Log{},
		&voucher.Voucher{},
		&recruitment.Application{},
		&recruitment.Reference{},
		&product.Product{},
		&order.Order{},
		&order.Item{},
		&document.File{},
		&document.Document{},
		&servicereq.Request{},
		&handoff.Config{},
	}
}

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(Models()...) }
