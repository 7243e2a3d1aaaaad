package handoff

import (
	"context"
	"errors"
	"time"
)

var ErrPhoneRequired = errors.New("phone number is required")

const (
	DefaultVoucherPrice    = 50.0
	DefaultVoucherCurrency = "USD"
)

// Table: handoff_configs
//
// Only the latest row matters; Replace keeps exactly one.
type Config struct {
	ID                  uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PhoneNumber         string    `gorm:"column:phone_number;size:32;not null" json:"phoneNumber"`
	FormVoucherPrice    float64   `gorm:"column:form_voucher_price;type:decimal(18,2);not null" json:"formVoucherPrice"`
	FormVoucherCurrency string    `gorm:"column:form_voucher_currency;size:3;not null" json:"formVoucherCurrency"`
	UpdatedBy           uint64    `gorm:"column:updated_by" json:"-"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Config) TableName() string { return "handoff_configs" }

type Repository interface {
	// Latest returns (nil, nil) when nothing was configured yet.
	Latest(ctx context.Context) (*Config, error)
	Replace(ctx context.Context, c *Config) error
}
