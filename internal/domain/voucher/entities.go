package voucher

import (
	"errors"
	"strings"
	"time"

	"lodge-portal/internal/domain/user"
)

var (
	ErrNotFound      = errors.New("invalid voucher code")
	ErrAlreadyUsed   = errors.New("this voucher has already been used")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrCodeExhausted = errors.New("could not allocate a unique voucher code")
	ErrCodeTaken     = errors.New("voucher code already exists")
)

const DefaultCurrency = "USD"

// Table: vouchers
//
// A voucher is written twice in its life: at issue and at redemption. Once
// Used is true the amount, currency and redeemer are never touched again.
type Voucher struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Code      string     `gorm:"column:code;size:16;not null;uniqueIndex:ux_vouchers_code" json:"code"`
	Amount    float64    `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Currency  string     `gorm:"column:currency;size:3;not null;default:USD" json:"currency"`
	Used      bool       `gorm:"column:used;not null;default:false;index:idx_vouchers_used" json:"isUsed"`
	UsedBy    *uint64    `gorm:"column:used_by" json:"-"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"usedAt,omitempty"`
	CreatedBy uint64     `gorm:"column:created_by;not null" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Issuer   *user.User `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`
	Redeemer *user.User `gorm:"foreignKey:UsedBy;references:ID" json:"-"`
}

func (Voucher) TableName() string { return "vouchers" }

// NormalizeCode makes lookups case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
