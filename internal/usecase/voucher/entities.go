package voucher

import (
	"time"

	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"
)

type IssueInput struct {
	Amount   float64 `json:"amount" validate:"required,gt=0,money2"`
	Currency string  `json:"currency" validate:"omitempty,iso4217"`
}

type ValidateInput struct {
	Code string `json:"code" validate:"required,vouchercode"`
}

// ValidationDTO is what the form gate shows before the application opens.
type ValidationDTO struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type PartyDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type VoucherDTO struct {
	Code      string     `json:"code"`
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	IsUsed    bool       `json:"isUsed"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	UsedBy    *PartyDTO  `json:"usedBy,omitempty"`
	CreatedBy *PartyDTO  `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toParty(u *user.User) *PartyDTO {
	if u == nil {
		return nil
	}
	return &PartyDTO{ID: u.PublicID, FullName: u.FullName, Email: u.Email}
}

func toDTO(v *voucher.Voucher) *VoucherDTO {
	return &VoucherDTO{
		Code:      v.Code,
		Amount:    v.Amount,
		Currency:  v.Currency,
		IsUsed:    v.Used,
		UsedAt:    v.UsedAt,
		UsedBy:    toParty(v.Redeemer),
		CreatedBy: toParty(v.Issuer),
		CreatedAt: v.CreatedAt,
	}
}
