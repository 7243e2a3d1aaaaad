package handoff

type UpdateInput struct {
	PhoneNumber string   `json:"phoneNumber" validate:"required,max=32"`
	Price       *float64 `json:"formVoucherPrice" validate:"omitempty,gt=0,money2"`
	Currency    string   `json:"formVoucherCurrency" validate:"omitempty,iso4217"`
}

type PurchaseInput struct {
	Amount   float64 `json:"amount" validate:"required,gt=0,money2"`
	Currency string  `json:"currency" validate:"omitempty,iso4217"`
}

// LinkDTO carries a prefilled chat link plus the message it opens with.
type LinkDTO struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
