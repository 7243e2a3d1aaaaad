package account

import (
	"time"

	"lodge-portal/internal/domain/user"
)

type SignupInput struct {
	FullName        string `json:"fullName" validate:"required,max=191"`
	Email           string `json:"email" validate:"required,email,max=191"`
	Phone           string `json:"phone" validate:"required,max=64"`
	Gender          string `json:"gender" validate:"required,max=32"`
	Country         string `json:"country" validate:"required,max=96"`
	City            string `json:"city" validate:"required,max=96"`
	Occupation      string `json:"occupation" validate:"required,max=128"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"eq=true"`
	ApplicationType string `json:"applicationType" validate:"omitempty,oneof=MEMBERSHIP MEMBERSHIP_CARD CERTIFICATE ALL"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ListFilter is bound from the admin query string.
type ListFilter struct {
	Country string `query:"country"`
	Status  string `query:"status"`
	Search  string `query:"search"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// ClientInfo is what the activity log records about the caller.
type ClientInfo struct {
	IP        string
	UserAgent string
}

type SessionDTO struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *user.User `json:"user"`
}
