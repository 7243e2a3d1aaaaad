package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidStatus = errors.New("invalid membership status")
	ErrInvalidType   = errors.New("invalid application type")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrTermsRequired = errors.New("terms must be accepted")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const MinPasswordLength = 8

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Status is the account-level membership state. It is tracked independently
// of any recruitment application's review status.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type ApplicationType string

const (
	AppMembership     ApplicationType = "MEMBERSHIP"
	AppMembershipCard ApplicationType = "MEMBERSHIP_CARD"
	AppCertificate    ApplicationType = "CERTIFICATE"
	AppAll            ApplicationType = "ALL"
)

func (t ApplicationType) Valid() bool {
	switch t {
	case AppMembership, AppMembershipCard, AppCertificate, AppAll:
		return true
	}
	return false
}

// Table: users
//
// PublicID must not be named UserID: gorm would resolve every
// `foreignKey:UserID` belongs-to on other tables as a has-one from users.
type User struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PublicID        string          `gorm:"column:public_id;size:32;not null;uniqueIndex:ux_users_public_id" json:"id"`
	FullName        string          `gorm:"column:full_name;size:191;not null" json:"fullName"`
	Email           string          `gorm:"column:email;size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	Phone           string          `gorm:"column:phone;size:64;not null" json:"phone"`
	Gender          string          `gorm:"column:gender;size:32;not null" json:"gender"`
	Country         string          `gorm:"column:country;size:96;not null;index:idx_users_country" json:"country"`
	City            string          `gorm:"column:city;size:96;not null" json:"city"`
	Occupation      string          `gorm:"column:occupation;size:128;not null" json:"occupation"`
	PasswordHash    string          `gorm:"column:password_hash;size:96;not null" json:"-"`
	Role            Role            `gorm:"column:role;size:16;not null;default:USER" json:"role"`
	Status          Status          `gorm:"column:status;size:16;not null;default:PENDING;index:idx_users_status" json:"status"`
	EmailVerified   bool            `gorm:"column:email_verified;not null;default:false" json:"emailVerified"`
	ApplicationType ApplicationType `gorm:"column:application_type;size:32;not null;default:MEMBERSHIP" json:"applicationType"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime;index:idx_users_created_at" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
