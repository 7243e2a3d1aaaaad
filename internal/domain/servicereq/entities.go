package servicereq

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("service request not found")
	ErrInvalidStatus      = errors.New("invalid service request status")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidUrgency     = errors.New("invalid urgency")
)

// Cap on admin listings.
const ListLimit = 100

type ServiceType string

const (
	TypeMembershipCard ServiceType = "MEMBERSHIP_CARD"
	TypeCertificate    ServiceType = "CERTIFICATE"
	TypeLetter         ServiceType = "LETTER"
	TypeAll            ServiceType = "ALL"
)

func (t ServiceType) Valid() bool {
	switch t {
	case TypeMembershipCard, TypeCertificate, TypeLetter, TypeAll:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyStandard  Urgency = "STANDARD"
	UrgencyExpedited Urgency = "EXPEDITED"
)

func (u Urgency) Valid() bool { return u == UrgencyStandard || u == UrgencyExpedited }

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Table: service_requests
type Request struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RequestID    string      `gorm:"column:request_id;size:32;not null;uniqueIndex:ux_service_requests_request_id" json:"id"`
	UserID       uint64      `gorm:"column:user_id;not null;index:idx_service_requests_user" json:"-"`
	UserEmail    string      `gorm:"column:user_email;size:191;not null" json:"userEmail"`
	UserFullName string      `gorm:"column:user_full_name;size:191;not null" json:"userFullName"`
	ServiceType  ServiceType `gorm:"column:service_type;size:32;not null;index:idx_service_requests_type" json:"serviceType"`
	Urgency      Urgency     `gorm:"column:urgency;size:16;not null;default:STANDARD" json:"urgency"`
	Details      string      `gorm:"column:details;type:text" json:"details"`
	Status       Status      `gorm:"column:status;size:16;not null;default:PENDING;index:idx_service_requests_status" json:"status"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime;index:idx_service_requests_created" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Request) TableName() string { return "service_requests" }
