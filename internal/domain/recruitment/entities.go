package recruitment

import (
	"errors"
	"time"

	"lodge-portal/internal/domain/user"
)

var (
	ErrNotFound            = errors.New("recruitment application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrReferenceCount      = errors.New("exactly three character references are required")
	ErrAttestationRequired = errors.New("belief attestation is required to submit")
	ErrInvalidDateOfBirth  = errors.New("dateOfBirth must be a past date in YYYY-MM-DD format")
	ErrMissingDetails      = errors.New("details are required for every attestation answered yes")
	ErrInvalidYears        = errors.New("yearsInProfession must not be negative")
	// ErrVoucherConsumed is returned by Create when another application already
	// holds the voucher.
	ErrVoucherConsumed = errors.New("voucher already consumed by another application")
)

// RequiredReferences is the number of character references every
// application carries.
const RequiredReferences = 3

// Status is the review state of one application. Any status may be set from
// any other; there is no transition table beyond membership in this set.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Table: recruitment_applications
type Application struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID string `gorm:"column:application_id;size:32;not null;uniqueIndex:ux_recruitments_application_id" json:"id"`
	UserID        uint64 `gorm:"column:user_id;not null;index:idx_recruitments_user" json:"-"`
	// VoucherCode is a denormalized copy of the redeemed code; VoucherID keeps
	// the referential link for integrity checks.
	VoucherID   uint64 `gorm:"column:voucher_id;not null;uniqueIndex:ux_recruitments_voucher" json:"-"`
	VoucherCode string `gorm:"column:voucher_code;size:16;not null;index:idx_recruitments_voucher_code" json:"voucherCode"`

	FullName     string    `gorm:"column:full_name;size:191;not null" json:"fullName"`
	DateOfBirth  time.Time `gorm:"column:date_of_birth;type:date;not null" json:"dateOfBirth"`
	PlaceOfBirth string    `gorm:"column:place_of_birth;size:191;not null" json:"placeOfBirth"`
	Nationality  string    `gorm:"column:nationality;size:96;not null" json:"nationality"`

	Email      string `gorm:"column:email;size:191;not null" json:"email"`
	Phone      string `gorm:"column:phone;size:64;not null" json:"phone"`
	Address    string `gorm:"column:address;type:text;not null" json:"address"`
	City       string `gorm:"column:city;size:96;not null" json:"city"`
	State      string `gorm:"column:state;size:96;not null" json:"state"`
	Country    string `gorm:"column:country;size:96;not null" json:"country"`
	PostalCode string `gorm:"column:postal_code;size:32;not null" json:"postalCode"`

	Occupation        string `gorm:"column:occupation;size:128;not null" json:"occupation"`
	Employer          string `gorm:"column:employer;size:191;not null" json:"employer"`
	YearsInProfession int    `gorm:"column:years_in_profession;not null" json:"yearsInProfession"`

	Reason                 string `gorm:"column:reason;type:text;not null" json:"reason"`
	KnowledgeOfFreemasonry string `gorm:"column:knowledge_of_freemasonry;type:text;not null" json:"knowledgeOfFreemasonry"`
	RecommendedBy          string `gorm:"column:recommended_by;size:191" json:"recommendedBy,omitempty"`
	PreviouslyApplied      bool   `gorm:"column:previously_applied;not null;default:false" json:"previouslyApplied"`
	RelativesInFreemasonry bool   `gorm:"column:relatives_in_freemasonry;not null;default:false" json:"relativesInFreemasonry"`
	RelativeDetails        string `gorm:"column:relative_details;type:text" json:"relativeDetails,omitempty"`

	References []Reference `gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE" json:"references"`

	CriminalRecord       bool   `gorm:"column:criminal_record;not null;default:false" json:"criminalRecord"`
	CriminalDetails      string `gorm:"column:criminal_details;type:text" json:"criminalDetails,omitempty"`
	MoralCharacter       string `gorm:"column:moral_character;type:text;not null" json:"moralCharacter"`
	BeliefInSupremeBeing bool   `gorm:"column:belief_in_supreme_being;not null" json:"beliefInSupremeBeing"`

	Status      Status    `gorm:"column:status;size:16;not null;default:PENDING;index:idx_recruitments_status" json:"status"`
	ReviewNotes string    `gorm:"column:review_notes;type:text" json:"reviewNotes,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Applicant *user.User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Application) TableName() string { return "recruitment_applications" }

// Table: recruitment_references
type Reference struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID uint64 `gorm:"column:application_id;not null;index:idx_references_application" json:"-"`
	Position      int    `gorm:"column:position;not null" json:"-"`
	Name          string `gorm:"column:name;size:191;not null" json:"name"`
	Relationship  string `gorm:"column:relationship;size:96;not null" json:"relationship"`
	Phone         string `gorm:"column:phone;size:64;not null" json:"phone"`
	Email         string `gorm:"column:email;size:191;not null" json:"email"`
}

func (Reference) TableName() string { return "recruitment_references" }

// Complete reports whether every field of the reference is filled in.
func (r Reference) Complete() bool {
	return r.Name != "" && r.Relationship != "" && r.Phone != "" && r.Email != ""
}
