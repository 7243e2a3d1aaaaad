package recruitment

import (
	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/user"
)

type ReferenceInput struct {
	Name         string `json:"name" validate:"required,max=191"`
	Relationship string `json:"relationship" validate:"required,max=96"`
	Phone        string `json:"phone" validate:"required,max=64"`
	Email        string `json:"email" validate:"required,email"`
}

// SubmitInput is the full applicant payload plus the voucher being redeemed.
type SubmitInput struct {
	VoucherCode string `json:"voucherCode" validate:"required,vouchercode"`

	FullName     string `json:"fullName" validate:"required,max=191"`
	DateOfBirth  string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	PlaceOfBirth string `json:"placeOfBirth" validate:"required,max=191"`
	Nationality  string `json:"nationality" validate:"required,max=96"`

	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,max=64"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required,max=96"`
	State      string `json:"state" validate:"required,max=96"`
	Country    string `json:"country" validate:"required,max=96"`
	PostalCode string `json:"postalCode" validate:"required,max=32"`

	Occupation        string `json:"occupation" validate:"required,max=128"`
	Employer          string `json:"employer" validate:"required,max=191"`
	YearsInProfession int    `json:"yearsInProfession" validate:"gte=0,lte=80"`

	Reason                 string `json:"reason" validate:"required"`
	KnowledgeOfFreemasonry string `json:"knowledgeOfFreemasonry" validate:"required"`
	RecommendedBy          string `json:"recommendedBy" validate:"max=191"`
	PreviouslyApplied      bool   `json:"previouslyApplied"`
	RelativesInFreemasonry bool   `json:"relativesInFreemasonry"`
	RelativeDetails        string `json:"relativeDetails" validate:"required_if=RelativesInFreemasonry true"`

	References []ReferenceInput `json:"references" validate:"len=3,dive"`

	CriminalRecord       bool   `json:"criminalRecord"`
	CriminalDetails      string `json:"criminalDetails" validate:"required_if=CriminalRecord true"`
	MoralCharacter       string `json:"moralCharacter" validate:"required"`
	BeliefInSupremeBeing bool   `json:"beliefInSupremeBeing" validate:"eq=true"`
}

type UpdateStatusInput struct {
	Status      string  `json:"status" validate:"required,oneof=PENDING UNDER_REVIEW APPROVED REJECTED"`
	ReviewNotes *string `json:"reviewNotes"`
}

type ApplicantDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ApplicationDTO is the stored application; admin listings add the owning
// account.
type ApplicationDTO struct {
	*recruitment.Application
	Applicant *ApplicantDTO `json:"applicant,omitempty"`
}

func toDTO(a *recruitment.Application) ApplicationDTO {
	return ApplicationDTO{Application: a, Applicant: toApplicant(a.Applicant)}
}

func toApplicant(u *user.User) *ApplicantDTO {
	if u == nil {
		return nil
	}
	return &ApplicantDTO{ID: u.PublicID, FullName: u.FullName, Email: u.Email}
}
