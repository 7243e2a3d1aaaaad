package servicereq

type CreateInput struct {
	ServiceType string `json:"serviceType" validate:"required,oneof=MEMBERSHIP_CARD CERTIFICATE LETTER ALL"`
	Urgency     string `json:"urgency" validate:"omitempty,oneof=STANDARD EXPEDITED"`
	Details     string `json:"details" validate:"max=4000"`
}

type ListFilter struct {
	Status      string `query:"status"`
	ServiceType string `query:"serviceType"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED COMPLETED"`
}
