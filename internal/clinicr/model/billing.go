package model

type Claim struct {
	ID                string      `json:"id" validate:"required"`
	PatientID         string      `json:"patientId" validate:"required"`
	PatientName       string      `json:"patientName" validate:"required"`
	AppointmentID     string      `json:"appointmentId" validate:"required"`
	Date              string      `json:"date" validate:"datetime=2006-01-02"`
	TotalAmount       int         `json:"totalAmount" validate:"gte=0"`
	InsuranceAmount   int         `json:"insuranceAmount" validate:"gte=0,ltefield=TotalAmount"`
	PatientAmount     int         `json:"patientAmount" validate:"gte=0"`
	Status            ClaimStatus `json:"status" validate:"oneof=Draft Submitted Accepted Rejected Paid"`
	SubmittedDate     string      `json:"submittedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaidDate          string      `json:"paidDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	InsuranceProvider string      `json:"insuranceProvider" validate:"required"`
	ClaimNumber       string      `json:"claimNumber,omitempty" validate:"omitempty,startswith=CLMNO,len=12"`
}

type Payment struct {
	ID        string        `json:"id" validate:"required"`
	ClaimID   string        `json:"claimId,omitempty"`
	PatientID string        `json:"patientId" validate:"required"`
	Amount    int           `json:"amount" validate:"gte=0"`
	Method    PaymentMethod `json:"method" validate:"oneof=Cash Card Insurance Online"`
	Date      string        `json:"date" validate:"datetime=2006-01-02"`
	Status    PaymentStatus `json:"status" validate:"oneof=Pending Completed Refunded"`
	Reference string        `json:"reference,omitempty" validate:"omitempty,startswith=TXN,len=13"`
}
