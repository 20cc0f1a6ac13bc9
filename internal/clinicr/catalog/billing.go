package catalog

import "github.com/vaibhaw-/ClinicR/internal/clinicr/model"

var ClaimStatuses = []model.ClaimStatus{
	model.ClaimDraft, model.ClaimSubmitted, model.ClaimAccepted, model.ClaimRejected, model.ClaimPaid,
}

var PaymentStatuses = []model.PaymentStatus{model.PaymentPending, model.PaymentCompleted, model.PaymentRefunded}

var PaymentMethods = []model.PaymentMethod{
	model.PaymentCash, model.PaymentCard, model.PaymentInsurance, model.PaymentOnline,
}

// Claim amount bounds.
const (
	ClaimTotalMin     = 80
	ClaimTotalMax     = 500
	ClaimInsuranceMin = 40
	RefundMin         = 10
)
