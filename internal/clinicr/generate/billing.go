package generate

import (
	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// Claims bills the first limit appointments in pool order, one claim each.
// totalAmount = insuranceAmount + patientAmount always holds.
func Claims(src *random.Source, appointments []model.Appointment, limit int) []model.Claim {
	requirePositive("Claims", limit)
	n := min(limit, len(appointments))

	out := make([]model.Claim, 0, n)
	for i, apt := range appointments[:n] {
		visit := parseDay(apt.Date)
		total := src.Int(catalog.ClaimTotalMin, catalog.ClaimTotalMax)
		insurance := src.Int(catalog.ClaimInsuranceMin, total)

		c := model.Claim{
			ID:              model.ClaimID.Format(i + 1),
			PatientID:       apt.PatientID,
			PatientName:     apt.PatientName,
			AppointmentID:   apt.ID,
			Date:            apt.Date,
			TotalAmount:     total,
			InsuranceAmount: insurance,
			PatientAmount:   total - insurance,
			Status:          random.Pick(src, catalog.ClaimStatuses),
		}
		c.SubmittedDate, _ = random.Maybe(src, 0.7, func() string { return day(src.Soon(5, visit)) })
		if c.Status == model.ClaimPaid {
			c.PaidDate = day(src.Soon(15, visit))
		}
		c.InsuranceProvider = random.Pick(src, catalog.Insurers)
		c.ClaimNumber = "CLMNO" + src.Numeric(7)
		out = append(out, c)
	}
	return out
}

// Payments settles the first limit claims. A Paid claim always yields a
// Completed payment; the amount depends on the payment status.
func Payments(src *random.Source, claims []model.Claim, limit int) []model.Payment {
	requirePositive("Payments", limit)
	n := min(limit, len(claims))

	out := make([]model.Payment, 0, n)
	for i, c := range claims[:n] {
		status := model.PaymentCompleted
		if c.Status != model.ClaimPaid {
			status = random.Pick(src, catalog.PaymentStatuses)
		}

		var amount int
		switch status {
		case model.PaymentRefunded:
			amount = src.Int(min(catalog.RefundMin, c.PatientAmount), c.PatientAmount)
		case model.PaymentCompleted:
			amount = c.PatientAmount + c.InsuranceAmount
		default:
			amount = c.PatientAmount
		}

		out = append(out, model.Payment{
			ID:        model.PaymentID.Format(i + 1),
			ClaimID:   c.ID,
			PatientID: c.PatientID,
			Amount:    amount,
			Method:    random.Pick(src, catalog.PaymentMethods),
			Date:      day(src.Soon(10, parseDay(c.Date))),
			Status:    status,
			Reference: "TXN" + src.Alphanumeric(10),
		})
	}
	return out
}
