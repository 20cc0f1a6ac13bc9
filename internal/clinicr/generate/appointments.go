package generate

import (
	"fmt"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// appointmentWindowDays bounds appointment dates around the anchor.
const appointmentWindowDays = 30

// Appointments samples count appointments over the patient and provider
// pools. Status follows the calendar day: days before the anchor day only
// hold Completed, Cancelled or No-show.
func Appointments(src *random.Source, patients []model.Patient, providers []model.Provider, count int) []model.Appointment {
	requirePositive("Appointments", count)
	requireNonEmpty("Appointments", "patient", len(patients))
	requireNonEmpty("Appointments", "provider", len(providers))

	now := src.Now()
	today := src.Today()
	from := now.AddDate(0, 0, -appointmentWindowDays)
	to := now.AddDate(0, 0, appointmentWindowDays)

	out := make([]model.Appointment, 0, count)
	for i := 0; i < count; i++ {
		patient := random.Pick(src, patients)
		provider := random.Pick(src, providers)
		at := src.Between(from, to)
		hour := src.Int(9, 16)
		minute := random.Pick(src, catalog.Minutes)

		a := model.Appointment{
			ID:           model.AppointmentID.Format(i + 1),
			PatientID:    patient.ID,
			PatientName:  patient.FullName(),
			ProviderID:   provider.ID,
			ProviderName: provider.Name,
			Date:         day(at),
			Time:         fmt.Sprintf("%02d:%s", hour, minute),
			Duration:     random.Pick(src, catalog.Durations),
			Type:         random.Pick(src, catalog.AppointmentTypes),
		}
		if parseDay(a.Date).Before(today) {
			a.Status = random.Pick(src, catalog.PastStatuses)
		} else {
			a.Status = random.Pick(src, catalog.UpcomingStatuses)
		}
		a.Reason = random.Pick(src, catalog.VisitReasons)
		a.Notes, _ = random.Maybe(src, 0.3, func() string { return src.Sentence(8) })
		out = append(out, a)
	}
	return out
}
