package generate

import (
	"fmt"
	"strings"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// Providers returns count providers with sequential ids from PRV-0001.
func Providers(src *random.Source, count int) []model.Provider {
	requirePositive("Providers", count)
	out := make([]model.Provider, 0, count)
	for i := 0; i < count; i++ {
		name := src.FullName()
		first, last, _ := strings.Cut(name, " ")
		out = append(out, model.Provider{
			ID:            model.ProviderID.Format(i + 1),
			Name:          name,
			Specialty:     random.Pick(src, catalog.Specialties),
			Qualification: random.Pick(src, catalog.Qualifications),
			LicenseNumber: fmt.Sprintf("MED%d", src.Int(10000, 99999)),
			Email:         email(src, first, last),
			Phone:         src.Phone(),
			PhotoURL:      avatarURL(fmt.Sprint(i)),
			Schedule:      append([]model.ScheduleSlot(nil), catalog.WeeklySchedule...),
		})
	}
	return out
}

// Medications returns a flat pool of prescriptions not tied to a patient.
func Medications(src *random.Source, count int) []model.Medication {
	requirePositive("Medications", count)
	out := make([]model.Medication, 0, count)
	for i := 0; i < count; i++ {
		m := model.Medication{
			ID:        model.MedicationID.Format(i + 1),
			Name:      random.Pick(src, catalog.MedicationNames),
			Dosage:    random.Pick(src, catalog.Dosages),
			Frequency: random.Pick(src, catalog.Frequencies),
			Route:     random.Pick(src, catalog.Routes),
			StartDate: day(src.Recent(30)),
		}
		m.EndDate, _ = random.Maybe(src, 0.5, func() string { return day(src.Soon(30, src.Now())) })
		m.PrescribedBy = src.FullName()
		m.Status = random.Pick(src, catalog.MedicationStatuses)
		m.Instructions, _ = random.Maybe(src, 0.5, func() string { return src.Sentence(8) })
		out = append(out, m)
	}
	return out
}

func Allergies(src *random.Source, count int) []model.Allergy {
	requirePositive("Allergies", count)
	out := make([]model.Allergy, 0, count)
	for i := 0; i < count; i++ {
		a := model.Allergy{
			ID:       model.AllergyID.Format(i + 1),
			Allergen: random.Pick(src, catalog.Allergens),
			Reaction: random.Pick(src, catalog.Reactions),
			Severity: random.Pick(src, catalog.Severities),
		}
		a.OnsetDate, _ = random.Maybe(src, 0.5, func() string { return day(src.Past(5)) })
		out = append(out, a)
	}
	return out
}

func Problems(src *random.Source, count int) []model.Problem {
	requirePositive("Problems", count)
	out := make([]model.Problem, 0, count)
	for i := 0; i < count; i++ {
		entry := random.Pick(src, catalog.Problems)
		p := model.Problem{
			ID:          model.ProblemID.Format(i + 1),
			Description: entry.Description,
			ICDCode:     entry.Code,
			Status:      random.Pick(src, catalog.ProblemStatuses),
			OnsetDate:   day(src.Past(3)),
		}
		p.ResolvedDate, _ = random.Maybe(src, 0.5, func() string { return day(src.Recent(30)) })
		p.Notes, _ = random.Maybe(src, 0.5, func() string { return src.Sentence(8) })
		out = append(out, p)
	}
	return out
}
