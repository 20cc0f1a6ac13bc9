package generate

import (
	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// Immunizations emits one to four doses per patient, keyed by patient id.
// Each list keeps dose order 1..n.
func Immunizations(src *random.Source, patients []model.Patient) map[string][]model.Immunization {
	requireNonEmpty("Immunizations", "patient", len(patients))

	out := make(map[string][]model.Immunization, len(patients))
	for _, p := range patients {
		doses := src.Int(1, 4)
		list := make([]model.Immunization, 0, doses)
		for dose := 1; dose <= doses; dose++ {
			list = append(list, model.Immunization{
				ID:             model.ImmunizationID(p.ID, dose),
				VaccineName:    random.Pick(src, catalog.Vaccines),
				Date:           day(src.Past(5)),
				DoseNumber:     dose,
				AdministeredBy: src.FullName(),
				LotNumber:      "LOT" + src.Alphanumeric(6),
				ExpiryDate:     day(src.Future(1)),
				Site:           random.Pick(src, catalog.InjectionSites),
				Route:          catalog.ImmunizationRoute,
			})
		}
		out[p.ID] = list
	}
	return out
}
