package generate

import (
	"strconv"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// LabResults orders count panels. A result date is drawn with probability
// 0.7; its presence alone decides the Completed status.
func LabResults(src *random.Source, patients []model.Patient, providers []model.Provider, count int) []model.LabResult {
	requirePositive("LabResults", count)
	requireNonEmpty("LabResults", "patient", len(patients))
	requireNonEmpty("LabResults", "provider", len(providers))

	out := make([]model.LabResult, 0, count)
	for i := 0; i < count; i++ {
		patient := random.Pick(src, patients)
		provider := random.Pick(src, providers)
		panel := random.Pick(src, catalog.LabPanels)
		ordered := src.Recent(60)
		resulted, hasResult := random.Maybe(src, 0.7, func() string { return day(src.Soon(7, ordered)) })

		l := model.LabResult{
			ID:         model.LabResultID.Format(i + 1),
			PatientID:  patient.ID,
			TestName:   panel.Name,
			TestCode:   panel.Code,
			OrderDate:  day(ordered),
			ResultDate: resulted,
		}
		if hasResult {
			l.Status = model.LabCompleted
		} else {
			l.Status = random.Pick(src, catalog.UnresolvedLabStatuses)
		}
		l.Results = labItems(src, panel)
		l.PerformedBy = provider.Name
		l.Notes, _ = random.Maybe(src, 0.3, func() string { return src.Sentence(8) })
		out = append(out, l)
	}
	return out
}

func labItems(src *random.Source, panel catalog.LabPanel) []model.LabResultItem {
	items := make([]model.LabResultItem, 0, len(panel.Items))
	for _, it := range panel.Items {
		jitter := src.Float(catalog.JitterMin, catalog.JitterMax, 2)
		abnormal := src.Bool(0.15)

		var value string
		if it.Range.Inequality() {
			value = strconv.Itoa(src.Int(catalog.InequalityMin, catalog.InequalityMax))
		} else {
			value = strconv.FormatFloat(it.Range.Low*jitter, 'f', 2, 64)
		}
		items = append(items, model.LabResultItem{
			Name:           it.Name,
			Value:          value,
			Unit:           it.Unit,
			ReferenceRange: it.Range,
			IsAbnormal:     abnormal,
		})
	}
	return items
}
