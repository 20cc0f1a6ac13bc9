package generate

import (
	"fmt"
	"time"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// NoteLinkage selects how clinical notes reference appointments.
type NoteLinkage string

const (
	// LinkageLoose samples an appointment id independently of the
	// appointment pool, so the referenced appointment may not exist.
	LinkageLoose NoteLinkage = "loose"
	// LinkageStrict picks an existing appointment and inherits its patient,
	// provider and date.
	LinkageStrict NoteLinkage = "strict"
)

// looseAppointmentSpan is the id range loose notes sample from.
const looseAppointmentSpan = 100

func ParseNoteLinkage(s string) (NoteLinkage, error) {
	switch NoteLinkage(s) {
	case LinkageLoose, "":
		return LinkageLoose, nil
	case LinkageStrict:
		return LinkageStrict, nil
	}
	return "", fmt.Errorf("%w: unknown note linkage %q", ErrInvalidOptions, s)
}

// ClinicalNotes samples patient and provider independently for each note.
func ClinicalNotes(src *random.Source, patients []model.Patient, providers []model.Provider, count int) []model.ClinicalNote {
	requirePositive("ClinicalNotes", count)
	requireNonEmpty("ClinicalNotes", "patient", len(patients))
	requireNonEmpty("ClinicalNotes", "provider", len(providers))

	out := make([]model.ClinicalNote, 0, count)
	for i := 0; i < count; i++ {
		patient := random.Pick(src, patients)
		provider := random.Pick(src, providers)
		dx := random.Pick(src, catalog.Diagnoses)
		aptID := model.AppointmentID.Format(src.Int(1, looseAppointmentSpan))
		date := day(src.Recent(30))
		out = append(out, soapNote(src, i, patient.ID, provider.ID, provider.Name, aptID, date, dx))
	}
	return out
}

// LinkedClinicalNotes attaches every note to an existing appointment.
func LinkedClinicalNotes(src *random.Source, appointments []model.Appointment, count int) []model.ClinicalNote {
	requirePositive("LinkedClinicalNotes", count)
	requireNonEmpty("LinkedClinicalNotes", "appointment", len(appointments))

	out := make([]model.ClinicalNote, 0, count)
	for i := 0; i < count; i++ {
		apt := random.Pick(src, appointments)
		dx := random.Pick(src, catalog.Diagnoses)
		out = append(out, soapNote(src, i, apt.PatientID, apt.ProviderID, apt.ProviderName, apt.ID, apt.Date, dx))
	}
	return out
}

func soapNote(src *random.Source, i int, patientID, providerID, providerName, aptID, date string, dx model.Diagnosis) model.ClinicalNote {
	n := model.ClinicalNote{
		ID:            model.ClinicalNoteID.Format(i + 1),
		PatientID:     patientID,
		AppointmentID: aptID,
		ProviderID:    providerID,
		ProviderName:  providerName,
		Date:          date,
		Type:          model.NoteSOAP,
		Subjective:    src.Paragraph(3),
		Objective:     src.Paragraph(3),
		Assessment:    dx.Description,
		Plan:          src.Paragraph(2),
	}
	vs := vitalSigns(src)
	n.VitalSigns = &vs
	n.Diagnoses = []model.Diagnosis{{Code: dx.Code, Description: dx.Description, Type: model.DiagnosisPrimary}}
	n.Medications = []model.Medication{}
	return n
}

func vitalSigns(src *random.Source) model.VitalSigns {
	return model.VitalSigns{
		Temperature:            src.Float(36.0, 38.5, 1),
		BloodPressureSystolic:  src.Int(110, 140),
		BloodPressureDiastolic: src.Int(70, 90),
		HeartRate:              src.Int(60, 100),
		RespiratoryRate:        src.Int(12, 20),
		OxygenSaturation:       src.Int(95, 100),
		Weight:                 src.Float(50, 100, 1),
		Height:                 src.Float(150, 190, 1),
		RecordedAt:             src.Now().Format(time.RFC3339),
	}
}
