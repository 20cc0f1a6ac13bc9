// Package store is the read-only access layer over a generated dataset.
// Lookups scan linearly; there is no caching and nothing is ever written
// after New returns.
package store

import (
	"slices"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

type Store struct {
	ds *generate.Dataset
}

// New wraps ds. The caller must not modify ds afterwards.
func New(ds *generate.Dataset) *Store {
	return &Store{ds: ds}
}

func (s *Store) Meta() generate.Meta { return s.ds.Meta }

// Bulk accessors return shallow copies of the collections.

func (s *Store) Providers() []model.Provider         { return slices.Clone(s.ds.Providers) }
func (s *Store) Patients() []model.Patient           { return slices.Clone(s.ds.Patients) }
func (s *Store) Appointments() []model.Appointment   { return slices.Clone(s.ds.Appointments) }
func (s *Store) ClinicalNotes() []model.ClinicalNote { return slices.Clone(s.ds.ClinicalNotes) }
func (s *Store) Medications() []model.Medication     { return slices.Clone(s.ds.Medications) }
func (s *Store) Allergies() []model.Allergy          { return slices.Clone(s.ds.Allergies) }
func (s *Store) Problems() []model.Problem           { return slices.Clone(s.ds.Problems) }
func (s *Store) LabResults() []model.LabResult       { return slices.Clone(s.ds.LabResults) }
func (s *Store) Claims() []model.Claim               { return slices.Clone(s.ds.Claims) }
func (s *Store) Payments() []model.Payment           { return slices.Clone(s.ds.Payments) }

func (s *Store) IndiaCompliance() model.IndiaCompliance { return s.ds.IndiaCompliance }
func (s *Store) QatarCompliance() model.QatarCompliance { return s.ds.QatarCompliance }

func (s *Store) DashboardMetrics() model.DashboardMetrics { return s.ds.DashboardMetrics }

// Immunizations returns the per-patient dose lists.
func (s *Store) Immunizations() map[string][]model.Immunization {
	out := make(map[string][]model.Immunization, len(s.ds.Immunizations))
	for k, v := range s.ds.Immunizations {
		out[k] = slices.Clone(v)
	}
	return out
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store) Provider(id string) (model.Provider, bool) {
	return find(s.ds.Providers, func(p model.Provider) bool { return p.ID == id })
}

func (s *Store) Patient(id string) (model.Patient, bool) {
	return find(s.ds.Patients, func(p model.Patient) bool { return p.ID == id })
}

func (s *Store) Appointment(id string) (model.Appointment, bool) {
	return find(s.ds.Appointments, func(a model.Appointment) bool { return a.ID == id })
}

func (s *Store) ClinicalNote(id string) (model.ClinicalNote, bool) {
	return find(s.ds.ClinicalNotes, func(n model.ClinicalNote) bool { return n.ID == id })
}

func (s *Store) LabResult(id string) (model.LabResult, bool) {
	return find(s.ds.LabResults, func(l model.LabResult) bool { return l.ID == id })
}

func (s *Store) Claim(id string) (model.Claim, bool) {
	return find(s.ds.Claims, func(c model.Claim) bool { return c.ID == id })
}

func (s *Store) Payment(id string) (model.Payment, bool) {
	return find(s.ds.Payments, func(p model.Payment) bool { return p.ID == id })
}

func (s *Store) AppointmentsByPatient(patientID string) []model.Appointment {
	return Select(s.ds.Appointments, AppointmentPatient(patientID))
}

// AppointmentsByDate matches the civil date exactly.
func (s *Store) AppointmentsByDate(date string) []model.Appointment {
	return Select(s.ds.Appointments, AppointmentOn(date))
}

func (s *Store) ClinicalNotesByPatient(patientID string) []model.ClinicalNote {
	return Select(s.ds.ClinicalNotes, func(n model.ClinicalNote) bool { return n.PatientID == patientID })
}

// ImmunizationsByPatient returns nil for patients without records.
func (s *Store) ImmunizationsByPatient(patientID string) []model.Immunization {
	return slices.Clone(s.ds.Immunizations[patientID])
}

func (s *Store) LabResultsByPatient(patientID string) []model.LabResult {
	return Select(s.ds.LabResults, LabPatient(patientID))
}

func (s *Store) ClaimsByPatient(patientID string) []model.Claim {
	return Select(s.ds.Claims, ClaimPatient(patientID))
}

func (s *Store) PaymentsByClaim(claimID string) []model.Payment {
	return Select(s.ds.Payments, func(p model.Payment) bool { return p.ClaimID == claimID })
}

func (s *Store) FindPatients(filters ...Filter[model.Patient]) []model.Patient {
	return Select(s.ds.Patients, filters...)
}

func (s *Store) FindAppointments(filters ...Filter[model.Appointment]) []model.Appointment {
	return Select(s.ds.Appointments, filters...)
}

func (s *Store) FindClaims(filters ...Filter[model.Claim]) []model.Claim {
	return Select(s.ds.Claims, filters...)
}

func (s *Store) FindPayments(filters ...Filter[model.Payment]) []model.Payment {
	return Select(s.ds.Payments, filters...)
}

func (s *Store) FindLabResults(filters ...Filter[model.LabResult]) []model.LabResult {
	return Select(s.ds.LabResults, filters...)
}
