package store

import (
	"strings"
	"time"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

// Filter is a predicate over one entity type. Filters compose with AND
// semantics through Select.
type Filter[T any] func(T) bool

// Select returns the items that pass every filter, in collection order.
// With no filters every item matches.
func Select[T any](items []T, filters ...Filter[T]) []T {
	var out []T
	for _, it := range items {
		if matchAll(it, filters) {
			out = append(out, it)
		}
	}
	return out
}

func matchAll[T any](item T, filters []Filter[T]) bool {
	for _, f := range filters {
		if !f(item) {
			return false
		}
	}
	return true
}

// containsFold reports whether any field contains q, ignoring case.
func containsFold(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// inRange reports whether the civil date lies in [from, to]. A zero bound
// leaves that side open.
func inRange(date string, from, to time.Time) bool {
	if !from.IsZero() && date < from.Format(model.DateLayout) {
		return false
	}
	if !to.IsZero() && date > to.Format(model.DateLayout) {
		return false
	}
	return true
}

// PatientSearch matches first name, last name, id, phone or email.
//
// Examples:
// - PatientSearch("rao") matches "Asha Rao"
// - PatientSearch("PAT-0000") matches every id starting with that prefix
func PatientSearch(q string) Filter[model.Patient] {
	return func(p model.Patient) bool {
		return containsFold(q, p.FirstName, p.LastName, p.ID, p.Phone, p.Email)
	}
}

func PatientGender(g model.Gender) Filter[model.Patient] {
	return func(p model.Patient) bool { return strings.EqualFold(string(p.Gender), string(g)) }
}

func PatientCountry(c model.Country) Filter[model.Patient] {
	return func(p model.Patient) bool { return strings.EqualFold(string(p.Address.Country), string(c)) }
}

func PatientStatusIs(s model.PatientStatus) Filter[model.Patient] {
	return func(p model.Patient) bool { return strings.EqualFold(string(p.Status), string(s)) }
}

func AppointmentPatient(patientID string) Filter[model.Appointment] {
	return func(a model.Appointment) bool { return a.PatientID == patientID }
}

func AppointmentOn(date string) Filter[model.Appointment] {
	return func(a model.Appointment) bool { return a.Date == date }
}

func AppointmentProvider(providerID string) Filter[model.Appointment] {
	return func(a model.Appointment) bool { return a.ProviderID == providerID }
}

func ClaimStatusIs(s model.ClaimStatus) Filter[model.Claim] {
	return func(c model.Claim) bool { return c.Status == s }
}

func ClaimPatient(patientID string) Filter[model.Claim] {
	return func(c model.Claim) bool { return c.PatientID == patientID }
}

func ClaimDateRange(from, to time.Time) Filter[model.Claim] {
	return func(c model.Claim) bool { return inRange(c.Date, from, to) }
}

// ClaimSearch matches claim id, patient name or insurer.
func ClaimSearch(q string) Filter[model.Claim] {
	return func(c model.Claim) bool {
		return containsFold(q, c.ID, c.PatientName, c.InsuranceProvider, c.ClaimNumber)
	}
}

func PaymentStatusIs(s model.PaymentStatus) Filter[model.Payment] {
	return func(p model.Payment) bool { return p.Status == s }
}

func PaymentMethodIs(m model.PaymentMethod) Filter[model.Payment] {
	return func(p model.Payment) bool { return p.Method == m }
}

func PaymentDateRange(from, to time.Time) Filter[model.Payment] {
	return func(p model.Payment) bool { return inRange(p.Date, from, to) }
}

func LabPatient(patientID string) Filter[model.LabResult] {
	return func(l model.LabResult) bool { return l.PatientID == patientID }
}

func LabStatusIs(s model.LabStatus) Filter[model.LabResult] {
	return func(l model.LabResult) bool { return l.Status == s }
}

// LabPerformer matches on the performing provider's display name.
func LabPerformer(name string) Filter[model.LabResult] {
	return func(l model.LabResult) bool { return l.PerformedBy == name }
}

func LabOrderedBetween(from, to time.Time) Filter[model.LabResult] {
	return func(l model.LabResult) bool { return inRange(l.OrderDate, from, to) }
}

// LabSearch matches test name, test code or performer.
func LabSearch(q string) Filter[model.LabResult] {
	return func(l model.LabResult) bool {
		return containsFold(q, l.TestName, l.TestCode, l.PerformedBy)
	}
}
