package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

// list keeps empty results as [] rather than null on the wire.
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// lookup renders the entity or a 404 naming the missing id.
func lookup[T any](s *Server, w http.ResponseWriter, r *http.Request, entity string, get func(string) (T, bool)) {
	id := chi.URLParam(r, "id")
	v, ok := get(id)
	if !ok {
		s.metrics.lookupMiss(entity)
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("%s %s not found", entity, id))
		return
	}
	render.JSON(w, r, v)
}

// queryDate parses an optional date query parameter in any layout
// dateparse understands. A missing parameter yields the zero time.
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q", key, raw)
	}
	return t, nil
}

// dateRange reads the from/to pair; ok is false once a 400 was written.
func dateRange(w http.ResponseWriter, r *http.Request) (from, to time.Time, ok bool) {
	var err error
	if from, err = queryDate(r, "from"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return from, to, false
	}
	if to, err = queryDate(r, "to"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return from, to, false
	}
	return from, to, true
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) getMeta(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.Meta())
}

func (s *Server) getFingerprint(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.fingerprint)
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.DashboardMetrics())
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, list(s.store.Providers()))
}

func (s *Server) getProvider(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "provider", s.store.Provider)
}

func (s *Server) listPatients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filters []store.Filter[model.Patient]
	if v := q.Get("q"); v != "" {
		filters = append(filters, store.PatientSearch(v))
	}
	if v := q.Get("gender"); v != "" {
		filters = append(filters, store.PatientGender(model.Gender(v)))
	}
	if v := q.Get("country"); v != "" {
		filters = append(filters, store.PatientCountry(model.Country(v)))
	}
	if v := q.Get("status"); v != "" {
		filters = append(filters, store.PatientStatusIs(model.PatientStatus(v)))
	}
	render.JSON(w, r, list(s.store.FindPatients(filters...)))
}

func (s *Server) getPatient(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "patient", s.store.Patient)
}

// withPatient runs fn for a known patient id and 404s otherwise.
func (s *Server) withPatient(w http.ResponseWriter, r *http.Request, fn func(id string) any) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Patient(id); !ok {
		s.metrics.lookupMiss("patient")
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("patient %s not found", id))
		return
	}
	render.JSON(w, r, fn(id))
}

func (s *Server) patientAppointments(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return list(s.store.AppointmentsByPatient(id)) })
}

func (s *Server) patientClinicalNotes(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return list(s.store.ClinicalNotesByPatient(id)) })
}

func (s *Server) patientImmunizations(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return list(s.store.ImmunizationsByPatient(id)) })
}

func (s *Server) patientLabResults(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return list(s.store.LabResultsByPatient(id)) })
}

func (s *Server) patientClaims(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return list(s.store.ClaimsByPatient(id)) })
}

func (s *Server) patientVisitStats(w http.ResponseWriter, r *http.Request) {
	s.withPatient(w, r, func(id string) any { return s.store.VisitStats(id) })
}

func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filters []store.Filter[model.Appointment]
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !date.IsZero() {
		filters = append(filters, store.AppointmentOn(date.Format(model.DateLayout)))
	}
	if v := q.Get("patientId"); v != "" {
		filters = append(filters, store.AppointmentPatient(v))
	}
	if v := q.Get("providerId"); v != "" {
		filters = append(filters, store.AppointmentProvider(v))
	}
	render.JSON(w, r, list(s.store.FindAppointments(filters...)))
}

func (s *Server) getAppointment(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "appointment", s.store.Appointment)
}

func (s *Server) listClinicalNotes(w http.ResponseWriter, r *http.Request) {
	if pid := r.URL.Query().Get("patientId"); pid != "" {
		render.JSON(w, r, list(s.store.ClinicalNotesByPatient(pid)))
		return
	}
	render.JSON(w, r, list(s.store.ClinicalNotes()))
}

func (s *Server) getClinicalNote(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "clinical note", s.store.ClinicalNote)
}

func (s *Server) listMedications(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, list(s.store.Medications()))
}

func (s *Server) listAllergies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, list(s.store.Allergies()))
}

func (s *Server) listProblems(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, list(s.store.Problems()))
}

func (s *Server) listLabResults(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	var filters []store.Filter[model.LabResult]
	if v := q.Get("status"); v != "" {
		filters = append(filters, store.LabStatusIs(model.LabStatus(v)))
	}
	if v := q.Get("patientId"); v != "" {
		filters = append(filters, store.LabPatient(v))
	}
	if v := q.Get("performer"); v != "" {
		filters = append(filters, store.LabPerformer(v))
	}
	if v := q.Get("q"); v != "" {
		filters = append(filters, store.LabSearch(v))
	}
	if !from.IsZero() || !to.IsZero() {
		filters = append(filters, store.LabOrderedBetween(from, to))
	}
	render.JSON(w, r, list(s.store.FindLabResults(filters...)))
}

func (s *Server) getLabResult(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "lab result", s.store.LabResult)
}

func (s *Server) listClaims(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	var filters []store.Filter[model.Claim]
	if v := q.Get("status"); v != "" {
		filters = append(filters, store.ClaimStatusIs(model.ClaimStatus(v)))
	}
	if v := q.Get("patientId"); v != "" {
		filters = append(filters, store.ClaimPatient(v))
	}
	if v := q.Get("q"); v != "" {
		filters = append(filters, store.ClaimSearch(v))
	}
	if !from.IsZero() || !to.IsZero() {
		filters = append(filters, store.ClaimDateRange(from, to))
	}
	render.JSON(w, r, list(s.store.FindClaims(filters...)))
}

func (s *Server) getClaim(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "claim", s.store.Claim)
}

func (s *Server) claimPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Claim(id); !ok {
		s.metrics.lookupMiss("claim")
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("claim %s not found", id))
		return
	}
	render.JSON(w, r, list(s.store.PaymentsByClaim(id)))
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	var filters []store.Filter[model.Payment]
	if v := q.Get("status"); v != "" {
		filters = append(filters, store.PaymentStatusIs(model.PaymentStatus(v)))
	}
	if v := q.Get("method"); v != "" {
		filters = append(filters, store.PaymentMethodIs(model.PaymentMethod(v)))
	}
	if !from.IsZero() || !to.IsZero() {
		filters = append(filters, store.PaymentDateRange(from, to))
	}
	render.JSON(w, r, list(s.store.FindPayments(filters...)))
}

func (s *Server) getPayment(w http.ResponseWriter, r *http.Request) {
	lookup(s, w, r, "payment", s.store.Payment)
}

type billingSummary struct {
	Financials store.Financials     `json:"financials"`
	Insurers   []store.InsurerTotal `json:"insurers"`
}

func (s *Server) getBillingSummary(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, billingSummary{
		Financials: s.store.FinancialSummary(),
		Insurers:   list(s.store.InsuranceSummary()),
	})
}

func (s *Server) getLabStats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.LabStats())
}

type indiaCompliance struct {
	Record model.IndiaCompliance `json:"record"`
	Score  int                   `json:"score"`
}

func (s *Server) getIndiaCompliance(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, indiaCompliance{Record: s.store.IndiaCompliance(), Score: s.store.IndiaComplianceScore()})
}

type qatarCompliance struct {
	Record  model.QatarCompliance `json:"record"`
	Summary store.QatarSummary    `json:"summary"`
}

func (s *Server) getQatarCompliance(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, qatarCompliance{Record: s.store.QatarCompliance(), Summary: s.store.QatarComplianceSummary()})
}
