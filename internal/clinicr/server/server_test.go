package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/store"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/verify"
)

var anchor = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*httptest.Server, *generate.Dataset) {
	t.Helper()
	ds, err := generate.Generate(generate.DefaultOptions(anchor))
	require.NoError(t, err)
	s, err := New(ds, Options{Addr: ":0"})
	require.NoError(t, err)
	require.NoError(t, s.LogRoutes())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, ds
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/healthz", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCollections(t *testing.T) {
	ts, ds := newTestServer(t)

	var providers []model.Provider
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/providers", &providers))
	assert.Equal(t, ds.Providers, providers)

	var patients []model.Patient
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients", &patients))
	assert.Len(t, patients, len(ds.Patients))

	var meds []model.Medication
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/medications", &meds))
	assert.Len(t, meds, len(ds.Medications))

	var meta generate.Meta
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/meta", &meta))
	assert.Equal(t, "2026-03-15", meta.Today)
}

func TestPointLookups(t *testing.T) {
	ts, ds := newTestServer(t)

	var p model.Patient
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients/"+ds.Patients[4].ID, &p))
	assert.Equal(t, ds.Patients[4], p)

	var c model.Claim
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/claims/"+ds.Claims[0].ID, &c))
	assert.Equal(t, ds.Claims[0], c)

	var e errorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts, "/api/v1/patients/PAT-999999", &e))
	assert.Equal(t, "patient PAT-999999 not found", e.Error)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts, "/api/v1/patients/PAT-999999/claims", &e))
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts, "/api/v1/payments/PAY-99999", &e))
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts, "/api/v1/nothing-here", &e))
	assert.Equal(t, "route not found", e.Error)
}

func TestPatientSubResources(t *testing.T) {
	ts, ds := newTestServer(t)
	st := store.New(ds)
	pid := ds.Appointments[0].PatientID

	var appts []model.Appointment
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients/"+pid+"/appointments", &appts))
	assert.Equal(t, st.AppointmentsByPatient(pid), appts)

	var imms []model.Immunization
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients/"+pid+"/immunizations", &imms))
	assert.Equal(t, ds.Immunizations[pid], imms)

	var stats store.VisitStats
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients/"+pid+"/visit-stats", &stats))
	assert.Equal(t, st.VisitStats(pid), stats)
	assert.GreaterOrEqual(t, stats.Total, 1)

	var claims []model.Claim
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients/"+pid+"/claims", &claims))
	assert.NotNil(t, claims)
}

func TestFilters(t *testing.T) {
	ts, ds := newTestServer(t)

	var qatar []model.Patient
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/patients?country=Qatar", &qatar))
	for _, p := range qatar {
		assert.Equal(t, model.CountryQatar, p.Address.Country)
	}

	day := ds.Appointments[0].Date
	var onDay []model.Appointment
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/appointments?date="+day, &onDay))
	require.NotEmpty(t, onDay)
	for _, a := range onDay {
		assert.Equal(t, day, a.Date)
	}

	var paid []model.Claim
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/claims?status=Paid", &paid))
	for _, c := range paid {
		assert.Equal(t, model.ClaimPaid, c.Status)
	}

	var none []model.Claim
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/claims?from=2001-01-01&to=2001-12-31", &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)

	var labs []model.LabResult
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/lab-results?status=Completed", &labs))
	for _, l := range labs {
		assert.NotEmpty(t, l.ResultDate)
	}
}

func TestBadDates(t *testing.T) {
	ts, _ := newTestServer(t)
	for _, path := range []string{
		"/api/v1/appointments?date=2026-13-45",
		"/api/v1/claims?from=2026-13-45",
		"/api/v1/payments?to=2026-13-45",
		"/api/v1/lab-results?from=2026-13-45",
	} {
		var e errorResponse
		assert.Equal(t, http.StatusBadRequest, getJSON(t, ts, path, &e), path)
		assert.Contains(t, e.Error, "invalid", path)
	}
}

func TestAggregates(t *testing.T) {
	ts, ds := newTestServer(t)
	st := store.New(ds)

	var billing billingSummary
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/billing/summary", &billing))
	assert.Equal(t, st.FinancialSummary(), billing.Financials)

	var labs store.LabStats
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/labs/stats", &labs))
	assert.Equal(t, len(ds.LabResults), labs.Total)

	var india indiaCompliance
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/compliance/india", &india))
	assert.Equal(t, 100, india.Score)

	var qatar qatarCompliance
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/compliance/qatar", &qatar))
	assert.Equal(t, "Licensed", qatar.Summary.Stage)

	var dash model.DashboardMetrics
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/dashboard", &dash))
	assert.Equal(t, ds.DashboardMetrics, dash)

	var fp verify.Fingerprint
	assert.Equal(t, http.StatusOK, getJSON(t, ts, "/api/v1/fingerprint", &fp))
	want, err := verify.ComputeFingerprint(ds)
	require.NoError(t, err)
	assert.Equal(t, want.Head, fp.Head)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	getJSON(t, ts, "/api/v1/providers", nil)
	getJSON(t, ts, "/api/v1/patients/PAT-999999", nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, text, `clinicr_dataset_entities{collection="patients"} 100`)
	assert.Contains(t, text, `clinicr_lookup_misses_total{entity="patient"} 1`)
	assert.True(t, strings.Contains(text, `route="/api/v1/providers"`))
}
