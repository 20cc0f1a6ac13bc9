package verify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

var anchor = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func mustDataset(t *testing.T, mutate func(*generate.Options)) *generate.Dataset {
	t.Helper()
	opts := generate.DefaultOptions(anchor)
	if mutate != nil {
		mutate(&opts)
	}
	ds, err := generate.Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return ds
}

func hasRule(vs []Violation, rule, id string) bool {
	for _, v := range vs {
		if v.Rule == rule && (id == "" || v.EntityID == id) {
			return true
		}
	}
	return false
}

func TestCanonicalize_IsDeterministic(t *testing.T) {
	a := map[string]any{
		"b":      2,
		"a":      1,
		"nested": map[string]any{"y": 2, "x": 1},
	}
	b := map[string]any{
		"nested": map[string]any{"x": 1, "y": 2},
		"a":      1,
		"b":      2,
	}
	c1, err := Canonicalize(a)
	if err != nil {
		t.Fatalf("canonicalize a: %v", err)
	}
	c2, err := Canonicalize(b)
	if err != nil {
		t.Fatalf("canonicalize b: %v", err)
	}
	if c1 != c2 {
		t.Fatalf("canonical forms differ:\n%s\n!=\n%s", c1, c2)
	}
	if want := `{"a":1,"b":2,"nested":{"x":1,"y":2}}`; c1 != want {
		t.Fatalf("got %s, want %s", c1, want)
	}
}

func TestCanonicalize_NormalizesTimestampsAndNumbers(t *testing.T) {
	got, err := Canonicalize(map[string]any{
		"at":    "2026-03-15T10:30:00+05:30",
		"price": 12.50,
		"date":  "2026-03-15",
	})
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	want := `{"at":"2026-03-15T05:00:00Z","date":"2026-03-15","price":12.5}`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFingerprint_StableForSameSeed(t *testing.T) {
	a, err := ComputeFingerprint(mustDataset(t, nil))
	if err != nil {
		t.Fatalf("fingerprint a: %v", err)
	}
	b, err := ComputeFingerprint(mustDataset(t, nil))
	if err != nil {
		t.Fatalf("fingerprint b: %v", err)
	}
	if a.Head != b.Head {
		t.Fatalf("heads differ for identical runs: %s vs %s", a.Head, b.Head)
	}
	if len(a.Head) != 64 {
		t.Fatalf("head length = %d, want 64", len(a.Head))
	}
	if d := a.Diff(b); len(d) != 0 {
		t.Fatalf("unexpected diff: %v", d)
	}
	if a.Collections[0].Name != "providers" || a.Collections[len(a.Collections)-1].Name != "dashboardMetrics" {
		t.Fatalf("collections out of stage order: %+v", a.Collections)
	}
	if a.Collections[len(a.Collections)-1].Head != a.Head {
		t.Fatalf("last collection head should equal chain head")
	}
}

func TestFingerprint_DiffersAcrossSeeds(t *testing.T) {
	a, err := ComputeFingerprint(mustDataset(t, nil))
	if err != nil {
		t.Fatalf("fingerprint a: %v", err)
	}
	b, err := ComputeFingerprint(mustDataset(t, func(o *generate.Options) { o.Seed = 999 }))
	if err != nil {
		t.Fatalf("fingerprint b: %v", err)
	}
	if a.Head == b.Head {
		t.Fatalf("different seeds produced the same head")
	}
	if len(a.Diff(b)) == 0 {
		t.Fatalf("expected differing collections")
	}
}

func TestFingerprint_DetectsSingleFieldChange(t *testing.T) {
	ds := mustDataset(t, nil)
	before, err := ComputeFingerprint(ds)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	ds.Claims[3].TotalAmount++
	after, err := ComputeFingerprint(ds)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	diff := before.Diff(after)
	if len(diff) != 1 || diff[0] != "claims" {
		t.Fatalf("diff = %v, want [claims]", diff)
	}
	if before.Head == after.Head {
		t.Fatalf("head unchanged after tampering")
	}
}

func TestFingerprint_SaveLoadRoundtrip(t *testing.T) {
	fp, err := ComputeFingerprint(mustDataset(t, nil))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fingerprint.json")
	if err := SaveFingerprint(path, fp); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
	got, err := LoadFingerprint(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Head != fp.Head || got.Seed != fp.Seed || len(got.Collections) != len(fp.Collections) {
		t.Fatalf("loaded fingerprint differs: %+v", got)
	}
	if _, err := LoadFingerprint(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCheck_GeneratedDatasetIsClean(t *testing.T) {
	for _, linkage := range []generate.NoteLinkage{generate.LinkageLoose, generate.LinkageStrict} {
		ds := mustDataset(t, func(o *generate.Options) { o.NoteLinkage = linkage })
		r := Check(ds)
		if !r.OK() {
			t.Fatalf("%s: unexpected violations: %+v", linkage, r.Violations)
		}
		if r.Status != StatusOK {
			t.Fatalf("%s: status = %s", linkage, r.Status)
		}
		if linkage == generate.LinkageStrict && len(r.Warnings) != 0 {
			t.Fatalf("strict linkage produced warnings: %+v", r.Warnings)
		}
		if r.Checked[RuleFieldValidation] == 0 {
			t.Fatalf("no entities field-validated")
		}
	}
}

func TestCheck_LooseLinkageWarnsOnMissingAppointment(t *testing.T) {
	ds := mustDataset(t, nil)
	ds.ClinicalNotes[0].AppointmentID = "APT-999999"
	r := Check(ds)
	if !r.OK() {
		t.Fatalf("loose linkage must not fail: %+v", r.Violations)
	}
	if !hasRule(r.Warnings, RuleNoteLinkage, ds.ClinicalNotes[0].ID) {
		t.Fatalf("expected linkage warning, got %+v", r.Warnings)
	}

	ds.Meta.NoteLinkage = generate.LinkageStrict
	r = Check(ds)
	if r.OK() || !hasRule(r.Violations, RuleNoteLinkage, ds.ClinicalNotes[0].ID) {
		t.Fatalf("expected strict linkage violation, got %+v", r.Violations)
	}
}

func TestCheck_DetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *generate.Dataset) string
		rule   string
	}{
		{
			name: "out of order id",
			mutate: func(ds *generate.Dataset) string {
				ds.Patients[1].ID, ds.Patients[2].ID = ds.Patients[2].ID, ds.Patients[1].ID
				return ds.Patients[1].ID
			},
			rule: RuleSequentialID,
		},
		{
			name: "dangling patient",
			mutate: func(ds *generate.Dataset) string {
				ds.Appointments[0].PatientID = "PAT-999999"
				return ds.Appointments[0].ID
			},
			rule: RuleReference,
		},
		{
			name: "stale patient name",
			mutate: func(ds *generate.Dataset) string {
				ds.Appointments[0].PatientName = "Somebody Else"
				return ds.Appointments[0].ID
			},
			rule: RuleDenormalizedName,
		},
		{
			name: "upcoming status in the past",
			mutate: func(ds *generate.Dataset) string {
				ds.Appointments[0].Date = "2020-01-01"
				ds.Appointments[0].Status = model.AppointmentScheduled
				return ds.Appointments[0].ID
			},
			rule: RuleTemporalStatus,
		},
		{
			name: "completed lab without result date",
			mutate: func(ds *generate.Dataset) string {
				ds.LabResults[0].Status = model.LabCompleted
				ds.LabResults[0].ResultDate = ""
				return ds.LabResults[0].ID
			},
			rule: RuleLabStatus,
		},
		{
			name: "claim amounts do not add up",
			mutate: func(ds *generate.Dataset) string {
				ds.Claims[0].PatientAmount += 5
				return ds.Claims[0].ID
			},
			rule: RuleClaimAmounts,
		},
		{
			name: "paid claim without paid date",
			mutate: func(ds *generate.Dataset) string {
				ds.Claims[0].Status = model.ClaimPaid
				ds.Claims[0].PaidDate = ""
				return ds.Claims[0].ID
			},
			rule: RuleClaimPaidDate,
		},
		{
			name: "pending payment for paid claim",
			mutate: func(ds *generate.Dataset) string {
				ds.Claims[0].Status = model.ClaimPaid
				ds.Claims[0].PaidDate = ds.Claims[0].Date
				ds.Payments[0].Status = model.PaymentPending
				ds.Payments[0].Amount = ds.Claims[0].PatientAmount
				return ds.Payments[0].ID
			},
			rule: RulePaymentStatus,
		},
		{
			name: "completed payment amount",
			mutate: func(ds *generate.Dataset) string {
				ds.Payments[0].Status = model.PaymentCompleted
				ds.Payments[0].Amount = -1
				return ds.Payments[0].ID
			},
			rule: RulePaymentAmount,
		},
		{
			name: "dose order",
			mutate: func(ds *generate.Dataset) string {
				list := ds.Immunizations[ds.Patients[0].ID]
				list[0].DoseNumber = 7
				return list[0].ID
			},
			rule: RuleDoseOrder,
		},
		{
			name: "bad national id",
			mutate: func(ds *generate.Dataset) string {
				ds.Patients[0].NationalID = "12345"
				return ds.Patients[0].ID
			},
			rule: RuleNationalID,
		},
		{
			name: "invalid email",
			mutate: func(ds *generate.Dataset) string {
				ds.Providers[0].Email = "not-an-email"
				return ds.Providers[0].ID
			},
			rule: RuleFieldValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustDataset(t, nil)
			id := tt.mutate(ds)
			r := Check(ds)
			if r.OK() || r.Status != StatusFailed {
				t.Fatalf("expected failure, got status %s", r.Status)
			}
			if !hasRule(r.Violations, tt.rule, id) {
				t.Fatalf("expected %s violation on %s, got %+v", tt.rule, id, r.Violations)
			}
			if r.ByRule()[tt.rule] == 0 {
				t.Fatalf("ByRule missing %s", tt.rule)
			}
		})
	}
}
