package verify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

// Rule names reported in violations.
const (
	RuleSequentialID     = "sequential-id"
	RuleReference        = "reference"
	RuleDenormalizedName = "denormalized-name"
	RuleTemporalStatus   = "temporal-status"
	RuleLabStatus        = "lab-status"
	RuleClaimAmounts     = "claim-amounts"
	RuleClaimPaidDate    = "claim-paid-date"
	RulePaymentStatus    = "payment-status"
	RulePaymentAmount    = "payment-amount"
	RuleDoseOrder        = "dose-order"
	RuleNationalID       = "national-id"
	RuleNoteLinkage      = "note-appointment-link"
	RuleFieldValidation  = "field-validation"
)

// Report statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

type Violation struct {
	Rule     string `json:"rule"`
	EntityID string `json:"entity_id"`
	Detail   string `json:"detail"`
}

// Report is the outcome of Check. Warnings never fail a dataset.
type Report struct {
	Status     string         `json:"status"`
	Checked    map[string]int `json:"checked"`
	Violations []Violation    `json:"violations,omitempty"`
	Warnings   []Violation    `json:"warnings,omitempty"`
}

// OK reports whether the dataset passed every rule.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

// ByRule counts violations per rule.
func (r *Report) ByRule() map[string]int {
	out := map[string]int{}
	for _, v := range r.Violations {
		out[v.Rule]++
	}
	return out
}

type checker struct {
	report *Report
	strict bool
}

func (c *checker) fail(rule, id, format string, args ...any) {
	c.report.Violations = append(c.report.Violations, Violation{Rule: rule, EntityID: id, Detail: fmt.Sprintf(format, args...)})
}

func (c *checker) warn(rule, id, format string, args ...any) {
	c.report.Warnings = append(c.report.Warnings, Violation{Rule: rule, EntityID: id, Detail: fmt.Sprintf(format, args...)})
}

// Check evaluates the dataset's relational and temporal invariants and
// validates every entity's field bounds. Clinical notes that reference a
// missing appointment are warnings under loose linkage and violations
// under strict linkage.
func Check(ds *generate.Dataset) *Report {
	c := &checker{
		report: &Report{Checked: map[string]int{}},
		strict: ds.Meta.NoteLinkage == generate.LinkageStrict,
	}

	c.sequential(ds)
	c.appointments(ds)
	c.clinicalNotes(ds)
	c.labs(ds)
	c.claims(ds)
	c.payments(ds)
	c.immunizations(ds)
	c.patients(ds)
	c.fields(ds)

	c.report.Status = StatusOK
	if !c.report.OK() {
		c.report.Status = StatusFailed
	}
	logger.L().Infow("verify.check",
		"status", c.report.Status,
		"violations", len(c.report.Violations),
		"warnings", len(c.report.Warnings))
	return c.report
}

func sequence[T any](c *checker, f model.IDFormat, items []T, id func(T) string) {
	for i, it := range items {
		got := id(it)
		n, ok := f.Seq(got)
		if !ok {
			c.fail(RuleSequentialID, got, "expected %s-%0*d format", f.Prefix, f.Width, 0)
			continue
		}
		if n != i+1 {
			c.fail(RuleSequentialID, got, "position %d holds sequence %d", i+1, n)
		}
	}
	c.report.Checked[RuleSequentialID] += len(items)
}

func (c *checker) sequential(ds *generate.Dataset) {
	sequence(c, model.ProviderID, ds.Providers, func(v model.Provider) string { return v.ID })
	sequence(c, model.PatientID, ds.Patients, func(v model.Patient) string { return v.ID })
	sequence(c, model.AppointmentID, ds.Appointments, func(v model.Appointment) string { return v.ID })
	sequence(c, model.ClinicalNoteID, ds.ClinicalNotes, func(v model.ClinicalNote) string { return v.ID })
	sequence(c, model.MedicationID, ds.Medications, func(v model.Medication) string { return v.ID })
	sequence(c, model.AllergyID, ds.Allergies, func(v model.Allergy) string { return v.ID })
	sequence(c, model.ProblemID, ds.Problems, func(v model.Problem) string { return v.ID })
	sequence(c, model.LabResultID, ds.LabResults, func(v model.LabResult) string { return v.ID })
	sequence(c, model.ClaimID, ds.Claims, func(v model.Claim) string { return v.ID })
	sequence(c, model.PaymentID, ds.Payments, func(v model.Payment) string { return v.ID })
}

func (c *checker) appointments(ds *generate.Dataset) {
	patients := make(map[string]model.Patient, len(ds.Patients))
	for _, p := range ds.Patients {
		patients[p.ID] = p
	}
	providers := make(map[string]model.Provider, len(ds.Providers))
	for _, p := range ds.Providers {
		providers[p.ID] = p
	}

	for _, a := range ds.Appointments {
		if p, ok := patients[a.PatientID]; !ok {
			c.fail(RuleReference, a.ID, "patient %s does not exist", a.PatientID)
		} else if p.FullName() != a.PatientName {
			c.fail(RuleDenormalizedName, a.ID, "patient name %q, want %q", a.PatientName, p.FullName())
		}
		if p, ok := providers[a.ProviderID]; !ok {
			c.fail(RuleReference, a.ID, "provider %s does not exist", a.ProviderID)
		} else if p.Name != a.ProviderName {
			c.fail(RuleDenormalizedName, a.ID, "provider name %q, want %q", a.ProviderName, p.Name)
		}

		past := a.Date < ds.Meta.Today
		if past != a.Status.Past() {
			c.fail(RuleTemporalStatus, a.ID, "status %s on %s (today %s)", a.Status, a.Date, ds.Meta.Today)
		}
	}
	c.report.Checked[RuleTemporalStatus] += len(ds.Appointments)
}

func (c *checker) clinicalNotes(ds *generate.Dataset) {
	patients := idSet(ds.Patients, func(p model.Patient) string { return p.ID })
	providers := idSet(ds.Providers, func(p model.Provider) string { return p.ID })
	appts := idSet(ds.Appointments, func(a model.Appointment) string { return a.ID })

	for _, n := range ds.ClinicalNotes {
		if !patients[n.PatientID] {
			c.fail(RuleReference, n.ID, "patient %s does not exist", n.PatientID)
		}
		if !providers[n.ProviderID] {
			c.fail(RuleReference, n.ID, "provider %s does not exist", n.ProviderID)
		}
		if !appts[n.AppointmentID] {
			if c.strict {
				c.fail(RuleNoteLinkage, n.ID, "appointment %s does not exist", n.AppointmentID)
			} else {
				c.warn(RuleNoteLinkage, n.ID, "appointment %s does not exist", n.AppointmentID)
			}
		}
	}
	c.report.Checked[RuleNoteLinkage] += len(ds.ClinicalNotes)
}

func (c *checker) labs(ds *generate.Dataset) {
	patients := idSet(ds.Patients, func(p model.Patient) string { return p.ID })
	for _, l := range ds.LabResults {
		if !patients[l.PatientID] {
			c.fail(RuleReference, l.ID, "patient %s does not exist", l.PatientID)
		}
		if (l.ResultDate != "") != (l.Status == model.LabCompleted) {
			c.fail(RuleLabStatus, l.ID, "status %s with result date %q", l.Status, l.ResultDate)
		}
	}
	c.report.Checked[RuleLabStatus] += len(ds.LabResults)
}

func (c *checker) claims(ds *generate.Dataset) {
	appts := idSet(ds.Appointments, func(a model.Appointment) string { return a.ID })
	for _, cl := range ds.Claims {
		if !appts[cl.AppointmentID] {
			c.fail(RuleReference, cl.ID, "appointment %s does not exist", cl.AppointmentID)
		}
		if cl.InsuranceAmount+cl.PatientAmount != cl.TotalAmount {
			c.fail(RuleClaimAmounts, cl.ID, "%d + %d != %d", cl.InsuranceAmount, cl.PatientAmount, cl.TotalAmount)
		}
		if cl.InsuranceAmount < 0 || cl.InsuranceAmount > cl.TotalAmount {
			c.fail(RuleClaimAmounts, cl.ID, "insurance %d outside [0, %d]", cl.InsuranceAmount, cl.TotalAmount)
		}
		if (cl.PaidDate != "") != (cl.Status == model.ClaimPaid) {
			c.fail(RuleClaimPaidDate, cl.ID, "status %s with paid date %q", cl.Status, cl.PaidDate)
		}
	}
	c.report.Checked[RuleClaimAmounts] += len(ds.Claims)
}

func (c *checker) payments(ds *generate.Dataset) {
	claims := make(map[string]model.Claim, len(ds.Claims))
	for _, cl := range ds.Claims {
		claims[cl.ID] = cl
	}
	for _, p := range ds.Payments {
		cl, ok := claims[p.ClaimID]
		if !ok {
			c.fail(RuleReference, p.ID, "claim %s does not exist", p.ClaimID)
			continue
		}
		if cl.Status == model.ClaimPaid && p.Status != model.PaymentCompleted {
			c.fail(RulePaymentStatus, p.ID, "claim %s is Paid but payment is %s", cl.ID, p.Status)
		}
		switch p.Status {
		case model.PaymentCompleted:
			if p.Amount != cl.PatientAmount+cl.InsuranceAmount {
				c.fail(RulePaymentAmount, p.ID, "completed amount %d, want %d", p.Amount, cl.PatientAmount+cl.InsuranceAmount)
			}
		case model.PaymentPending:
			if p.Amount != cl.PatientAmount {
				c.fail(RulePaymentAmount, p.ID, "pending amount %d, want %d", p.Amount, cl.PatientAmount)
			}
		case model.PaymentRefunded:
			if p.Amount < 0 || p.Amount > cl.PatientAmount {
				c.fail(RulePaymentAmount, p.ID, "refund %d outside [0, %d]", p.Amount, cl.PatientAmount)
			}
		}
	}
	c.report.Checked[RulePaymentAmount] += len(ds.Payments)
}

func (c *checker) immunizations(ds *generate.Dataset) {
	patients := idSet(ds.Patients, func(p model.Patient) string { return p.ID })
	keys := make([]string, 0, len(ds.Immunizations))
	for k := range ds.Immunizations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, pid := range keys {
		if !patients[pid] {
			c.fail(RuleReference, pid, "immunizations keyed by unknown patient")
		}
		for i, imm := range ds.Immunizations[pid] {
			if imm.DoseNumber != i+1 {
				c.fail(RuleDoseOrder, imm.ID, "dose %d at position %d", imm.DoseNumber, i+1)
			}
		}
	}
	c.report.Checked[RuleDoseOrder] += len(keys)
}

func (c *checker) patients(ds *generate.Dataset) {
	for _, p := range ds.Patients {
		if !model.ValidNationalID(p.Address.Country, p.NationalID) {
			c.fail(RuleNationalID, p.ID, "%q is not a valid %s national id", p.NationalID, p.Address.Country)
		}
	}
	c.report.Checked[RuleNationalID] += len(ds.Patients)
}

func (c *checker) fields(ds *generate.Dataset) {
	v := validator.New(validator.WithRequiredStructEnabled())
	check := func(id string, s any) {
		c.report.Checked[RuleFieldValidation]++
		if err := v.Struct(s); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					c.fail(RuleFieldValidation, id, "%s failed %q (%v)", fe.Namespace(), fe.Tag(), fe.Value())
				}
				return
			}
			c.fail(RuleFieldValidation, id, "%v", err)
		}
	}

	for _, e := range ds.Providers {
		check(e.ID, e)
	}
	for _, e := range ds.Patients {
		check(e.ID, e)
	}
	for _, e := range ds.Appointments {
		check(e.ID, e)
	}
	for _, e := range ds.ClinicalNotes {
		check(e.ID, e)
	}
	for _, e := range ds.Medications {
		check(e.ID, e)
	}
	for _, e := range ds.Allergies {
		check(e.ID, e)
	}
	for _, e := range ds.Problems {
		check(e.ID, e)
	}
	for _, e := range ds.LabResults {
		check(e.ID, e)
	}
	for _, e := range ds.Claims {
		check(e.ID, e)
	}
	for _, e := range ds.Payments {
		check(e.ID, e)
	}
	for _, list := range ds.Immunizations {
		for _, e := range list {
			check(e.ID, e)
		}
	}
	check("indiaCompliance", ds.IndiaCompliance)
	check("qatarCompliance", ds.QatarCompliance)
}

func idSet[T any](items []T, id func(T) string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[id(it)] = true
	}
	return out
}
