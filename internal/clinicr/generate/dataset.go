// Package generate builds the synthetic clinic dataset. Every generator
// draws from one injected random.Source; Generate runs them in a fixed
// stage order, so the same seed and anchor always yield the same dataset.
package generate

import (
	"errors"
	"fmt"
	"time"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// ErrInvalidOptions wraps every Options validation failure.
var ErrInvalidOptions = errors.New("invalid generation options")

type Counts struct {
	Providers     int `json:"providers"`
	Patients      int `json:"patients"`
	Appointments  int `json:"appointments"`
	ClinicalNotes int `json:"clinicalNotes"`
	Medications   int `json:"medications"`
	Allergies     int `json:"allergies"`
	Problems      int `json:"problems"`
	LabResults    int `json:"labResults"`
}

// DefaultCounts mirrors the sizes of the reference clinic.
var DefaultCounts = Counts{
	Providers:     15,
	Patients:      100,
	Appointments:  150,
	ClinicalNotes: 50,
	Medications:   30,
	Allergies:     15,
	Problems:      20,
	LabResults:    80,
}

const (
	DefaultSeed         uint64 = 123
	DefaultClaimLimit          = 80
	DefaultPaymentLimit        = 60
)

type Options struct {
	Seed         uint64
	Anchor       time.Time
	Counts       Counts
	ClaimLimit   int
	PaymentLimit int
	MetricsMode  MetricsMode
	NoteLinkage  NoteLinkage
}

// DefaultOptions returns the reference configuration anchored at anchor.
func DefaultOptions(anchor time.Time) Options {
	return Options{
		Seed:         DefaultSeed,
		Anchor:       anchor,
		Counts:       DefaultCounts,
		ClaimLimit:   DefaultClaimLimit,
		PaymentLimit: DefaultPaymentLimit,
		MetricsMode:  MetricsIllustrative,
		NoteLinkage:  LinkageLoose,
	}
}

// AnchorDay truncates t to the start of its UTC day.
func AnchorDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (o Options) Validate() error {
	if o.Seed == 0 {
		return fmt.Errorf("%w: seed must be non-zero", ErrInvalidOptions)
	}
	if o.Anchor.IsZero() {
		return fmt.Errorf("%w: anchor instant is required", ErrInvalidOptions)
	}
	counts := []struct {
		name string
		n    int
	}{
		{"providers", o.Counts.Providers},
		{"patients", o.Counts.Patients},
		{"appointments", o.Counts.Appointments},
		{"clinical_notes", o.Counts.ClinicalNotes},
		{"medications", o.Counts.Medications},
		{"allergies", o.Counts.Allergies},
		{"problems", o.Counts.Problems},
		{"lab_results", o.Counts.LabResults},
		{"claim_limit", o.ClaimLimit},
		{"payment_limit", o.PaymentLimit},
	}
	for _, c := range counts {
		if c.n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidOptions, c.name, c.n)
		}
	}
	if _, err := ParseMetricsMode(string(o.MetricsMode)); err != nil {
		return err
	}
	if _, err := ParseNoteLinkage(string(o.NoteLinkage)); err != nil {
		return err
	}
	return nil
}

// Meta records how a dataset was produced.
type Meta struct {
	Seed        uint64      `json:"seed"`
	Anchor      string      `json:"anchor"`
	Today       string      `json:"today"`
	MetricsMode MetricsMode `json:"metricsMode"`
	NoteLinkage NoteLinkage `json:"noteLinkage"`
}

// Dataset is the immutable result of one generation run.
type Dataset struct {
	Meta             Meta                            `json:"meta"`
	Providers        []model.Provider                `json:"providers"`
	Patients         []model.Patient                 `json:"patients"`
	Appointments     []model.Appointment             `json:"appointments"`
	ClinicalNotes    []model.ClinicalNote            `json:"clinicalNotes"`
	Medications      []model.Medication              `json:"medications"`
	Allergies        []model.Allergy                 `json:"allergies"`
	Problems         []model.Problem                 `json:"problems"`
	IndiaCompliance  model.IndiaCompliance           `json:"indiaCompliance"`
	QatarCompliance  model.QatarCompliance           `json:"qatarCompliance"`
	LabResults       []model.LabResult               `json:"labResults"`
	Claims           []model.Claim                   `json:"claims"`
	Payments         []model.Payment                 `json:"payments"`
	Immunizations    map[string][]model.Immunization `json:"immunizationsByPatient"`
	DashboardMetrics model.DashboardMetrics          `json:"dashboardMetrics"`
}

// Generate validates opts and runs every stage in order.
func Generate(opts Options) (*Dataset, error) {
	if opts.MetricsMode == "" {
		opts.MetricsMode = MetricsIllustrative
	}
	if opts.NoteLinkage == "" {
		opts.NoteLinkage = LinkageLoose
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := logger.L()
	src := random.New(opts.Seed, opts.Anchor)
	c := opts.Counts

	ds := &Dataset{
		Meta: Meta{
			Seed:        opts.Seed,
			Anchor:      src.Now().Format(time.RFC3339),
			Today:       day(src.Today()),
			MetricsMode: opts.MetricsMode,
			NoteLinkage: opts.NoteLinkage,
		},
	}
	log.Debugw("Starting dataset generation", "seed", opts.Seed, "anchor", ds.Meta.Anchor)

	ds.Providers = Providers(src, c.Providers)
	log.Debugw("generate.providers", "count", len(ds.Providers))

	ds.Patients = Patients(src, c.Patients)
	log.Debugw("generate.patients", "count", len(ds.Patients))

	ds.Appointments = Appointments(src, ds.Patients, ds.Providers, c.Appointments)
	log.Debugw("generate.appointments", "count", len(ds.Appointments))

	if opts.NoteLinkage == LinkageStrict {
		ds.ClinicalNotes = LinkedClinicalNotes(src, ds.Appointments, c.ClinicalNotes)
	} else {
		ds.ClinicalNotes = ClinicalNotes(src, ds.Patients, ds.Providers, c.ClinicalNotes)
	}
	log.Debugw("generate.clinical_notes", "count", len(ds.ClinicalNotes), "linkage", opts.NoteLinkage)

	ds.Medications = Medications(src, c.Medications)
	ds.Allergies = Allergies(src, c.Allergies)
	ds.Problems = Problems(src, c.Problems)
	log.Debugw("generate.reference_pools",
		"medications", len(ds.Medications),
		"allergies", len(ds.Allergies),
		"problems", len(ds.Problems))

	ds.IndiaCompliance = IndiaCompliance(src)
	ds.QatarCompliance = QatarCompliance(src)
	log.Debugw("generate.compliance")

	ds.LabResults = LabResults(src, ds.Patients, ds.Providers, c.LabResults)
	log.Debugw("generate.lab_results", "count", len(ds.LabResults))

	ds.Claims = Claims(src, ds.Appointments, opts.ClaimLimit)
	log.Debugw("generate.claims", "count", len(ds.Claims))

	ds.Payments = Payments(src, ds.Claims, opts.PaymentLimit)
	log.Debugw("generate.payments", "count", len(ds.Payments))

	ds.Immunizations = Immunizations(src, ds.Patients)
	log.Debugw("generate.immunizations", "patients", len(ds.Immunizations))

	ds.DashboardMetrics = DashboardMetrics(MetricsInput{
		Today:        ds.Meta.Today,
		Appointments: ds.Appointments,
		Patients:     ds.Patients,
		Payments:     ds.Payments,
	}, opts.MetricsMode)

	log.Infow("Dataset generated",
		"seed", opts.Seed,
		"today", ds.Meta.Today,
		"patients", len(ds.Patients),
		"appointments", len(ds.Appointments),
		"claims", len(ds.Claims),
		"payments", len(ds.Payments))
	return ds, nil
}
