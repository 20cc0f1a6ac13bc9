package config

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
)

// ParseAnchor reads an anchor date in any layout dateparse understands.
// An empty string anchors at the start of now's UTC day.
func ParseAnchor(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return generate.AnchorDay(now), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse anchor date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Options converts the generation section into validated generator options.
func (g GenerationCfg) Options(now time.Time) (generate.Options, error) {
	anchor, err := ParseAnchor(g.AnchorDate, now)
	if err != nil {
		return generate.Options{}, err
	}
	mode, err := generate.ParseMetricsMode(g.MetricsMode)
	if err != nil {
		return generate.Options{}, err
	}
	linkage, err := generate.ParseNoteLinkage(g.NoteLinkage)
	if err != nil {
		return generate.Options{}, err
	}
	opts := generate.Options{
		Seed:   g.Seed,
		Anchor: anchor,
		Counts: generate.Counts{
			Providers:     g.Counts.Providers,
			Patients:      g.Counts.Patients,
			Appointments:  g.Counts.Appointments,
			ClinicalNotes: g.Counts.ClinicalNotes,
			Medications:   g.Counts.Medications,
			Allergies:     g.Counts.Allergies,
			Problems:      g.Counts.Problems,
			LabResults:    g.Counts.LabResults,
		},
		ClaimLimit:   g.ClaimLimit,
		PaymentLimit: g.PaymentLimit,
		MetricsMode:  mode,
		NoteLinkage:  linkage,
	}
	if err := opts.Validate(); err != nil {
		return generate.Options{}, err
	}
	return opts, nil
}

// Timeouts parses the server's read and write timeouts.
func (s ServerCfg) Timeouts() (read, write time.Duration, err error) {
	if s.ReadTimeout != "" {
		if read, err = time.ParseDuration(s.ReadTimeout); err != nil {
			return 0, 0, fmt.Errorf("server.read_timeout: %w", err)
		}
	}
	if s.WriteTimeout != "" {
		if write, err = time.ParseDuration(s.WriteTimeout); err != nil {
			return 0, 0, fmt.Errorf("server.write_timeout: %w", err)
		}
	}
	return read, write, nil
}
