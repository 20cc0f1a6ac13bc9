package loadr

import (
	"fmt"
	"os"
	"time"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/export"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/verify"
)

// Load generates the dataset described by the YAML file at configPath and
// writes it as a SQL dump for the configured driver.
func Load(configPath string) error {
	log := logger.L()
	log.Debugw("Loading config", "path", configPath)

	var cfg LoadConfig
	if err := readYAML(configPath, &cfg); err != nil {
		return err
	}
	driver, err := export.ParseDriver(cfg.Driver)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return fmt.Errorf("output is required")
	}

	opts, err := cfg.generation().Options(time.Now())
	if err != nil {
		return err
	}
	ds, err := generate.Generate(opts)
	if err != nil {
		return err
	}

	report := verify.Check(ds)
	if !report.OK() {
		return fmt.Errorf("generated dataset failed %d checks", len(report.Violations))
	}
	if len(report.Warnings) > 0 {
		log.Infow("Dataset has warnings", "warnings", len(report.Warnings))
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := export.WriteSQL(f, ds, driver); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	log.Infow("Generation complete",
		"output", cfg.Output,
		"driver", driver,
		"seed", ds.Meta.Seed,
		"today", ds.Meta.Today,
		"patients", len(ds.Patients),
		"appointments", len(ds.Appointments),
		"claims", len(ds.Claims))
	return nil
}
