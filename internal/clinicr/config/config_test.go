package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()
	if cfg.Version != "0.1" {
		t.Errorf("default Version = %v, want 0.1", cfg.Version)
	}
	if cfg.Generation.Seed != 123 {
		t.Errorf("default Seed = %v, want 123", cfg.Generation.Seed)
	}
	want := CountsCfg{
		Providers: 15, Patients: 100, Appointments: 150, ClinicalNotes: 50,
		Medications: 30, Allergies: 15, Problems: 20, LabResults: 80,
	}
	if cfg.Generation.Counts != want {
		t.Errorf("default Counts = %+v, want %+v", cfg.Generation.Counts, want)
	}
	if cfg.Generation.ClaimLimit != 80 || cfg.Generation.PaymentLimit != 60 {
		t.Errorf("default limits = %d/%d, want 80/60", cfg.Generation.ClaimLimit, cfg.Generation.PaymentLimit)
	}
	if cfg.Generation.MetricsMode != "illustrative" {
		t.Errorf("default MetricsMode = %v, want illustrative", cfg.Generation.MetricsMode)
	}
	if cfg.Generation.NoteLinkage != "loose" {
		t.Errorf("default NoteLinkage = %v, want loose", cfg.Generation.NoteLinkage)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	v := viper.New()
	v.Set("version", "0.2")
	v.Set("generation.seed", 42)
	v.Set("generation.anchor_date", "2026-10-15")
	v.Set("generation.counts.patients", 10)
	v.Set("generation.counts.providers", 3)
	v.Set("generation.claim_limit", 5)
	v.Set("generation.payment_limit", 4)
	v.Set("generation.metrics_mode", "derived")
	v.Set("generation.note_linkage", "strict")
	v.Set("output.format", "sql")
	v.Set("output.file", "./dump.sql")
	v.Set("output.driver", "mysql")
	v.Set("output.run_log", "./run.jsonl")
	v.Set("server.addr", ":9090")
	v.Set("logging.level", "debug")
	v.Set("logging.development", true)

	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()

	if cfg.Version != "0.2" {
		t.Errorf("Version = %v, want 0.2", cfg.Version)
	}

	// Generation
	if cfg.Generation.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Generation.Seed)
	}
	if cfg.Generation.AnchorDate != "2026-10-15" {
		t.Errorf("AnchorDate = %v, want 2026-10-15", cfg.Generation.AnchorDate)
	}
	if cfg.Generation.Counts.Patients != 10 || cfg.Generation.Counts.Providers != 3 {
		t.Errorf("Counts = %+v, want patients=10 providers=3", cfg.Generation.Counts)
	}
	// untouched counts keep their defaults
	if cfg.Generation.Counts.Appointments != 150 {
		t.Errorf("Appointments = %v, want default 150", cfg.Generation.Counts.Appointments)
	}
	if cfg.Generation.ClaimLimit != 5 || cfg.Generation.PaymentLimit != 4 {
		t.Errorf("limits = %d/%d, want 5/4", cfg.Generation.ClaimLimit, cfg.Generation.PaymentLimit)
	}
	if cfg.Generation.MetricsMode != "derived" {
		t.Errorf("MetricsMode = %v, want derived", cfg.Generation.MetricsMode)
	}
	if cfg.Generation.NoteLinkage != "strict" {
		t.Errorf("NoteLinkage = %v, want strict", cfg.Generation.NoteLinkage)
	}

	// Output
	if cfg.Output.Format != "sql" {
		t.Errorf("Format = %v, want sql", cfg.Output.Format)
	}
	if cfg.Output.File != "./dump.sql" {
		t.Errorf("File = %v, want ./dump.sql", cfg.Output.File)
	}
	if cfg.Output.Driver != "mysql" {
		t.Errorf("Driver = %v, want mysql", cfg.Output.Driver)
	}
	if cfg.Output.RunLog != "./run.jsonl" {
		t.Errorf("RunLog = %v, want ./run.jsonl", cfg.Output.RunLog)
	}

	// Server
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %v, want :9090", cfg.Server.Addr)
	}

	// Logging
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
	if !cfg.Logging.Development {
		t.Error("Development = false, want true")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	v := viper.New()
	v.Set("generation.seed", "not-a-number")

	if err := Load(v); err == nil {
		t.Error("Load() error = nil, want error for invalid seed")
	}
}

func TestGet_NilConfig(t *testing.T) {
	// Reset global config
	cfg = nil

	c := Get()
	if c == nil {
		t.Fatal("Get() = nil, want empty config")
	}
	if c.Version != "" {
		t.Errorf("Version = %v, want empty string", c.Version)
	}
}

func TestGet_Singleton(t *testing.T) {
	cfg = nil

	c1 := Get()
	c2 := Get()
	if c2 != c1 {
		t.Error("Get() returned different instance")
	}
}
