package loadr

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/config"
)

// LoadConfig describes a dump to generate. Zero counts and limits fall
// back to the reference clinic sizes.
type LoadConfig struct {
	Driver       string `yaml:"driver"`
	Output       string `yaml:"output"`
	Seed         uint64 `yaml:"seed"`
	AnchorDate   string `yaml:"anchorDate"`
	Providers    int    `yaml:"providers"`
	Patients     int    `yaml:"patients"`
	Appointments int    `yaml:"appointments"`
	Notes        int    `yaml:"clinicalNotes"`
	Medications  int    `yaml:"medications"`
	Allergies    int    `yaml:"allergies"`
	Problems     int    `yaml:"problems"`
	LabResults   int    `yaml:"labResults"`
	ClaimLimit   int    `yaml:"claimLimit"`
	PaymentLimit int    `yaml:"paymentLimit"`
	MetricsMode  string `yaml:"metricsMode"`
	NoteLinkage  string `yaml:"noteLinkage"`
}

// RunConfig describes the database a dump is applied to.
type RunConfig struct {
	Driver           string `yaml:"driver"`
	Database         string `yaml:"database"`
	Input            string `yaml:"input"`
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	StatementTimeout string `yaml:"statementTimeout"`
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// generation maps the loader's flat YAML onto the shared generation config.
func (c LoadConfig) generation() config.GenerationCfg {
	seed := c.Seed
	if seed == 0 {
		seed = 123
	}
	return config.GenerationCfg{
		Seed:       seed,
		AnchorDate: c.AnchorDate,
		Counts: config.CountsCfg{
			Providers:     orDefault(c.Providers, 15),
			Patients:      orDefault(c.Patients, 100),
			Appointments:  orDefault(c.Appointments, 150),
			ClinicalNotes: orDefault(c.Notes, 50),
			Medications:   orDefault(c.Medications, 30),
			Allergies:     orDefault(c.Allergies, 15),
			Problems:      orDefault(c.Problems, 20),
			LabResults:    orDefault(c.LabResults, 80),
		},
		ClaimLimit:   orDefault(c.ClaimLimit, 80),
		PaymentLimit: orDefault(c.PaymentLimit, 60),
		MetricsMode:  c.MetricsMode,
		NoteLinkage:  c.NoteLinkage,
	}
}

// withDefaults fills host, port and timeout for the configured driver.
func (c RunConfig) withDefaults() (RunConfig, time.Duration, error) {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		if c.Driver == "postgres" {
			c.Port = 5432
		} else {
			c.Port = 3306
		}
	}
	timeout := 5 * time.Second
	if c.StatementTimeout != "" {
		d, err := time.ParseDuration(c.StatementTimeout)
		if err != nil {
			return c, 0, fmt.Errorf("statementTimeout: %w", err)
		}
		timeout = d
	}
	return c, timeout, nil
}
