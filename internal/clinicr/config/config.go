package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type LoggingCfg struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// CountsCfg holds the number of records generated per collection.
type CountsCfg struct {
	Providers     int `mapstructure:"providers"`
	Patients      int `mapstructure:"patients"`
	Appointments  int `mapstructure:"appointments"`
	ClinicalNotes int `mapstructure:"clinical_notes"`
	Medications   int `mapstructure:"medications"`
	Allergies     int `mapstructure:"allergies"`
	Problems      int `mapstructure:"problems"`
	LabResults    int `mapstructure:"lab_results"`
}

type GenerationCfg struct {
	Seed         uint64    `mapstructure:"seed"`
	AnchorDate   string    `mapstructure:"anchor_date"`
	Counts       CountsCfg `mapstructure:"counts"`
	ClaimLimit   int       `mapstructure:"claim_limit"`
	PaymentLimit int       `mapstructure:"payment_limit"`
	MetricsMode  string    `mapstructure:"metrics_mode"`
	NoteLinkage  string    `mapstructure:"note_linkage"`
}

type OutputCfg struct {
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
	Driver string `mapstructure:"driver"`
	RunLog string `mapstructure:"run_log"`
}

type ServerCfg struct {
	Addr         string `mapstructure:"addr"`
	ReadTimeout  string `mapstructure:"read_timeout"`
	WriteTimeout string `mapstructure:"write_timeout"`
}

type Config struct {
	Version    string        `mapstructure:"version"`
	Generation GenerationCfg `mapstructure:"generation"`
	Output     OutputCfg     `mapstructure:"output"`
	Server     ServerCfg     `mapstructure:"server"`
	Logging    LoggingCfg    `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("version", "0.1")
	v.SetDefault("generation.seed", 123)
	v.SetDefault("generation.counts.providers", 15)
	v.SetDefault("generation.counts.patients", 100)
	v.SetDefault("generation.counts.appointments", 150)
	v.SetDefault("generation.counts.clinical_notes", 50)
	v.SetDefault("generation.counts.medications", 30)
	v.SetDefault("generation.counts.allergies", 15)
	v.SetDefault("generation.counts.problems", 20)
	v.SetDefault("generation.counts.lab_results", 80)
	v.SetDefault("generation.claim_limit", 80)
	v.SetDefault("generation.payment_limit", 60)
	v.SetDefault("generation.metrics_mode", "illustrative")
	v.SetDefault("generation.note_linkage", "loose")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.driver", "postgres")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
