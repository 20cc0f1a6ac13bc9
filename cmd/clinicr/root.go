package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/config"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
)

var (
	cfgFile string
	Version = "v0.1"
	rootCmd = &cobra.Command{
		Use:           "clinicr",
		Short:         "ClinicR - deterministic synthetic clinic dataset",
		Long:          "ClinicR: generate, check, fingerprint and serve a seeded synthetic clinic dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			} else {
				viper.SetConfigFile("config.yaml")
			}
			// ./config.yaml is optional; an explicit --config is not
			if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
				return fmt.Errorf("read config: %w", err)
			}
			if err := config.Load(viper.GetViper()); err != nil {
				return err
			}

			cfg := config.Get()
			if err := logger.InitLogger(logger.LogConfig{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
			}); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Uint64("seed", generate.DefaultSeed, "generation seed (overrides generation.seed)")
	rootCmd.PersistentFlags().String("anchor-date", "", "anchor date, any common layout (default: today, UTC)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("generation.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("generation.anchor_date", rootCmd.PersistentFlags().Lookup("anchor-date"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(serveCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildDataset generates the dataset described by the loaded config.
func buildDataset() (*generate.Dataset, error) {
	opts, err := config.Get().Generation.Options(time.Now())
	if err != nil {
		return nil, err
	}
	return generate.Generate(opts)
}
