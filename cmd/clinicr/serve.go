package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/config"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/server"
)

var serveFlagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset over a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get().Server
		read, write, err := cfg.Timeouts()
		if err != nil {
			return err
		}
		ds, err := buildDataset()
		if err != nil {
			return err
		}
		srv, err := server.New(ds, server.Options{
			Addr:         pick(serveFlagAddr, cfg.Addr),
			ReadTimeout:  read,
			WriteTimeout: write,
		})
		if err != nil {
			return err
		}
		if err := srv.LogRoutes(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "", "listen address (default from config, :8080)")
}
