package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/logger"
	loadr "github.com/vaibhaw-/ClinicR/internal/loadr"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "load":
		loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
		configPath := loadCmd.String("config", "", "Path to config file")
		debug := loadCmd.Bool("debug", false, "Enable debug logging")
		loadCmd.Parse(os.Args[2:])
		if *configPath == "" {
			fmt.Println("Error: --config is required for 'load'")
			loadCmd.Usage()
			os.Exit(1)
		}
		initLogger(*debug)
		fmt.Printf("Running 'load' with config: %s\n", *configPath)
		if err := loadr.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "run":
		runCmd := flag.NewFlagSet("run", flag.ExitOnError)
		configPath := runCmd.String("config", "", "Path to config file")
		debug := runCmd.Bool("debug", false, "Enable debug logging")
		runCmd.Parse(os.Args[2:])
		if *configPath == "" {
			fmt.Println("Error: --config is required for 'run'")
			runCmd.Usage()
			os.Exit(1)
		}
		initLogger(*debug)
		fmt.Printf("Running 'run' with config: %s\n", *configPath)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := loadr.Run(ctx, *configPath)
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func initLogger(debug bool) {
	level := "info"
	if debug {
		level = "debug"
	}
	if err := logger.InitLogger(logger.LogConfig{Level: level}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init logger: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`Usage: loadr <subcommand> --config <path>`)
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  load    --config <path>   Generate the clinic dataset as a SQL dump")
	fmt.Println("  run     --config <path>   Apply a SQL dump to PostgreSQL or MySQL")
	fmt.Println("  help                      Show this help message")
}
