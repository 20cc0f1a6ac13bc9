package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/verify"
)

var (
	fingerprintFlagSave    string
	fingerprintFlagCompare string
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the dataset's collection hashes and chain head",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := buildDataset()
		if err != nil {
			return err
		}
		fp, err := verify.ComputeFingerprint(ds)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed: %d  Today: %s\n", fp.Seed, fp.Today)
		for _, c := range fp.Collections {
			fmt.Fprintf(out, "  %-24s %5d  %s\n", c.Name, c.Count, c.Hash)
		}
		fmt.Fprintf(out, "Head: %s\n", fp.Head)

		if err := verify.SaveFingerprint(fingerprintFlagSave, fp); err != nil {
			return err
		}
		if fingerprintFlagCompare != "" {
			prev, err := verify.LoadFingerprint(fingerprintFlagCompare)
			if err != nil {
				return err
			}
			if diff := fp.Diff(prev); len(diff) > 0 {
				return fmt.Errorf("fingerprint differs from %s in: %s", fingerprintFlagCompare, strings.Join(diff, ", "))
			}
			fmt.Fprintf(out, "Matches %s\n", fingerprintFlagCompare)
		}
		return nil
	},
}

func init() {
	fingerprintCmd.Flags().StringVar(&fingerprintFlagSave, "save", "", "write the fingerprint JSON to this file")
	fingerprintCmd.Flags().StringVar(&fingerprintFlagCompare, "compare", "", "compare against a saved fingerprint; non-zero exit on drift")
}
