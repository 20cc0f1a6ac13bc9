package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/verify"
)

var checkFlagDetailed bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Generate the dataset and check its invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := buildDataset()
		if err != nil {
			return err
		}
		report := verify.Check(ds)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Status: %s\n", report.Status)
		fmt.Fprintf(out, "Checked:\n")
		for _, name := range sortedKeys(report.Checked) {
			fmt.Fprintf(out, "  %-18s %d\n", name, report.Checked[name])
		}
		if len(report.Warnings) > 0 {
			fmt.Fprintf(out, "Warnings: %d\n", len(report.Warnings))
		}
		if len(report.Violations) > 0 {
			fmt.Fprintf(out, "Violations by rule:\n")
			byRule := report.ByRule()
			for _, rule := range sortedKeys(byRule) {
				fmt.Fprintf(out, "  %-22s %d\n", rule, byRule[rule])
			}
		}
		if checkFlagDetailed {
			for _, v := range report.Violations {
				fmt.Fprintf(out, "  FAIL %s %s: %s\n", v.Rule, v.EntityID, v.Detail)
			}
			for _, v := range report.Warnings {
				fmt.Fprintf(out, "  WARN %s %s: %s\n", v.Rule, v.EntityID, v.Detail)
			}
		}

		if !report.OK() {
			return fmt.Errorf("%d invariant violations", len(report.Violations))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkFlagDetailed, "detailed", false, "list every violation and warning")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
