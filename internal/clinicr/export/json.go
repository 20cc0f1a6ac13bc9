// Package export writes a generated dataset in the formats the CLI and the
// loader understand: indented JSON, NDJSON, SQL dumps and a text summary.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
)

// Record is one NDJSON line: the entity kind and the entity itself.
type Record struct {
	Entity string `json:"entity"`
	Data   any    `json:"data"`
}

// WriteJSON writes the whole dataset as one indented JSON document.
func WriteJSON(w io.Writer, ds *generate.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}

// WriteNDJSON writes one Record per line in generation stage order.
// Immunizations are emitted per dose, ordered by patient id then dose.
// The singleton compliance and dashboard documents are one line each.
func WriteNDJSON(w io.Writer, ds *generate.Dataset) error {
	enc := json.NewEncoder(w)
	write := func(entity string, v any) error {
		if err := enc.Encode(Record{Entity: entity, Data: v}); err != nil {
			return fmt.Errorf("failed to write %s record: %w", entity, err)
		}
		return nil
	}

	for _, v := range ds.Providers {
		if err := write("provider", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Patients {
		if err := write("patient", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Appointments {
		if err := write("appointment", v); err != nil {
			return err
		}
	}
	for _, v := range ds.ClinicalNotes {
		if err := write("clinicalNote", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Medications {
		if err := write("medication", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Allergies {
		if err := write("allergy", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Problems {
		if err := write("problem", v); err != nil {
			return err
		}
	}
	if err := write("indiaCompliance", ds.IndiaCompliance); err != nil {
		return err
	}
	if err := write("qatarCompliance", ds.QatarCompliance); err != nil {
		return err
	}
	for _, v := range ds.LabResults {
		if err := write("labResult", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Claims {
		if err := write("claim", v); err != nil {
			return err
		}
	}
	for _, v := range ds.Payments {
		if err := write("payment", v); err != nil {
			return err
		}
	}
	for _, pid := range patientKeys(ds) {
		for _, v := range ds.Immunizations[pid] {
			if err := write("immunization", map[string]any{"patientId": pid, "immunization": v}); err != nil {
				return err
			}
		}
	}
	return write("dashboardMetrics", ds.DashboardMetrics)
}

func patientKeys(ds *generate.Dataset) []string {
	keys := make([]string, 0, len(ds.Immunizations))
	for k := range ds.Immunizations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
