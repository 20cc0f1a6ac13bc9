// Package model defines the entities of the synthetic clinic dataset and
// their JSON wire shape.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DateLayout is the civil date format used by every date field.
const DateLayout = "2006-01-02"

// TimestampLayout is used for instants such as VitalSigns.RecordedAt.
const TimestampLayout = "2006-01-02T15:04:05Z07:00"

// IDFormat describes a prefixed, zero-padded sequential identifier.
type IDFormat struct {
	Prefix string
	Width  int
}

var (
	ProviderID     = IDFormat{Prefix: "PRV", Width: 4}
	PatientID      = IDFormat{Prefix: "PAT", Width: 6}
	AppointmentID  = IDFormat{Prefix: "APT", Width: 6}
	ClinicalNoteID = IDFormat{Prefix: "NOTE", Width: 6}
	MedicationID   = IDFormat{Prefix: "MED", Width: 6}
	AllergyID      = IDFormat{Prefix: "ALG", Width: 4}
	ProblemID      = IDFormat{Prefix: "PROB", Width: 4}
	LabResultID    = IDFormat{Prefix: "LAB", Width: 5}
	ClaimID        = IDFormat{Prefix: "CLM", Width: 5}
	PaymentID      = IDFormat{Prefix: "PAY", Width: 5}
)

// Format renders the n-th identifier, e.g. PAT-000042.
func (f IDFormat) Format(n int) string {
	return fmt.Sprintf("%s-%0*d", f.Prefix, f.Width, n)
}

// Seq extracts the sequence number from id. It reports false when id does
// not have exactly this prefix and width.
func (f IDFormat) Seq(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, f.Prefix+"-")
	if !ok || len(rest) != f.Width {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ImmunizationID builds the per-patient dose identifier.
func ImmunizationID(patientID string, dose int) string {
	return fmt.Sprintf("IMM-%s-%d", patientID, dose)
}

var (
	indiaNationalID = regexp.MustCompile(`^\d{4} \d{4} \d{4}$`)
	qatarNationalID = regexp.MustCompile(`^QID\d{8}$`)
)

// ValidNationalID reports whether id has the format required for country.
func ValidNationalID(country Country, id string) bool {
	switch country {
	case CountryIndia:
		return indiaNationalID.MatchString(id)
	case CountryQatar:
		return qatarNationalID.MatchString(id)
	}
	return false
}
