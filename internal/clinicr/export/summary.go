package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/generate"
)

// Count is one named tally in a summary breakdown.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary tallies a dataset: collection sizes plus status breakdowns.
// Breakdowns are sorted by count (descending) then by name (ascending).
type Summary struct {
	Seed              uint64  `json:"seed"`
	Today             string  `json:"today"`
	Collections       []Count `json:"collections"`
	AppointmentStatus []Count `json:"appointmentStatus"`
	LabStatus         []Count `json:"labStatus"`
	ClaimStatus       []Count `json:"claimStatus"`
	PaymentStatus     []Count `json:"paymentStatus"`
	PatientCountry    []Count `json:"patientCountry"`
}

// Summarize counts every collection and tallies the status columns.
func Summarize(ds *generate.Dataset) Summary {
	doses := 0
	for _, l := range ds.Immunizations {
		doses += len(l)
	}
	s := Summary{
		Seed:  ds.Meta.Seed,
		Today: ds.Meta.Today,
		Collections: []Count{
			{"providers", len(ds.Providers)},
			{"patients", len(ds.Patients)},
			{"appointments", len(ds.Appointments)},
			{"clinicalNotes", len(ds.ClinicalNotes)},
			{"medications", len(ds.Medications)},
			{"allergies", len(ds.Allergies)},
			{"problems", len(ds.Problems)},
			{"labResults", len(ds.LabResults)},
			{"claims", len(ds.Claims)},
			{"payments", len(ds.Payments)},
			{"immunizations", doses},
		},
	}

	appts := map[string]int{}
	for _, a := range ds.Appointments {
		appts[string(a.Status)]++
	}
	labs := map[string]int{}
	for _, l := range ds.LabResults {
		labs[string(l.Status)]++
	}
	claims := map[string]int{}
	for _, c := range ds.Claims {
		claims[string(c.Status)]++
	}
	payments := map[string]int{}
	for _, p := range ds.Payments {
		payments[string(p.Status)]++
	}
	countries := map[string]int{}
	for _, p := range ds.Patients {
		countries[string(p.Address.Country)]++
	}

	s.AppointmentStatus = sorted(appts)
	s.LabStatus = sorted(labs)
	s.ClaimStatus = sorted(claims)
	s.PaymentStatus = sorted(payments)
	s.PatientCountry = sorted(countries)
	return s
}

// sorted flattens m by count (descending) then by name (ascending).
func sorted(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// PrintSummary writes a human-readable summary.
func (s Summary) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Seed: %d\n", s.Seed)
	fmt.Fprintf(w, "  Today: %s\n", s.Today)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  Collections:\n")
	for _, c := range s.Collections {
		fmt.Fprintf(w, "    %s: %d\n", c.Name, c.Count)
	}
	fmt.Fprintf(w, "\n")

	section := func(title string, counts []Count) {
		if len(counts) == 0 {
			return
		}
		fmt.Fprintf(w, "  %s:\n", title)
		for _, c := range counts {
			fmt.Fprintf(w, "    %s: %d\n", c.Name, c.Count)
		}
		fmt.Fprintf(w, "\n")
	}
	section("By appointment status", s.AppointmentStatus)
	section("By lab status", s.LabStatus)
	section("By claim status", s.ClaimStatus)
	section("By payment status", s.PaymentStatus)
	section("By patient country", s.PatientCountry)
}
