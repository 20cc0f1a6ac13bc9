package store

import (
	"math"
	"sort"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

// Financials is the billing summary over every claim and payment.
type Financials struct {
	TotalCharges   int `json:"totalCharges"`
	TotalInsurance int `json:"totalInsurance"`
	TotalPatient   int `json:"totalPatient"`
	Collected      int `json:"collected"`
	Pending        int `json:"pending"`
	RejectedClaims int `json:"rejectedClaims"`
}

// FinancialSummary totals claim amounts; collected is the sum of completed
// payments and pending is whatever remains of patient plus insurance share.
func (s *Store) FinancialSummary() Financials {
	var f Financials
	for _, c := range s.ds.Claims {
		f.TotalCharges += c.TotalAmount
		f.TotalInsurance += c.InsuranceAmount
		f.TotalPatient += c.PatientAmount
		if c.Status == model.ClaimRejected {
			f.RejectedClaims++
		}
	}
	for _, p := range s.ds.Payments {
		if p.Status == model.PaymentCompleted {
			f.Collected += p.Amount
		}
	}
	f.Pending = f.TotalPatient + f.TotalInsurance - f.Collected
	return f
}

type InsurerTotal struct {
	Insurer string `json:"insurer"`
	Total   int    `json:"total"`
	Claims  int    `json:"claims"`
}

// InsuranceSummary groups claim totals by insurer, largest total first.
func (s *Store) InsuranceSummary() []InsurerTotal {
	idx := map[string]int{}
	var out []InsurerTotal
	for _, c := range s.ds.Claims {
		i, ok := idx[c.InsuranceProvider]
		if !ok {
			i = len(out)
			idx[c.InsuranceProvider] = i
			out = append(out, InsurerTotal{Insurer: c.InsuranceProvider})
		}
		out[i].Total += c.TotalAmount
		out[i].Claims++
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Insurer < out[j].Insurer
	})
	return out
}

type LabStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Ordered    int `json:"ordered"`
	Abnormal   int `json:"abnormal"`
}

// LabStats counts orders by status. Abnormal counts orders with at least
// one flagged item.
func (s *Store) LabStats() LabStats {
	st := LabStats{Total: len(s.ds.LabResults)}
	for _, l := range s.ds.LabResults {
		switch l.Status {
		case model.LabCompleted:
			st.Completed++
		case model.LabInProgress:
			st.InProgress++
		case model.LabOrdered:
			st.Ordered++
		}
		if l.Abnormal() > 0 {
			st.Abnormal++
		}
	}
	return st
}

type VisitStats struct {
	Total         int    `json:"total"`
	Completed     int    `json:"completed"`
	Upcoming      int    `json:"upcoming"`
	LastCompleted string `json:"lastCompleted,omitempty"`
}

// VisitStats summarises one patient's appointments relative to the
// dataset's anchor day.
func (s *Store) VisitStats(patientID string) VisitStats {
	today := s.ds.Meta.Today
	var v VisitStats
	for _, a := range s.ds.Appointments {
		if a.PatientID != patientID {
			continue
		}
		v.Total++
		if a.Status == model.AppointmentCompleted {
			v.Completed++
			if a.Date > v.LastCompleted {
				v.LastCompleted = a.Date
			}
		}
		if a.Date >= today && !a.Status.Past() {
			v.Upcoming++
		}
	}
	return v
}

// IndiaComplianceScore is the rounded percentage of permits in Valid state.
func (s *Store) IndiaComplianceScore() int {
	permits := s.ds.IndiaCompliance.Permits
	if len(permits) == 0 {
		return 0
	}
	valid := 0
	for _, p := range permits {
		if p.Status == model.StatusValid {
			valid++
		}
	}
	return int(math.Round(float64(valid) / float64(len(permits)) * 100))
}

type QatarSummary struct {
	Stage             string `json:"stage"`
	LicensedStaff     int    `json:"licensedStaff"`
	TotalStaff        int    `json:"totalStaff"`
	ApprovedEquipment int    `json:"approvedEquipment"`
	TotalEquipment    int    `json:"totalEquipment"`
}

func (s *Store) QatarComplianceSummary() QatarSummary {
	q := s.ds.QatarCompliance
	sum := QatarSummary{
		Stage:          q.MOPHLicensing.Stage,
		TotalStaff:     len(q.DHPCredentials),
		TotalEquipment: len(q.EquipmentApprovals),
	}
	for _, c := range q.DHPCredentials {
		if c.DHPStatus == "Licensed" {
			sum.LicensedStaff++
		}
	}
	for _, e := range q.EquipmentApprovals {
		if e.Status == "Approved" {
			sum.ApprovedEquipment++
		}
	}
	return sum
}
