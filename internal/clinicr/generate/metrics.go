package generate

import (
	"fmt"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

// MetricsMode selects how the dashboard series are produced.
type MetricsMode string

const (
	// MetricsIllustrative derives today's counts and keeps the fixed
	// showcase series for everything else.
	MetricsIllustrative MetricsMode = "illustrative"
	// MetricsDerived computes every series from the dataset.
	MetricsDerived MetricsMode = "derived"
)

const revenueMonths = 6

func ParseMetricsMode(s string) (MetricsMode, error) {
	switch MetricsMode(s) {
	case MetricsIllustrative, "":
		return MetricsIllustrative, nil
	case MetricsDerived:
		return MetricsDerived, nil
	}
	return "", fmt.Errorf("%w: unknown metrics mode %q", ErrInvalidOptions, s)
}

// MetricsInput carries the collections the dashboard reads. Today is the
// anchor's civil date; appointments match it by exact string equality.
type MetricsInput struct {
	Today        string
	Appointments []model.Appointment
	Patients     []model.Patient
	Payments     []model.Payment
}

// DashboardMetrics aggregates the dashboard. It draws nothing from the
// random source.
func DashboardMetrics(in MetricsInput, mode MetricsMode) model.DashboardMetrics {
	var todays []model.Appointment
	for _, a := range in.Appointments {
		if a.Date == in.Today {
			todays = append(todays, a)
		}
	}
	m := model.DashboardMetrics{
		TodayAppointments: len(todays),
		WaitingPatients:   countStatus(todays, model.AppointmentCheckedIn),
	}

	if mode != MetricsDerived {
		m.ActivePatients = 1248
		m.MonthlyRevenue = 458900
		m.AppointmentsByStatus = []model.StatusCount{
			{Status: model.AppointmentScheduled, Count: 45},
			{Status: model.AppointmentCheckedIn, Count: 12},
			{Status: model.AppointmentInProgress, Count: 5},
			{Status: model.AppointmentCompleted, Count: 234},
			{Status: model.AppointmentCancelled, Count: 8},
			{Status: model.AppointmentNoShow, Count: 3},
		}
		m.RevenueByMonth = []model.MonthlyRevenue{
			{Month: "Jan", Revenue: 42000},
			{Month: "Feb", Revenue: 38500},
			{Month: "Mar", Revenue: 45000},
			{Month: "Apr", Revenue: 41000},
			{Month: "May", Revenue: 43500},
			{Month: "Jun", Revenue: 45890},
		}
		m.PatientFlowToday = []model.FlowCount{
			{Status: "Waiting", Count: 7},
			{Status: "With Nurse", Count: 3},
			{Status: "With Doctor", Count: 5},
			{Status: "Ready for Checkout", Count: 2},
		}
		return m
	}

	for _, p := range in.Patients {
		if p.Status == model.PatientActive {
			m.ActivePatients++
		}
	}
	for _, s := range model.AppointmentStatuses {
		m.AppointmentsByStatus = append(m.AppointmentsByStatus,
			model.StatusCount{Status: s, Count: countStatus(in.Appointments, s)})
	}
	m.RevenueByMonth = revenueByMonth(in.Today, in.Payments)
	m.MonthlyRevenue = m.RevenueByMonth[len(m.RevenueByMonth)-1].Revenue
	m.PatientFlowToday = []model.FlowCount{
		{Status: "Waiting", Count: countStatus(todays, model.AppointmentCheckedIn)},
		{Status: "With Nurse", Count: 0},
		{Status: "With Doctor", Count: countStatus(todays, model.AppointmentInProgress)},
		{Status: "Ready for Checkout", Count: countStatus(todays, model.AppointmentCompleted)},
	}
	return m
}

func countStatus(appts []model.Appointment, s model.AppointmentStatus) int {
	n := 0
	for _, a := range appts {
		if a.Status == s {
			n++
		}
	}
	return n
}

// revenueByMonth sums completed payments for the six months ending in the
// month of today.
func revenueByMonth(today string, payments []model.Payment) []model.MonthlyRevenue {
	anchor := parseDay(today)
	first := anchor.AddDate(0, -(revenueMonths - 1), 1-anchor.Day())

	out := make([]model.MonthlyRevenue, revenueMonths)
	index := make(map[string]int, revenueMonths)
	for i := 0; i < revenueMonths; i++ {
		m := first.AddDate(0, i, 0)
		out[i].Month = m.Format("Jan")
		index[m.Format("2006-01")] = i
	}
	for _, p := range payments {
		if p.Status != model.PaymentCompleted || len(p.Date) < 7 {
			continue
		}
		if i, ok := index[p.Date[:7]]; ok {
			out[i].Revenue += p.Amount
		}
	}
	return out
}
