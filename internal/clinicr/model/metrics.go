package model

type StatusCount struct {
	Status AppointmentStatus `json:"status"`
	Count  int               `json:"count"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

type FlowCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardMetrics struct {
	TodayAppointments    int              `json:"todayAppointments"`
	WaitingPatients      int              `json:"waitingPatients"`
	ActivePatients       int              `json:"activePatients"`
	MonthlyRevenue       int              `json:"monthlyRevenue"`
	AppointmentsByStatus []StatusCount    `json:"appointmentsByStatus"`
	RevenueByMonth       []MonthlyRevenue `json:"revenueByMonth"`
	PatientFlowToday     []FlowCount      `json:"patientFlowToday"`
}
