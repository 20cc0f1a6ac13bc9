package model

type Country string

const (
	CountryIndia Country = "India"
	CountryQatar Country = "Qatar"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type PatientStatus string

const (
	PatientActive   PatientStatus = "Active"
	PatientInactive PatientStatus = "Inactive"
)

type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "Consultation"
	AppointmentFollowUp     AppointmentType = "Follow-up"
	AppointmentProcedure    AppointmentType = "Procedure"
	AppointmentTelehealth   AppointmentType = "Telehealth"
)

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentCheckedIn  AppointmentStatus = "Checked-in"
	AppointmentInProgress AppointmentStatus = "In Progress"
	AppointmentCompleted  AppointmentStatus = "Completed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
	AppointmentNoShow     AppointmentStatus = "No-show"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled, AppointmentCheckedIn, AppointmentInProgress,
	AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
}

// Past reports whether s may only be held by an appointment dated before today.
func (s AppointmentStatus) Past() bool {
	switch s {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

type NoteType string

const (
	NoteSOAP      NoteType = "SOAP"
	NoteProgress  NoteType = "Progress"
	NoteProcedure NoteType = "Procedure"
)

type DiagnosisType string

const (
	DiagnosisPrimary   DiagnosisType = "Primary"
	DiagnosisSecondary DiagnosisType = "Secondary"
)

type MedicationStatus string

const (
	MedicationActive       MedicationStatus = "Active"
	MedicationCompleted    MedicationStatus = "Completed"
	MedicationDiscontinued MedicationStatus = "Discontinued"
)

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

type ProblemStatus string

const (
	ProblemActive   ProblemStatus = "Active"
	ProblemResolved ProblemStatus = "Resolved"
	ProblemChronic  ProblemStatus = "Chronic"
)

type LabStatus string

const (
	LabOrdered    LabStatus = "Ordered"
	LabInProgress LabStatus = "In Progress"
	LabCompleted  LabStatus = "Completed"
	LabCancelled  LabStatus = "Cancelled"
)

type ClaimStatus string

const (
	ClaimDraft     ClaimStatus = "Draft"
	ClaimSubmitted ClaimStatus = "Submitted"
	ClaimAccepted  ClaimStatus = "Accepted"
	ClaimRejected  ClaimStatus = "Rejected"
	ClaimPaid      ClaimStatus = "Paid"
)

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentCard      PaymentMethod = "Card"
	PaymentInsurance PaymentMethod = "Insurance"
	PaymentOnline    PaymentMethod = "Online"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentRefunded  PaymentStatus = "Refunded"
)
