// Package catalog holds the fixed option lists the generators sample from.
// Nothing here draws from the random source.
package catalog

import "github.com/vaibhaw-/ClinicR/internal/clinicr/model"

var Specialties = []string{
	"General Medicine", "Cardiology", "Pediatrics", "Orthopedics", "Dermatology", "Gynecology",
}

var Qualifications = []string{"MBBS, MD", "MBBS, MS", "MBBS, DNB", "MBBS, DM"}

// WeeklySchedule is shared by every provider: Monday to Thursday full days,
// Friday mornings.
var WeeklySchedule = []model.ScheduleSlot{
	{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30},
	{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30},
	{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30},
	{DayOfWeek: 4, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30},
	{DayOfWeek: 5, StartTime: "09:00", EndTime: "13:00", SlotDuration: 30},
}

var Countries = []model.Country{model.CountryIndia, model.CountryQatar}

var Genders = []model.Gender{model.GenderMale, model.GenderFemale, model.GenderOther}

var Relationships = []string{"Spouse", "Parent", "Sibling", "Child", "Friend"}

var Insurers = []string{"HealthCare Plus", "MediShield", "Global Health", "Wellness Insurance"}

var BloodTypes = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

var EmailDomains = []string{"example.com", "example.org", "example.net"}

var AppointmentTypes = []model.AppointmentType{
	model.AppointmentConsultation, model.AppointmentFollowUp,
	model.AppointmentProcedure, model.AppointmentTelehealth,
}

var PastStatuses = []model.AppointmentStatus{
	model.AppointmentCompleted, model.AppointmentCancelled, model.AppointmentNoShow,
}

var UpcomingStatuses = []model.AppointmentStatus{
	model.AppointmentScheduled, model.AppointmentCheckedIn, model.AppointmentInProgress,
}

var Durations = []int{15, 30, 45, 60}

var Minutes = []string{"00", "30"}

var VisitReasons = []string{
	"General Checkup",
	"Follow-up Visit",
	"Fever and Cough",
	"Vaccination",
	"Blood Pressure Check",
	"Diabetes Management",
	"Annual Physical",
	"Lab Results Review",
}
