package model

type ScheduleSlot struct {
	DayOfWeek    int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime    string `json:"startTime" validate:"datetime=15:04"`
	EndTime      string `json:"endTime" validate:"datetime=15:04"`
	SlotDuration int    `json:"slotDuration" validate:"gt=0"`
}

type Provider struct {
	ID            string         `json:"id" validate:"required"`
	Name          string         `json:"name" validate:"required"`
	Specialty     string         `json:"specialty" validate:"required"`
	Qualification string         `json:"qualification" validate:"required"`
	LicenseNumber string         `json:"licenseNumber" validate:"required,startswith=MED"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required"`
	PhotoURL      string         `json:"photoUrl,omitempty" validate:"omitempty,url"`
	Schedule      []ScheduleSlot `json:"schedule" validate:"min=1,dive"`
}

type Address struct {
	Street     string  `json:"street" validate:"required"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	PostalCode string  `json:"postalCode" validate:"required,numeric"`
	Country    Country `json:"country" validate:"oneof=India Qatar"`
}

type EmergencyContact struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"oneof=Spouse Parent Sibling Child Friend"`
	Phone        string `json:"phone" validate:"required"`
}

type Insurance struct {
	Provider     string `json:"provider" validate:"required"`
	PolicyNumber string `json:"policyNumber" validate:"len=10,alphanum"`
	GroupNumber  string `json:"groupNumber,omitempty" validate:"omitempty,len=6,alphanum"`
	ExpiryDate   string `json:"expiryDate" validate:"datetime=2006-01-02"`
}

type Patient struct {
	ID               string           `json:"id" validate:"required"`
	FirstName        string           `json:"firstName" validate:"required"`
	LastName         string           `json:"lastName" validate:"required"`
	DateOfBirth      string           `json:"dateOfBirth" validate:"datetime=2006-01-02"`
	Gender           Gender           `json:"gender" validate:"oneof=Male Female Other"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            string           `json:"phone" validate:"required"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Insurance        Insurance        `json:"insurance"`
	PhotoURL         string           `json:"photoUrl,omitempty" validate:"omitempty,url"`
	NationalID       string           `json:"nationalId,omitempty"`
	BloodType        string           `json:"bloodType,omitempty" validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	Status           PatientStatus    `json:"status" validate:"oneof=Active Inactive"`
	RegistrationDate string           `json:"registrationDate" validate:"datetime=2006-01-02"`
	LastVisit        string           `json:"lastVisit,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// FullName is the display name denormalised into appointments and claims.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Appointment struct {
	ID           string            `json:"id" validate:"required"`
	PatientID    string            `json:"patientId" validate:"required"`
	PatientName  string            `json:"patientName" validate:"required"`
	ProviderID   string            `json:"providerId" validate:"required"`
	ProviderName string            `json:"providerName" validate:"required"`
	Date         string            `json:"date" validate:"datetime=2006-01-02"`
	Time         string            `json:"time" validate:"datetime=15:04"`
	Duration     int               `json:"duration" validate:"oneof=15 30 45 60"`
	Type         AppointmentType   `json:"type" validate:"oneof=Consultation Follow-up Procedure Telehealth"`
	Status       AppointmentStatus `json:"status" validate:"oneof=Scheduled 'Checked-in' 'In Progress' Completed Cancelled 'No-show'"`
	Reason       string            `json:"reason" validate:"required"`
	Notes        string            `json:"notes,omitempty"`
}
