package model

// VitalSigns is a single physiological snapshot. BMI is left unset by the
// generators; ComputeBMI derives it.
type VitalSigns struct {
	Temperature            float64  `json:"temperature" validate:"gte=36,lte=38.5"`
	BloodPressureSystolic  int      `json:"bloodPressureSystolic" validate:"gte=110,lte=140"`
	BloodPressureDiastolic int      `json:"bloodPressureDiastolic" validate:"gte=70,lte=90"`
	HeartRate              int      `json:"heartRate" validate:"gte=60,lte=100"`
	RespiratoryRate        int      `json:"respiratoryRate" validate:"gte=12,lte=20"`
	OxygenSaturation       int      `json:"oxygenSaturation" validate:"gte=95,lte=100"`
	Weight                 float64  `json:"weight" validate:"gte=50,lte=100"`
	Height                 float64  `json:"height" validate:"gte=150,lte=190"`
	BMI                    *float64 `json:"bmi,omitempty"`
	RecordedAt             string   `json:"recordedAt" validate:"datetime=2006-01-02T15:04:05Z07:00"`
}

// ComputeBMI returns weight / height² (kg/m²) rounded to one decimal.
func (v VitalSigns) ComputeBMI() float64 {
	if v.Height <= 0 {
		return 0
	}
	m := v.Height / 100
	bmi := v.Weight / (m * m)
	return float64(int(bmi*10+0.5)) / 10
}

type Diagnosis struct {
	Code        string        `json:"code" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Type        DiagnosisType `json:"type" validate:"oneof=Primary Secondary"`
}

type ClinicalNote struct {
	ID            string       `json:"id" validate:"required"`
	PatientID     string       `json:"patientId" validate:"required"`
	AppointmentID string       `json:"appointmentId" validate:"required"`
	ProviderID    string       `json:"providerId" validate:"required"`
	ProviderName  string       `json:"providerName" validate:"required"`
	Date          string       `json:"date" validate:"datetime=2006-01-02"`
	Type          NoteType     `json:"type" validate:"oneof=SOAP Progress Procedure"`
	Subjective    string       `json:"subjective" validate:"required"`
	Objective     string       `json:"objective" validate:"required"`
	Assessment    string       `json:"assessment" validate:"required"`
	Plan          string       `json:"plan" validate:"required"`
	VitalSigns    *VitalSigns  `json:"vitalSigns,omitempty"`
	Diagnoses     []Diagnosis  `json:"diagnoses" validate:"min=1,dive"`
	Medications   []Medication `json:"medications" validate:"dive"`
}

type Medication struct {
	ID           string           `json:"id" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Dosage       string           `json:"dosage" validate:"required"`
	Frequency    string           `json:"frequency" validate:"required"`
	Route        string           `json:"route" validate:"oneof=Oral IV Topical"`
	StartDate    string           `json:"startDate" validate:"datetime=2006-01-02"`
	EndDate      string           `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PrescribedBy string           `json:"prescribedBy" validate:"required"`
	Status       MedicationStatus `json:"status" validate:"oneof=Active Completed Discontinued"`
	Instructions string           `json:"instructions,omitempty"`
}

type Allergy struct {
	ID        string   `json:"id" validate:"required"`
	Allergen  string   `json:"allergen" validate:"required"`
	Reaction  string   `json:"reaction" validate:"required"`
	Severity  Severity `json:"severity" validate:"oneof=Mild Moderate Severe"`
	OnsetDate string   `json:"onsetDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type Problem struct {
	ID           string        `json:"id" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	ICDCode      string        `json:"icdCode,omitempty"`
	Status       ProblemStatus `json:"status" validate:"oneof=Active Resolved Chronic"`
	OnsetDate    string        `json:"onsetDate" validate:"datetime=2006-01-02"`
	ResolvedDate string        `json:"resolvedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes        string        `json:"notes,omitempty"`
}

type LabResultItem struct {
	Name           string         `json:"name" validate:"required"`
	Value          string         `json:"value" validate:"required,numeric"`
	Unit           string         `json:"unit" validate:"required"`
	ReferenceRange ReferenceRange `json:"referenceRange"`
	IsAbnormal     bool           `json:"isAbnormal"`
}

type LabResult struct {
	ID          string          `json:"id" validate:"required"`
	PatientID   string          `json:"patientId" validate:"required"`
	TestName    string          `json:"testName" validate:"required"`
	TestCode    string          `json:"testCode" validate:"required"`
	OrderDate   string          `json:"orderDate" validate:"datetime=2006-01-02"`
	ResultDate  string          `json:"resultDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      LabStatus       `json:"status" validate:"oneof=Ordered 'In Progress' Completed Cancelled"`
	Results     []LabResultItem `json:"results" validate:"min=1,dive"`
	PerformedBy string          `json:"performedBy,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Abnormal counts the flagged items.
func (l LabResult) Abnormal() int {
	n := 0
	for _, it := range l.Results {
		if it.IsAbnormal {
			n++
		}
	}
	return n
}

type Immunization struct {
	ID             string `json:"id" validate:"required"`
	VaccineName    string `json:"vaccineName" validate:"required"`
	Date           string `json:"date" validate:"datetime=2006-01-02"`
	DoseNumber     int    `json:"doseNumber,omitempty" validate:"gte=1"`
	AdministeredBy string `json:"administeredBy" validate:"required"`
	LotNumber      string `json:"lotNumber,omitempty" validate:"omitempty,startswith=LOT,len=9"`
	ExpiryDate     string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Site           string `json:"site,omitempty"`
	Route          string `json:"route,omitempty"`
}
