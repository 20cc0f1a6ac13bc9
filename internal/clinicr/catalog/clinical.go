package catalog

import "github.com/vaibhaw-/ClinicR/internal/clinicr/model"

// Diagnoses are the ICD-10 codes attached to clinical notes.
var Diagnoses = []model.Diagnosis{
	{Code: "J00", Description: "Acute nasopharyngitis (common cold)"},
	{Code: "I10", Description: "Essential (primary) hypertension"},
	{Code: "E11", Description: "Type 2 diabetes mellitus"},
	{Code: "M79.3", Description: "Myalgia"},
	{Code: "R50.9", Description: "Fever, unspecified"},
}

var MedicationNames = []string{
	"Paracetamol 500mg",
	"Amoxicillin 250mg",
	"Metformin 500mg",
	"Lisinopril 10mg",
	"Atorvastatin 20mg",
	"Omeprazole 20mg",
	"Ibuprofen 400mg",
	"Aspirin 75mg",
}

var Dosages = []string{"1 tablet", "2 tablets", "1 capsule"}

var Frequencies = []string{"Once daily", "Twice daily", "Three times daily", "As needed"}

var Routes = []string{"Oral", "IV", "Topical"}

var MedicationStatuses = []model.MedicationStatus{
	model.MedicationActive, model.MedicationCompleted, model.MedicationDiscontinued,
}

var Allergens = []string{"Penicillin", "Peanuts", "Shellfish", "Latex", "Aspirin", "Pollen", "Dust mites"}

var Reactions = []string{"Rash", "Hives", "Swelling", "Anaphylaxis", "Breathing difficulty", "Nausea"}

var Severities = []model.Severity{model.SeverityMild, model.SeverityModerate, model.SeveritySevere}

type ProblemEntry struct {
	Description string
	Code        string
}

var Problems = []ProblemEntry{
	{Description: "Hypertension", Code: "I10"},
	{Description: "Type 2 Diabetes", Code: "E11"},
	{Description: "Asthma", Code: "J45"},
	{Description: "Chronic back pain", Code: "M54.5"},
	{Description: "Anxiety disorder", Code: "F41.9"},
}

var ProblemStatuses = []model.ProblemStatus{model.ProblemActive, model.ProblemResolved, model.ProblemChronic}

var Vaccines = []string{
	"Influenza",
	"COVID-19 Booster",
	"Hepatitis B",
	"Pneumococcal",
	"Tetanus-Diphtheria",
}

var InjectionSites = []string{"Left Arm", "Right Arm", "Left Thigh", "Right Thigh"}

const ImmunizationRoute = "Intramuscular"
