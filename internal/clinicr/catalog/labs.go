package catalog

import "github.com/vaibhaw-/ClinicR/internal/clinicr/model"

type LabItem struct {
	Name  string
	Unit  string
	Range model.ReferenceRange
}

type LabPanel struct {
	Name  string
	Code  string
	Items []LabItem
}

var LabPanels = []LabPanel{
	{
		Name: "Complete Blood Count",
		Code: "CBC",
		Items: []LabItem{
			{Name: "WBC", Unit: "10^9/L", Range: model.Bounded(4.0, 11.0, 1)},
			{Name: "RBC", Unit: "10^12/L", Range: model.Bounded(4.5, 5.9, 1)},
			{Name: "Hemoglobin", Unit: "g/dL", Range: model.Bounded(13.5, 17.5, 1)},
			{Name: "Hematocrit", Unit: "%", Range: model.Bounded(41, 53, 0)},
			{Name: "Platelets", Unit: "10^9/L", Range: model.Bounded(150, 450, 0)},
		},
	},
	{
		Name: "Basic Metabolic Panel",
		Code: "BMP",
		Items: []LabItem{
			{Name: "Sodium", Unit: "mmol/L", Range: model.Bounded(135, 145, 0)},
			{Name: "Potassium", Unit: "mmol/L", Range: model.Bounded(3.5, 5.0, 1)},
			{Name: "Chloride", Unit: "mmol/L", Range: model.Bounded(98, 106, 0)},
			{Name: "Glucose", Unit: "mg/dL", Range: model.Bounded(70, 99, 0)},
			{Name: "Creatinine", Unit: "mg/dL", Range: model.Bounded(0.74, 1.35, 2)},
		},
	},
	{
		Name: "Lipid Panel",
		Code: "LIPID",
		Items: []LabItem{
			{Name: "Total Cholesterol", Unit: "mg/dL", Range: model.LessThan(200)},
			{Name: "HDL", Unit: "mg/dL", Range: model.GreaterThan(40)},
			{Name: "LDL", Unit: "mg/dL", Range: model.LessThan(130)},
			{Name: "Triglycerides", Unit: "mg/dL", Range: model.LessThan(150)},
		},
	},
	{
		Name: "HbA1c",
		Code: "HBA1C",
		Items: []LabItem{
			{Name: "HbA1c", Unit: "%", Range: model.Bounded(4.0, 5.6, 1)},
		},
	},
}

// Inequality ranges draw an absolute integer value in this window.
const (
	InequalityMin = 80
	InequalityMax = 220
)

// Bounded ranges multiply the lower bound by a jitter in this window.
const (
	JitterMin = 0.8
	JitterMax = 1.2
)

var UnresolvedLabStatuses = []model.LabStatus{model.LabOrdered, model.LabInProgress}
