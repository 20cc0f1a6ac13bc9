package generate

import (
	"fmt"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

// IndiaCompliance returns the clinic's Indian registration record. Only the
// registration and permit numbers are drawn.
func IndiaCompliance(src *random.Source) model.IndiaCompliance {
	return model.IndiaCompliance{
		CEARegistration: model.CEARegistration{
			Status:             "Permanent",
			RegistrationNumber: fmt.Sprintf("CEA/2024/%d", src.Int(1000, 9999)),
			IssueDate:          "2024-01-15",
			ExpiryDate:         "2029-01-14",
		},
		Permits: []model.Permit{
			{
				ID:         "PRM-001",
				Type:       "Fire Safety NOC",
				Number:     fmt.Sprintf("FS/2024/%d", src.Int(100, 999)),
				IssueDate:  "2024-02-01",
				ExpiryDate: "2025-01-31",
				Authority:  "Fire Department",
				Status:     model.StatusValid,
			},
			{
				ID:         "PRM-002",
				Type:       "Biomedical Waste",
				Number:     fmt.Sprintf("BMW/2024/%d", src.Int(100, 999)),
				IssueDate:  "2024-01-20",
				ExpiryDate: "2025-01-19",
				Authority:  "State Pollution Control Board",
				Status:     model.StatusValid,
			},
		},
		StaffCredentials: []model.StaffCredential{
			{
				ID:                 "CRED-001",
				StaffName:          "Dr. Rajesh Kumar",
				Role:               "Physician",
				RegistrationNumber: "MCI/12345/2020",
				Council:            "Medical Council of India",
				IssueDate:          "2020-06-15",
				ExpiryDate:         "2025-06-14",
				Status:             model.StatusValid,
			},
		},
	}
}

// QatarCompliance returns the MOPH licensing record.
func QatarCompliance(src *random.Source) model.QatarCompliance {
	return model.QatarCompliance{
		MOPHLicensing: model.MOPHLicensing{
			Stage:             "Licensed",
			ApplicationNumber: fmt.Sprintf("MOPH/2024/%d", src.Int(1000, 9999)),
			SubmittedDate:     "2024-01-10",
			ApprovalDate:      "2024-03-15",
			LicenseNumber:     fmt.Sprintf("HF/2024/%d", src.Int(100, 999)),
			ExpiryDate:        "2025-03-14",
		},
		DHPCredentials: []model.DHPCredential{
			{
				ID:              "DHP-001",
				StaffName:       "Dr. Ahmed Hassan",
				Profession:      "General Practitioner",
				PSVStatus:       "Completed",
				PrometricStatus: "Passed",
				DHPStatus:       "Licensed",
				LicenseNumber:   fmt.Sprintf("DHP/2024/%d", src.Int(10000, 99999)),
				IssueDate:       "2024-02-20",
				ExpiryDate:      "2026-02-19",
			},
		},
		EquipmentApprovals: []model.EquipmentApproval{
			{
				ID:             "EQ-001",
				EquipmentName:  "X-Ray Machine",
				Manufacturer:   "Siemens",
				Model:          "AXIOM Iconos R200",
				ApprovalMarket: "CE",
				ApprovalNumber: "CE/2023/12345",
				ApprovalDate:   "2023-11-10",
				Status:         "Approved",
			},
		},
	}
}
