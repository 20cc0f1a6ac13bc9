package model

type CredentialStatus string

const (
	StatusValid        CredentialStatus = "Valid"
	StatusExpiringSoon CredentialStatus = "Expiring Soon"
	StatusExpired      CredentialStatus = "Expired"
)

type CEARegistration struct {
	Status             string `json:"status" validate:"oneof='Not Started' Provisional Permanent"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	IssueDate          string `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate         string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type Permit struct {
	ID         string           `json:"id" validate:"required"`
	Type       string           `json:"type" validate:"oneof='Fire Safety NOC' 'Biomedical Waste' 'Building Permit' AERB PCPNDT"`
	Number     string           `json:"number" validate:"required"`
	IssueDate  string           `json:"issueDate" validate:"datetime=2006-01-02"`
	ExpiryDate string           `json:"expiryDate" validate:"datetime=2006-01-02"`
	Authority  string           `json:"authority" validate:"required"`
	Status     CredentialStatus `json:"status" validate:"oneof=Valid 'Expiring Soon' Expired"`
}

type StaffCredential struct {
	ID                 string           `json:"id" validate:"required"`
	StaffName          string           `json:"staffName" validate:"required"`
	Role               string           `json:"role" validate:"oneof=Physician Nurse Technician"`
	RegistrationNumber string           `json:"registrationNumber" validate:"required"`
	Council            string           `json:"council" validate:"required"`
	IssueDate          string           `json:"issueDate" validate:"datetime=2006-01-02"`
	ExpiryDate         string           `json:"expiryDate" validate:"datetime=2006-01-02"`
	Status             CredentialStatus `json:"status" validate:"oneof=Valid 'Expiring Soon' Expired"`
}

type IndiaCompliance struct {
	CEARegistration  CEARegistration   `json:"ceaRegistration"`
	Permits          []Permit          `json:"permits" validate:"dive"`
	StaffCredentials []StaffCredential `json:"staffCredentials" validate:"dive"`
}

type MOPHLicensing struct {
	Stage             string `json:"stage" validate:"oneof='Not Started' 'Project Proposal' 'Ancillary Approvals' 'Final Assessment' Licensed"`
	ApplicationNumber string `json:"applicationNumber,omitempty"`
	SubmittedDate     string `json:"submittedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ApprovalDate      string `json:"approvalDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LicenseNumber     string `json:"licenseNumber,omitempty"`
	ExpiryDate        string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type DHPCredential struct {
	ID              string `json:"id" validate:"required"`
	StaffName       string `json:"staffName" validate:"required"`
	Profession      string `json:"profession" validate:"required"`
	PSVStatus       string `json:"psvStatus" validate:"oneof=Pending Completed Failed"`
	PrometricStatus string `json:"prometricStatus" validate:"oneof='Not Taken' Scheduled Passed Failed"`
	DHPStatus       string `json:"dhpStatus" validate:"oneof='Not Applied' 'Under Review' Licensed Rejected"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	IssueDate       string `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate      string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type EquipmentApproval struct {
	ID             string `json:"id" validate:"required"`
	EquipmentName  string `json:"equipmentName" validate:"required"`
	Manufacturer   string `json:"manufacturer" validate:"required"`
	Model          string `json:"model" validate:"required"`
	ApprovalMarket string `json:"approvalMarket" validate:"oneof=FDA CE Other"`
	ApprovalNumber string `json:"approvalNumber" validate:"required"`
	ApprovalDate   string `json:"approvalDate" validate:"datetime=2006-01-02"`
	Status         string `json:"status" validate:"oneof=Approved Pending Expired"`
}

type QatarCompliance struct {
	MOPHLicensing      MOPHLicensing       `json:"mophLicensing"`
	DHPCredentials     []DHPCredential     `json:"dhpCredentials" validate:"dive"`
	EquipmentApprovals []EquipmentApproval `json:"equipmentApprovals" validate:"dive"`
}
