package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFormat_Format(t *testing.T) {
	tests := []struct {
		format IDFormat
		n      int
		want   string
	}{
		{ProviderID, 1, "PRV-0001"},
		{PatientID, 42, "PAT-000042"},
		{ClinicalNoteID, 7, "NOTE-000007"},
		{ProblemID, 20, "PROB-0020"},
		{ClaimID, 80, "CLM-00080"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Format(tt.n))
		})
	}
}

func TestIDFormat_Seq(t *testing.T) {
	n, ok := PatientID.Seq("PAT-000042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"PAT-42", "PRV-000042", "PAT-00004a", "PAT000042", ""} {
		_, ok := PatientID.Seq(bad)
		assert.False(t, ok, bad)
	}
}

func TestImmunizationID(t *testing.T) {
	assert.Equal(t, "IMM-PAT-000003-2", ImmunizationID("PAT-000003", 2))
}

func TestValidNationalID(t *testing.T) {
	tests := []struct {
		name    string
		country Country
		id      string
		want    bool
	}{
		{"india_ok", CountryIndia, "1234 5678 9012", true},
		{"india_no_spaces", CountryIndia, "123456789012", false},
		{"india_qid", CountryIndia, "QID12345678", false},
		{"qatar_ok", CountryQatar, "QID12345678", true},
		{"qatar_short", CountryQatar, "QID1234567", false},
		{"qatar_aadhaar", CountryQatar, "1234 5678 9012", false},
		{"unknown_country", Country("Oman"), "QID12345678", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidNationalID(tt.country, tt.id))
		})
	}
}

func TestAppointmentStatus_Past(t *testing.T) {
	past := map[AppointmentStatus]bool{
		AppointmentCompleted: true, AppointmentCancelled: true, AppointmentNoShow: true,
	}
	for _, s := range AppointmentStatuses {
		assert.Equal(t, past[s], s.Past(), string(s))
	}
}

func TestReferenceRange_String(t *testing.T) {
	tests := []struct {
		r    ReferenceRange
		want string
	}{
		{Bounded(4, 11, 1), "4.0 - 11.0"},
		{Bounded(135, 145, 0), "135 - 145"},
		{Bounded(0.74, 1.35, 2), "0.74 - 1.35"},
		{LessThan(200), "< 200"},
		{GreaterThan(40), "> 40"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.String())

			parsed, err := ParseReferenceRange(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.r, parsed)
		})
	}
}

func TestReferenceRange_JSON(t *testing.T) {
	item := LabResultItem{Name: "HDL", Value: "55", Unit: "mg/dL", ReferenceRange: GreaterThan(40)}
	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"referenceRange":"> 40"`)

	var back LabResultItem
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, item, back)
}

func TestParseReferenceRange_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "< x", "1 - y", "> "} {
		_, err := ParseReferenceRange(s)
		assert.Error(t, err, s)
	}
}

func TestReferenceRange_Contains(t *testing.T) {
	assert.True(t, Bounded(135, 145, 0).Contains(140))
	assert.False(t, Bounded(135, 145, 0).Contains(146))
	assert.True(t, LessThan(200).Contains(199))
	assert.False(t, LessThan(200).Contains(200))
	assert.True(t, GreaterThan(40).Contains(41))
	assert.False(t, GreaterThan(40).Inequality() == false)
}

func TestVitalSigns_ComputeBMI(t *testing.T) {
	v := VitalSigns{Weight: 70, Height: 175}
	assert.InDelta(t, 22.9, v.ComputeBMI(), 1e-9)
	assert.Equal(t, 0.0, VitalSigns{Weight: 70}.ComputeBMI())
	assert.Nil(t, v.BMI)
}

func TestPatient_FullName(t *testing.T) {
	p := Patient{FirstName: "Asha", LastName: "Rao"}
	assert.Equal(t, "Asha Rao", p.FullName())
}

func TestLabResult_Abnormal(t *testing.T) {
	l := LabResult{Results: []LabResultItem{{IsAbnormal: true}, {}, {IsAbnormal: true}}}
	assert.Equal(t, 2, l.Abnormal())
}
