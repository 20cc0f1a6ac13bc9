package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
)

func TestLabPanels(t *testing.T) {
	codes := map[string]bool{}
	for _, p := range LabPanels {
		assert.False(t, codes[p.Code], "duplicate panel %s", p.Code)
		codes[p.Code] = true
		assert.NotEmpty(t, p.Items, p.Code)
	}
	assert.Len(t, LabPanels, 4)

	lipid := LabPanels[2]
	for _, it := range lipid.Items {
		assert.True(t, it.Range.Inequality(), it.Name)
	}
	assert.Equal(t, "0.74 - 1.35", LabPanels[1].Items[4].Range.String())
}

func TestLocalities(t *testing.T) {
	assert.Equal(t, QatarLocalities, Localities(model.CountryQatar))
	assert.Equal(t, IndiaLocalities, Localities(model.CountryIndia))
}

func TestStatusPartition(t *testing.T) {
	for _, s := range PastStatuses {
		assert.True(t, s.Past(), s)
	}
	for _, s := range UpcomingStatuses {
		assert.False(t, s.Past(), s)
	}
	assert.Len(t, append(append([]model.AppointmentStatus{}, PastStatuses...), UpcomingStatuses...), len(model.AppointmentStatuses))
}
