package generate

import (
	"fmt"
	"strconv"

	"github.com/vaibhaw-/ClinicR/internal/clinicr/catalog"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/model"
	"github.com/vaibhaw-/ClinicR/internal/clinicr/random"
)

var patientStatusWeights = []random.Choice[model.PatientStatus]{
	{Value: model.PatientActive, Weight: 9},
	{Value: model.PatientInactive, Weight: 1},
}

// Patients returns count patients with sequential ids from PAT-000001.
// Country is drawn first; it selects the address pool and the national ID
// format.
func Patients(src *random.Source, count int) []model.Patient {
	requirePositive("Patients", count)
	out := make([]model.Patient, 0, count)
	for i := 0; i < count; i++ {
		country := random.Pick(src, catalog.Countries)
		first := src.FirstName()
		last := src.LastName()

		p := model.Patient{
			ID:          model.PatientID.Format(i + 1),
			FirstName:   first,
			LastName:    last,
			DateOfBirth: day(src.Birthdate(1, 90)),
			Gender:      random.Pick(src, catalog.Genders),
			Email:       email(src, first, last),
			Phone:       src.Phone(),
			Address:     address(src, country),
			EmergencyContact: model.EmergencyContact{
				Name:         src.FullName(),
				Relationship: random.Pick(src, catalog.Relationships),
				Phone:        src.Phone(),
			},
			Insurance: model.Insurance{
				Provider:     random.Pick(src, catalog.Insurers),
				PolicyNumber: src.Alphanumeric(10),
				GroupNumber:  src.Alphanumeric(6),
				ExpiryDate:   day(src.Future(1)),
			},
			PhotoURL:         avatarURL(first + strconv.Itoa(i)),
			NationalID:       nationalID(src, country),
			BloodType:        random.Pick(src, catalog.BloodTypes),
			Status:           random.Weighted(src, patientStatusWeights),
			RegistrationDate: day(src.Past(2)),
		}
		p.LastVisit, _ = random.Maybe(src, 0.7, func() string { return day(src.Recent(30)) })
		out = append(out, p)
	}
	return out
}

func address(src *random.Source, country model.Country) model.Address {
	street := src.Street()
	loc := random.Pick(src, catalog.Localities(country))
	var postal string
	if country == model.CountryQatar {
		postal = fmt.Sprintf("%02d", src.Int(catalog.QatarZoneMin, catalog.QatarZoneMax))
	} else {
		postal = strconv.Itoa(src.Int(catalog.IndiaPINMin, catalog.IndiaPINMax))
	}
	return model.Address{
		Street:     street,
		City:       loc.City,
		State:      loc.State,
		PostalCode: postal,
		Country:    country,
	}
}

// nationalID renders an Aadhaar number for India and a QID for Qatar.
func nationalID(src *random.Source, country model.Country) string {
	if country == model.CountryQatar {
		return fmt.Sprintf("QID%d", src.Int(10000000, 99999999))
	}
	return fmt.Sprintf("%d %d %d", src.Int(1000, 9999), src.Int(1000, 9999), src.Int(1000, 9999))
}
