package catalog

import "github.com/vaibhaw-/ClinicR/internal/clinicr/model"

type Locality struct {
	City  string
	State string
}

var IndiaLocalities = []Locality{
	{City: "Mumbai", State: "Maharashtra"},
	{City: "Pune", State: "Maharashtra"},
	{City: "Bengaluru", State: "Karnataka"},
	{City: "Mysuru", State: "Karnataka"},
	{City: "Chennai", State: "Tamil Nadu"},
	{City: "Coimbatore", State: "Tamil Nadu"},
	{City: "Hyderabad", State: "Telangana"},
	{City: "Kolkata", State: "West Bengal"},
	{City: "New Delhi", State: "Delhi"},
	{City: "Ahmedabad", State: "Gujarat"},
	{City: "Jaipur", State: "Rajasthan"},
	{City: "Kochi", State: "Kerala"},
	{City: "Lucknow", State: "Uttar Pradesh"},
}

var QatarLocalities = []Locality{
	{City: "Doha", State: "Ad Dawhah"},
	{City: "Al Rayyan", State: "Al Rayyan"},
	{City: "Al Wakrah", State: "Al Wakrah"},
	{City: "Al Khor", State: "Al Khor"},
	{City: "Umm Salal Muhammad", State: "Umm Salal"},
	{City: "Al Daayen", State: "Al Daayen"},
	{City: "Madinat ash Shamal", State: "Al Shamal"},
	{City: "Dukhan", State: "Al Sheehaniya"},
}

// Localities returns the address pool for country.
func Localities(country model.Country) []Locality {
	if country == model.CountryQatar {
		return QatarLocalities
	}
	return IndiaLocalities
}

// Postal code bounds: 6-digit Indian PIN codes, Qatari zone numbers.
const (
	IndiaPINMin  = 110001
	IndiaPINMax  = 855999
	QatarZoneMin = 1
	QatarZoneMax = 98
)
