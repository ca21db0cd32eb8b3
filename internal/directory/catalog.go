package directory

import (
	"strings"

	"doctor-booking-server/internal/models"
)

var specialties = []models.Specialty{
	{ID: "neurologist", Name: "Neurologist", Description: "Specializes in disorders of the nervous system"},
	{ID: "cardiologist", Name: "Cardiologist", Description: "Specializes in disorders of the heart and blood vessels"},
	{ID: "dermatologist", Name: "Dermatologist", Description: "Specializes in conditions involving the skin, hair, and nails"},
	{ID: "orthopedist", Name: "Orthopedist", Description: "Specializes in conditions involving the musculoskeletal system"},
	{ID: "ophthalmologist", Name: "Ophthalmologist", Description: "Specializes in eye and vision care"},
	{ID: "pediatrician", Name: "Pediatrician", Description: "Specializes in the care of children"},
	{ID: "psychiatrist", Name: "Psychiatrist", Description: "Specializes in mental, emotional, and behavioral disorders"},
	{ID: "gynecologist", Name: "Gynecologist", Description: "Specializes in female reproductive health"},
}

var clinics = []string{
	"City Care Clinic",
	"Apollo Health Centre",
	"Sunrise Multispeciality Hospital",
	"LifeLine Medical Centre",
	"Green Cross Clinic",
	"Wellness Point Hospital",
	"Medicare Family Clinic",
	"Harmony Health Hub",
	"Silverline Hospital",
	"Trinity Medical Centre",
}

var streets = []string{
	"MG Road",
	"Station Road",
	"Link Road",
	"Hill Road",
	"Park Street",
	"Main Street",
	"Church Road",
	"Lake View Road",
	"Ring Road",
	"Market Lane",
}

// weekdays are the days a doctor can be available on, in week order.
var weekdays = []string{
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
}

// Specialties returns the specialty catalog.
func Specialties() []models.Specialty {
	out := make([]models.Specialty, len(specialties))
	copy(out, specialties)
	return out
}

// MatchesSpecialty reports whether a doctor's specialty satisfies a filter
// given either as a specialty id or a display name.
func MatchesSpecialty(specialty, filter string) bool {
	if strings.EqualFold(specialty, filter) {
		return true
	}
	for _, s := range specialties {
		if strings.EqualFold(s.ID, filter) || strings.EqualFold(s.Name, filter) {
			return s.Name == specialty
		}
	}
	return false
}
