package directory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"

	"doctor-booking-server/internal/models"
)

const (
	minDoctors    = 10
	doctorSpread  = 15
	spreadPrime   = 9973
	nameLetters   = 4
	minDaysPerDoc = 3
)

// ErrDoctorNotFound is returned when an id does not belong to a location's listing.
var ErrDoctorNotFound = errors.New("doctor not found")

// doctorNamespace scopes the name-based UUIDs given to generated doctors.
var doctorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("doctor-booking-server/doctors"))

// Seed sums the UTF-16 code units of the concatenated location fields.
func Seed(loc models.LocationDescriptor) int {
	seed := 0
	for _, unit := range encodeUnits(loc.Key()) {
		seed += int(unit)
	}
	return seed
}

func encodeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Count is the number of doctors listed for a location, between 10 and 24.
func Count(loc models.LocationDescriptor) int {
	return minDoctors + Seed(loc)%doctorSpread
}

// Generate fabricates the doctor listing for a location. A non-empty specialty
// keeps only matching doctors, in generation order.
func Generate(loc models.LocationDescriptor, specialty string) []models.Doctor {
	seed := Seed(loc)
	count := minDoctors + seed%doctorSpread

	doctors := make([]models.Doctor, 0, count)
	for i := 1; i <= count; i++ {
		d := record(loc, seed, i)
		if specialty != "" && !MatchesSpecialty(d.Specialty, specialty) {
			continue
		}
		doctors = append(doctors, d)
	}
	return doctors
}

// Record builds the i-th doctor (1-based) of a location's listing.
func Record(loc models.LocationDescriptor, i int) models.Doctor {
	return record(loc, Seed(loc), i)
}

// Find regenerates a location's listing and returns the doctor with the given id.
func Find(loc models.LocationDescriptor, id string) (models.Doctor, error) {
	for _, d := range Generate(loc, "") {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Doctor{}, fmt.Errorf("%w: %s in %s", ErrDoctorNotFound, id, loc)
}

func record(loc models.LocationDescriptor, seed, i int) models.Doctor {
	rv := (seed + i) * spreadPrime

	return models.Doctor{
		ID:            uuid.NewSHA1(doctorNamespace, []byte(fmt.Sprintf("%d:%d", seed, i))).String(),
		Name:          doctorName(rv),
		Specialty:     specialties[rv%len(specialties)].Name,
		Clinic:        clinics[(rv/10)%len(clinics)],
		Address:       fmt.Sprintf("%d %s, %s, %s", 1+(rv/7)%200, streets[(rv/1000)%len(streets)], loc.Area, loc.District),
		Available:     rv%5 != 0,
		AvailableDays: availableDays(rv),
		Rating:        float64(35+rv%20) / 10,
		Reviews:       20 + (rv/100)%480,
		Fee:           500 + (rv%10)*200,
		Experience:    2 + rv%20,
		WaitTime:      5 + rv%60,
	}
}

// doctorName takes successive decimal digits off rv, each mod 26, as letters.
func doctorName(rv int) string {
	var b strings.Builder
	b.WriteString("Dr. ")
	shifted := rv
	for k := 0; k < nameLetters; k++ {
		letter := byte('a' + shifted%26)
		if k == 0 {
			letter -= 'a' - 'A'
		}
		b.WriteByte(letter)
		shifted /= 10
	}
	return b.String()
}

// availableDays draws 3-6 weekdays with a PRNG seeded from rv and returns them
// in week order.
func availableDays(rv int) []string {
	n := minDaysPerDoc + rv%4
	rng := rand.New(rand.NewPCG(uint64(rv), spreadPrime))
	picked := rng.Perm(len(weekdays))[:n]

	chosen := make([]bool, len(weekdays))
	for _, idx := range picked {
		chosen[idx] = true
	}
	days := make([]string, 0, n)
	for idx, day := range weekdays {
		if chosen[idx] {
			days = append(days, day)
		}
	}
	return days
}
