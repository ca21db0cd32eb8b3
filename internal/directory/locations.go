package directory

import (
	"sort"

	"doctor-booking-server/internal/models"
)

type stateDistricts map[string][]string

// catalog lists the countries, states and districts offered by the location
// selector. Areas are fabricated per district.
var catalog = map[string]stateDistricts{
	"India": {
		"Maharashtra":   {"Mumbai City", "Mumbai Suburban", "Pune", "Nagpur", "Thane"},
		"Karnataka":     {"Bengaluru Urban", "Mysuru", "Mangaluru", "Hubballi"},
		"Delhi":         {"New Delhi", "South Delhi", "North Delhi", "East Delhi"},
		"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai"},
		"West Bengal":   {"Kolkata", "Howrah", "Darjeeling"},
		"Gujarat":       {"Ahmedabad", "Surat", "Vadodara"},
		"Telangana":     {"Hyderabad", "Warangal"},
		"Uttar Pradesh": {"Lucknow", "Noida", "Varanasi"},
	},
}

var areaPool = []string{
	"Andheri", "Bandra", "Colaba", "Dadar", "Powai", "Juhu", "Worli", "Kurla",
	"Malad", "Borivali", "Koramangala", "Indiranagar", "Whitefield", "Jayanagar",
	"Hebbal", "Saket", "Dwarka", "Rohini", "Karol Bagh", "Lajpat Nagar",
	"Adyar", "T Nagar", "Velachery", "Salt Lake", "Park Circus", "Navrangpura",
	"Satellite", "Banjara Hills", "Gachibowli", "Gomti Nagar", "Sector 18", "Civil Lines",
}

const minAreas = 4

// Countries lists the selectable countries.
func Countries() []string {
	return sortedKeys(catalog)
}

// States lists the states of a country; unknown countries have none.
func States(country string) []string {
	return sortedKeys(catalog[country])
}

// Districts lists the districts of a state in catalog order.
func Districts(country, state string) []string {
	districts := catalog[country][state]
	out := make([]string, len(districts))
	copy(out, districts)
	return out
}

// Areas fabricates the neighbourhoods of a district. The district must be
// known to the catalog; the list is derived from the character hash of
// state+district+country so it never changes between calls.
func Areas(country, state, district string) []string {
	known := false
	for _, d := range catalog[country][state] {
		if d == district {
			known = true
			break
		}
	}
	if !known {
		return []string{}
	}

	seed := Seed(models.LocationDescriptor{District: district, State: state, Country: country})
	n := minAreas + seed%5
	start := seed % len(areaPool)
	// areaPool has a power-of-two length, so an odd step never revisits an entry.
	step := 1 + 2*(seed%7)

	areas := make([]string, 0, n)
	for k := 0; k < n; k++ {
		areas = append(areas, areaPool[(start+k*step)%len(areaPool)])
	}
	return areas
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
