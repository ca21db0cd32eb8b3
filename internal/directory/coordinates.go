package directory

import (
	"math"

	"doctor-booking-server/internal/models"
)

// Coordinates places a doctor on the map. The point is derived from the name
// with a 31-multiplier string hash wrapped to 32 bits, landing roughly inside
// India.
func Coordinates(name string) models.Coordinates {
	var hash int32
	for _, unit := range encodeUnits(name) {
		hash = int32(unit) + (hash<<5 - hash)
	}

	shifted := hash >> 8
	lon := 72.0 + float64(hash%10) + float64(abs(int64(hash))%100)/100
	lat := 17.0 + float64(shifted%15) + float64(abs(int64(shifted))%100)/100

	return models.Coordinates{
		Longitude: round2(lon),
		Latitude:  round2(lat),
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
