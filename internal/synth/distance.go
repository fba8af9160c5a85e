package synth

import (
	"fmt"
	"math"
)

const (
	earthRadiusMiles = 3959.0
	cruiseSpeedMPH   = 500.0
)

// DistanceMiles returns the great-circle distance between two points given in
// decimal degrees.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0
	lat1r := lat1 * math.Pi / 180.0
	lat2r := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push a just past 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// FormatDuration renders the flying time for a distance at cruise speed as
// "{h}h {m}m". Minutes are rounded, so 59.5 and up prints as "60m".
func FormatDuration(miles float64) string {
	flying := miles / cruiseSpeedMPH
	hours := math.Floor(flying)
	minutes := math.Round((flying - hours) * 60)
	return fmt.Sprintf("%dh %dm", int(hours), int(minutes))
}
