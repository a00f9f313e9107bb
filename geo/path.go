package geo

import (
	"github.com/paulmach/orb"
	"github.com/rotblauer/unitconv/units"
	"github.com/shopspring/decimal"
	"log/slog"
)

// PathKilometers is the summed great-circle length of consecutive vertices.
// Fewer than two vertices is zero length.
// Out-of-range vertices are measured anyway.
func PathKilometers(ls orb.LineString) decimal.Decimal {
	distance := decimal.Zero
	for i := range ls {
		if !LatLngFromPoint(ls[i]).InRange() {
			slog.Debug("PathKilometers", "vertex", i, "point", ls[i], "in_range", false)
		}
		if i == 0 {
			continue
		}
		seg := Segment{From: LatLngFromPoint(ls[i-1]), To: LatLngFromPoint(ls[i])}
		distance = distance.Add(seg.Kilometers())
	}
	return distance
}

func PathMiles(ls orb.LineString) decimal.Decimal {
	return units.KilometersToMiles(PathKilometers(ls))
}
