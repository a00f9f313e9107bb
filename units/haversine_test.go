package units

import (
	"github.com/golang/geo/s2"
	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotblauer/unitconv/common"
	"github.com/shopspring/decimal"
	"math"
	"testing"
)

type coordinatePair struct {
	name                   string
	lat1, lon1, lat2, lon2 float64
}

var coordinatePairs = []coordinatePair{
	{"minneapolis-nyc", 44.9778, -93.2650, 40.7128, -74.0060},
	{"sydney-london", -33.8688, 151.2093, 51.5074, -0.1278},
	{"equator-quarter", 0, 0, 0, 90},
	{"pole-to-pole", 90, 0, -90, 0},
	{"short-hop", 45.5710024, -111.6902967, 45.5715024, -111.6897967},
	{"antimeridian", 10, 179.5, 10, -179.5},
	{"antipodal", 45, 0, -45, 180},
}

func TestCoordinatesToKilometers_Identity(t *testing.T) {
	for _, ll := range [][2]string{{"0", "0"}, {"44.9778", "-93.265"}, {"90", "180"}, {"1000", "-5000.5"}, {"-123.456", "999"}} {
		lat, lon := d(ll[0]), d(ll[1])
		if got := CoordinatesToKilometers(lat, lon, lat, lon); !got.Equal(decimal.Zero) {
			t.Errorf("CoordinatesToKilometers(%v, %v): expected 0, got %s", ll, ll, got)
		}
		if got := CoordinatesToMiles(lat, lon, lat, lon); !got.Equal(decimal.Zero) {
			t.Errorf("CoordinatesToMiles(%v, %v): expected 0, got %s", ll, ll, got)
		}
	}
	if got := Float64.CoordinatesToKilometers(1000, -5000.5, 1000, -5000.5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := NativeFloat32.CoordinatesToKilometers(12.5, 12.5, 12.5, 12.5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

// Regression oracle: 6371 × 2·asin(√sin²(π/4)), a quarter great circle.
func TestCoordinatesToKilometers_QuarterCircumference(t *testing.T) {
	got := CoordinatesToKilometers(d("0"), d("0"), d("0"), d("90")).InexactFloat64()
	want := 10007.543398010284
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
	if math.Abs(got-6371*math.Pi/2) > 1e-6 {
		t.Errorf("expected about 6371·π/2 = %v, got %v", 6371*math.Pi/2, got)
	}
	// Symmetric.
	back := CoordinatesToKilometers(d("0"), d("90"), d("0"), d("0")).InexactFloat64()
	if math.Abs(back-got) > 1e-9 {
		t.Errorf("expected symmetric distance %v, got %v", got, back)
	}
}

func TestCoordinatesToKilometers_Antipodal(t *testing.T) {
	got := Float64.CoordinatesToKilometers(45, 0, -45, 180)
	want := 6371 * math.Pi
	if common.RelativeError(want, got) > 1e-9 {
		t.Errorf("expected half circumference %v, got %v", want, got)
	}
}

func TestCoordinatesToKilometers_AntipodalNative(t *testing.T) {
	want := 6371 * math.Pi
	for _, p := range [][4]float64{{45, 0, -45, 180}, {0, 0, 0, 180}, {90, 0, -90, 0}} {
		got := NativeFloat64.CoordinatesToKilometers(p[0], p[1], p[2], p[3])
		if math.IsNaN(got) || common.RelativeError(want, got) > 1e-9 {
			t.Errorf("%v: expected half circumference %v, got %v", p, want, got)
		}
	}
}

func TestCoordinatesToKilometers_S2(t *testing.T) {
	errs := make(stats.Float64Data, 0, len(coordinatePairs))
	for _, p := range coordinatePairs {
		a := s2.LatLngFromDegrees(p.lat1, p.lon1)
		b := s2.LatLngFromDegrees(p.lat2, p.lon2)
		want := a.Distance(b).Radians() * 6371
		got := Float64.CoordinatesToKilometers(p.lat1, p.lon1, p.lat2, p.lon2)
		errs = append(errs, common.RelativeError(want, got))
	}
	m, err := stats.Max(errs)
	if err != nil {
		t.Fatal(err)
	}
	if m > 1e-9 {
		t.Errorf("max relative error against s2 %g exceeds 1e-9: %v", m, errs)
	}
}

func TestCoordinatesToKilometers_Orb(t *testing.T) {
	scale := 6371000 / orb.EarthRadius
	for _, p := range coordinatePairs {
		if p.name == "antipodal" {
			// orb doesn't clamp and can return NaN here.
			continue
		}
		want := geo.DistanceHaversine(orb.Point{p.lon1, p.lat1}, orb.Point{p.lon2, p.lat2}) * scale / 1000
		got := Float64.CoordinatesToKilometers(p.lat1, p.lon1, p.lat2, p.lon2)
		if !common.WithinRelative(want, got, 1e-9) {
			t.Errorf("%s: expected %v (orb), got %v", p.name, want, got)
		}
	}
}

func TestCoordinatesToKilometers_Native(t *testing.T) {
	for _, p := range coordinatePairs {
		want := Float64.CoordinatesToKilometers(p.lat1, p.lon1, p.lat2, p.lon2)
		if got := NativeFloat64.CoordinatesToKilometers(p.lat1, p.lon1, p.lat2, p.lon2); !common.WithinRelative(want, got, 1e-9) {
			t.Errorf("%s: native float64 expected %v, got %v", p.name, want, got)
		}
		if p.name == "short-hop" {
			// ~70 m; float32 coordinates are only good to about a meter here.
			continue
		}
		got32 := Float32.CoordinatesToKilometers(float32(p.lat1), float32(p.lon1), float32(p.lat2), float32(p.lon2))
		if !common.WithinRelative(want, float64(got32), 1e-5) {
			t.Errorf("%s: float32 expected %v, got %v", p.name, want, got32)
		}
		n32 := NativeFloat32.CoordinatesToKilometers(float32(p.lat1), float32(p.lon1), float32(p.lat2), float32(p.lon2))
		if !common.WithinRelative(want, float64(n32), 1e-4) {
			t.Errorf("%s: native float32 expected %v, got %v", p.name, want, n32)
		}
	}
}

func TestCoordinatesToMiles(t *testing.T) {
	for _, p := range coordinatePairs {
		km := Float64.CoordinatesToKilometers(p.lat1, p.lon1, p.lat2, p.lon2)
		mi := Float64.CoordinatesToMiles(p.lat1, p.lon1, p.lat2, p.lon2)
		if !common.WithinRelative(km/1.609344, mi, 1e-12) {
			t.Errorf("%s: expected %v mi, got %v", p.name, km/1.609344, mi)
		}
	}
	if got := Int.CoordinatesToMiles(0, 0, 0, 90); !got.Equal(KilometersToMiles(Int.CoordinatesToKilometers(0, 0, 0, 90))) {
		t.Errorf("expected miles routed through kilometers, got %s", got)
	}
}
