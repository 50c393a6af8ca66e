package rig

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func close(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// TestMeasure_FixedRatios tests that every derived dimension is the exact
// fixed multiple of the inputs, across a range of heights.
func TestMeasure_FixedRatios(t *testing.T) {
	heights := []float64{21, 1, 0.5, 100, 1234.5}

	for _, h := range heights {
		p := Measure(h, h*0.6)

		legHeight := h * 0.7619
		bodyHeight := h * 0.6667
		headRadius := h * 0.1428
		footHeight := legHeight * 0.125
		eyeRadius := headRadius * 0.25

		checks := []struct {
			name string
			got  float64
			want float64
		}{
			{"LegHeight", p.LegHeight, legHeight},
			{"BodyHeight", p.BodyHeight, bodyHeight},
			{"BodyWidth", p.BodyWidth, bodyHeight * 0.5},
			{"HeadRadius", p.HeadRadius, headRadius},
			{"FootHeight", p.FootHeight, footHeight},
			{"FootRadiusTop", p.FootRadiusTop, footHeight / 2},
			{"FootRadiusBottom", p.FootRadiusBottom, legHeight * 0.1875 / 2},
			{"FemurLength", p.FemurLength, legHeight * 0.75},
			{"FemurRadius", p.FemurRadius, legHeight * 0.09375 * 0.5},
			{"ShoulderSide", p.ShoulderSide, legHeight * 0.125},
			{"EyeRadius", p.EyeRadius, eyeRadius},
			{"EyeHeight", p.EyeHeight, eyeRadius / 2},
		}
		for _, c := range checks {
			if !close(c.got, c.want) {
				t.Errorf("height %v: %s got %v, want %v", h, c.name, c.got, c.want)
			}
		}
	}
}

// TestMeasure_Defaults tests the documented reference values for the
// default construction inputs (21, 12.5).
func TestMeasure_Defaults(t *testing.T) {
	p := Measure(DefaultHeight, DefaultWidth)

	if math.Abs(p.LegHeight-15.9999) > 1e-4 {
		t.Errorf("LegHeight: got %v, want ≈15.9999", p.LegHeight)
	}
	if math.Abs(p.HeadRadius-2.9988) > 1e-4 {
		t.Errorf("HeadRadius: got %v, want ≈2.9988", p.HeadRadius)
	}
	if p.Height != 21 || p.Width != 12.5 {
		t.Errorf("inputs should be recorded verbatim, got (%v, %v)", p.Height, p.Width)
	}
}

// TestMeasure_Pure tests that Measure is deterministic: the same inputs
// always produce identical outputs.
func TestMeasure_Pure(t *testing.T) {
	a := Measure(21, 12.5)
	b := Measure(21, 12.5)
	if a != b {
		t.Errorf("Measure is not deterministic: %+v vs %+v", a, b)
	}
}
