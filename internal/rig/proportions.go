// Package rig builds and drives the articulated robot figure: proportional
// part sizing, the fixed part tree (foot → femur/shoulder → body → head →
// eye), clamped joint motion, and the figure's vitality state.
//
// The package is deliberately free of rendering concerns. It produces and
// mutates a scenegraph subtree; everything visual beyond transforms and
// shape dimensions is the renderer's problem.
package rig

// Default construction inputs. Every derived dimension is a fixed multiple
// of these two values; see Measure.
const (
	DefaultHeight = 21.0
	DefaultWidth  = 12.5
)

// Fixed sizing ratios. The numbers are part of the figure's identity: Measure
// must reproduce them exactly, so they are named here once and never repeated.
const (
	legHeightRatio     = 0.7619
	bodyHeightRatio    = 0.6667
	headRadiusRatio    = 0.1428
	footHeightRatio    = 0.125   // of leg height
	footBottomRatio    = 0.1875  // of leg height, diameter of the foot base
	femurLengthRatio   = 0.75    // of leg height
	femurDiameterRatio = 0.09375 // of leg height
	shoulderSideRatio  = 0.125   // of leg height
	eyeRadiusRatio     = 0.25    // of head radius
)

// Proportions holds every derived part dimension for one figure. Values are
// computed once by Measure and are immutable afterwards; the figure never
// re-derives them differently.
type Proportions struct {
	Height float64
	Width  float64

	LegHeight        float64
	BodyHeight       float64
	BodyWidth        float64
	HeadRadius       float64
	FootHeight       float64
	FootRadiusTop    float64
	FootRadiusBottom float64
	FemurLength      float64
	FemurRadius      float64
	ShoulderSide     float64
	EyeRadius        float64
	EyeHeight        float64
}

// Measure derives all part dimensions from a height/width pair. It is a pure
// function: no validation, no side effects. Any finite positive input is
// meaningful; callers that want validation do it at the configuration layer.
func Measure(height, width float64) Proportions {
	legHeight := height * legHeightRatio
	bodyHeight := height * bodyHeightRatio
	headRadius := height * headRadiusRatio
	footHeight := legHeight * footHeightRatio
	eyeRadius := headRadius * eyeRadiusRatio

	return Proportions{
		Height: height,
		Width:  width,

		LegHeight:        legHeight,
		BodyHeight:       bodyHeight,
		BodyWidth:        bodyHeight * 0.5,
		HeadRadius:       headRadius,
		FootHeight:       footHeight,
		FootRadiusTop:    footHeight / 2,
		FootRadiusBottom: legHeight * footBottomRatio / 2,
		FemurLength:      legHeight * femurLengthRatio,
		FemurRadius:      legHeight * femurDiameterRatio * 0.5,
		ShoulderSide:     legHeight * shoulderSideRatio,
		EyeRadius:        eyeRadius,
		EyeHeight:        eyeRadius / 2,
	}
}
