package rig

import "github.com/go-gl/mathgl/mgl64"

// Joint motion limits in degrees, and the leg stretch range. Inputs outside
// these ranges are clamped to the nearest bound, never rejected.
const (
	HeadMinDeg = -80.0
	HeadMaxDeg = 80.0
	BodyMinDeg = -45.0
	BodyMaxDeg = 30.0
	StretchMin = 1.0
	StretchMax = 1.2
)

// SetHeadRotation turns the head about its local Y axis. The input is
// clamped to [HeadMinDeg, HeadMaxDeg]. No-op when the figure is dead.
// Repeated calls with the same input leave the same final state.
func (f *Figure) SetHeadRotation(degrees float64) {
	if !f.vit.Alive() {
		return
	}
	f.headDeg = mgl64.Clamp(degrees, HeadMinDeg, HeadMaxDeg)
	f.head.Rotation[1] = mgl64.DegToRad(f.headDeg)
}

// SetBodyRotation tilts the body about its local X axis. The input is
// clamped to [BodyMinDeg, BodyMaxDeg]. No-op when the figure is dead.
func (f *Figure) SetBodyRotation(degrees float64) {
	if !f.vit.Alive() {
		return
	}
	f.bodyDeg = mgl64.Clamp(degrees, BodyMinDeg, BodyMaxDeg)
	f.body.Rotation[0] = mgl64.DegToRad(f.bodyDeg)
}

// SetLegStretch stretches both legs by a uniform factor, clamped to
// [StretchMin, StretchMax]. The femurs take the stretch as a local Y scale;
// the shoulders ride up with the stretched femur tops. Femur centers stay at
// half the rest femur length: the scale alone produces the visual stretch.
// No-op when the figure is dead.
func (f *Figure) SetLegStretch(factor float64) {
	if !f.vit.Alive() {
		return
	}
	f.legStretch = mgl64.Clamp(factor, StretchMin, StretchMax)

	femurY := f.props.FemurLength / 2
	shoulderY := f.props.FemurLength * f.legStretch

	f.leftFemur.Scale[1] = f.legStretch
	f.rightFemur.Scale[1] = f.legStretch
	f.leftFemur.Position[1] = femurY
	f.rightFemur.Position[1] = femurY
	f.leftShoulder.Position[1] = shoulderY
	f.rightShoulder.Position[1] = shoulderY
}

// HeadAngle returns the currently applied head rotation in degrees.
func (f *Figure) HeadAngle() float64 { return f.headDeg }

// BodyAngle returns the currently applied body rotation in degrees.
func (f *Figure) BodyAngle() float64 { return f.bodyDeg }

// LegStretch returns the currently applied leg stretch factor.
func (f *Figure) LegStretch() float64 { return f.legStretch }
