package rig

import (
	"math"

	"github.com/decker502/robostage/internal/scenegraph"
)

// DefaultRadialSegments is the tessellation quality used when Config leaves
// RadialSegments at zero.
const DefaultRadialSegments = 24

// Palette assigns a color per part kind. Colors are opaque "#RRGGBB" strings
// passed through to the renderer; empty entries mean renderer default.
type Palette struct {
	Foot     string
	Femur    string
	Shoulder string
	Body     string
	Head     string
	Eye      string
}

// Textures assigns a texture catalog ID per part kind. Empty entries mean
// untextured.
type Textures struct {
	Foot     string
	Femur    string
	Shoulder string
	Body     string
	Head     string
	Eye      string
}

// Config are the construction parameters for a Figure. The zero value is
// usable: missing numbers fall back to the documented defaults and an unset
// BodyAnchor resolves to the left side.
type Config struct {
	Height         float64
	Width          float64
	RadialSegments int

	// BodyAnchor picks which shoulder carries the body/head/eye subtree.
	// Exactly one shoulder owns it; the other is purely structural.
	BodyAnchor Side

	Palette  Palette
	Textures Textures
}

// Figure is the articulated robot: a fixed part tree
// (foot → femur/shoulder → body → head → eye, mirrored per side) plus named
// joint references, clamped motion state, and vitality.
//
// A Figure owns its scene-graph subtree. It is not itself a scenegraph.Node;
// callers attach Root() wherever the figure belongs in the scene.
type Figure struct {
	cfg   Config
	props Proportions

	root *scenegraph.Node

	// Named joint slots, filled during construction.
	head          *scenegraph.Node
	body          *scenegraph.Node
	leftFemur     *scenegraph.Node
	rightFemur    *scenegraph.Node
	leftShoulder  *scenegraph.Node
	rightShoulder *scenegraph.Node

	// Current motion state, always within the clamp ranges.
	headDeg    float64
	bodyDeg    float64
	legStretch float64

	vit Vitality
}

// New builds a complete figure from the configuration. Construction is
// total: there is no partial-failure path, so no error is returned.
func New(cfg Config) *Figure {
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.RadialSegments == 0 {
		cfg.RadialSegments = DefaultRadialSegments
	}
	if cfg.BodyAnchor != SideLeft && cfg.BodyAnchor != SideRight {
		cfg.BodyAnchor = SideLeft
	}

	f := &Figure{
		cfg:        cfg,
		props:      Measure(cfg.Height, cfg.Width),
		root:       scenegraph.NewNode("robot"),
		legStretch: StretchMin,
		vit:        NewVitality(),
	}

	// Each side is a full foot subtree; the body chain hangs off exactly
	// one shoulder (the anchor side) so the figure has a single canonical
	// body/head/eye chain.
	f.root.MustAdd(f.buildFoot(SideLeft))
	f.root.MustAdd(f.buildFoot(SideRight))

	return f
}

// buildFoot assembles one side's subtree rooted at the foot: the foot cone,
// a femur above it, and a shoulder block above the femur. The femur and
// shoulder nodes are recorded into the figure's named slots. On the anchor
// side the shoulder additionally receives the body chain.
func (f *Figure) buildFoot(side Side) *scenegraph.Node {
	p := f.props

	foot := scenegraph.NewMeshNode(side.String()+"Foot", scenegraph.Cylinder{
		RadiusTop:      p.FootRadiusTop,
		RadiusBottom:   p.FootRadiusBottom,
		Height:         p.FootHeight,
		RadialSegments: f.cfg.RadialSegments,
	}, &scenegraph.Material{Color: f.cfg.Palette.Foot, TextureID: f.cfg.Textures.Foot})
	foot.Position[0] = side.Sign() * (p.BodyWidth/2 + p.FootHeight/2)
	foot.Position[1] = p.FootHeight / 2
	foot.CastShadow = true

	femur := scenegraph.NewMeshNode(side.String()+"Femur", scenegraph.Cylinder{
		RadiusTop:      p.FemurRadius,
		RadiusBottom:   p.FemurRadius,
		Height:         p.FemurLength,
		RadialSegments: f.cfg.RadialSegments,
	}, &scenegraph.Material{Color: f.cfg.Palette.Femur, TextureID: f.cfg.Textures.Femur})
	femur.Position[1] = p.FemurLength / 2
	femur.CastShadow = true
	foot.MustAdd(femur)

	shoulder := scenegraph.NewMeshNode(side.String()+"Shoulder", scenegraph.Box{
		Width:  p.ShoulderSide,
		Height: p.ShoulderSide,
		Depth:  p.ShoulderSide,
	}, &scenegraph.Material{Color: f.cfg.Palette.Shoulder, TextureID: f.cfg.Textures.Shoulder})
	shoulder.Position[1] = p.FemurLength
	shoulder.CastShadow = true
	foot.MustAdd(shoulder)

	switch side {
	case SideLeft:
		f.leftFemur, f.leftShoulder = femur, shoulder
	case SideRight:
		f.rightFemur, f.rightShoulder = femur, shoulder
	}

	if side == f.cfg.BodyAnchor {
		body := f.buildBody()
		// Recenter: the shoulder sits at a mirrored X offset, but the
		// single body chain belongs on the figure's midline.
		body.Position[0] = -side.Sign() * (p.BodyWidth/2 + p.FootHeight/2)
		shoulder.MustAdd(body)
	}

	return foot
}

// buildBody assembles the body → head → eye chain and records the body and
// head nodes into the figure's named slots.
func (f *Figure) buildBody() *scenegraph.Node {
	p := f.props

	body := scenegraph.NewMeshNode("body", scenegraph.Box{
		Width:  p.BodyWidth,
		Height: p.BodyHeight,
		Depth:  p.BodyWidth,
	}, &scenegraph.Material{Color: f.cfg.Palette.Body, TextureID: f.cfg.Textures.Body})
	body.Position[1] = p.ShoulderSide/2 + p.BodyHeight/2
	body.CastShadow = true
	f.body = body

	body.MustAdd(f.buildHead())
	return body
}

func (f *Figure) buildHead() *scenegraph.Node {
	p := f.props

	head := scenegraph.NewMeshNode("head", scenegraph.Sphere{
		Radius:         p.HeadRadius,
		WidthSegments:  f.cfg.RadialSegments,
		HeightSegments: f.cfg.RadialSegments,
	}, &scenegraph.Material{Color: f.cfg.Palette.Head, TextureID: f.cfg.Textures.Head})
	head.Position[1] = p.BodyHeight/2 + p.HeadRadius
	head.CastShadow = true
	f.head = head

	head.MustAdd(f.buildEye())
	return head
}

func (f *Figure) buildEye() *scenegraph.Node {
	p := f.props

	eye := scenegraph.NewMeshNode("eye", scenegraph.Cylinder{
		RadiusTop:      p.EyeRadius,
		RadiusBottom:   p.EyeRadius,
		Height:         p.EyeHeight,
		RadialSegments: f.cfg.RadialSegments,
	}, &scenegraph.Material{Color: f.cfg.Palette.Eye, TextureID: f.cfg.Textures.Eye})
	// The eye cylinder sits on the head's front surface, axis facing +Z.
	eye.Position[2] = p.HeadRadius
	eye.Rotation[0] = math.Pi / 2
	return eye
}

// Root returns the figure's scene-graph root for attachment into a scene.
func (f *Figure) Root() *scenegraph.Node { return f.root }

// Proportions returns the derived part dimensions.
func (f *Figure) Proportions() Proportions { return f.props }

// Head returns the head joint node.
func (f *Figure) Head() *scenegraph.Node { return f.head }

// Body returns the body joint node.
func (f *Figure) Body() *scenegraph.Node { return f.body }

// Femur returns the femur node for a side.
func (f *Figure) Femur(side Side) *scenegraph.Node {
	if side == SideRight {
		return f.rightFemur
	}
	return f.leftFemur
}

// Shoulder returns the shoulder node for a side.
func (f *Figure) Shoulder(side Side) *scenegraph.Node {
	if side == SideRight {
		return f.rightShoulder
	}
	return f.leftShoulder
}

// BodyAnchor reports which shoulder carries the body chain.
func (f *Figure) BodyAnchor() Side { return f.cfg.BodyAnchor }
