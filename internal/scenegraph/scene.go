package scenegraph

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera description. The renderer derives the
// projection matrix from it; no orbit/input handling lives here.
type Camera struct {
	FOV      float64 // vertical field of view in degrees
	Near     float64
	Far      float64
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// LightKind identifies a light type for serialization and rendering.
type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
	LightPoint       LightKind = "point"
)

// Light is a scene light source. Position is ignored for ambient lights and
// is interpreted as a direction target offset for directional lights.
type Light struct {
	Name       string
	Kind       LightKind
	Color      string // "#RRGGBB", opaque to this package
	Intensity  float64
	Position   mgl64.Vec3
	CastShadow bool
}

// Scene is one renderable composition: a node tree plus camera, lights and a
// background. The background is either a color or a texture reference,
// resolved by the renderer.
type Scene struct {
	Root       *Node
	Camera     Camera
	Lights     []Light
	Background string
}

// NewScene creates a scene with an empty root node named "root".
func NewScene() *Scene {
	return &Scene{Root: NewNode("root")}
}
