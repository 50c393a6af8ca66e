package scenegraph

// ShapeKind identifies a primitive type for serialization and rendering.
type ShapeKind string

const (
	KindCylinder ShapeKind = "cylinder"
	KindSphere   ShapeKind = "sphere"
	KindBox      ShapeKind = "box"
	KindPlane    ShapeKind = "plane"
)

// Shape is a dimensional description of a renderable primitive. Shapes carry
// no vertex data: the renderer tessellates them using the segment counts
// provided ("radial precision").
type Shape interface {
	// Kind returns the primitive identifier used in exported scene files.
	Kind() ShapeKind
}

// Cylinder is a tube or cone section along the local Y axis. Different top
// and bottom radii produce truncated cones (used for feet).
type Cylinder struct {
	RadiusTop      float64
	RadiusBottom   float64
	Height         float64
	RadialSegments int
}

func (Cylinder) Kind() ShapeKind { return KindCylinder }

// Sphere is a UV sphere. Width/height segments control tessellation.
type Sphere struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

func (Sphere) Kind() ShapeKind { return KindSphere }

// Box is an axis-aligned cuboid centered on the node origin.
type Box struct {
	Width  float64 // X extent
	Height float64 // Y extent
	Depth  float64 // Z extent
}

func (Box) Kind() ShapeKind { return KindBox }

// Plane is a flat rectangle in the local XZ plane, facing +Y.
type Plane struct {
	Width float64 // X extent
	Depth float64 // Z extent
}

func (Plane) Kind() ShapeKind { return KindPlane }

// Material describes surface appearance. Both fields are opaque to this
// package: Color is a CSS-style "#RRGGBB" string and TextureID names an
// entry from the texture catalog, resolved by the renderer.
type Material struct {
	Color     string
	TextureID string
}
