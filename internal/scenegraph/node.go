// Package scenegraph provides a retained-mode 3D scene graph: a tree of
// transform nodes carrying primitive shape descriptors, plus camera and light
// definitions.
//
// The package owns structure and transforms only. Tessellation, rasterization
// and texture decoding belong to the external renderer that consumes the
// graph; texture references and colors are opaque strings passed through
// unchanged.
package scenegraph

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Node is a single element of the scene graph. A node may carry a Shape (a
// renderable primitive) or act as a pure grouping/transform node when Shape
// is nil.
//
// Ownership is strictly tree-shaped: every node has at most one parent, and
// a node can never appear twice in the same tree. Add enforces this.
type Node struct {
	// Name identifies the node for lookup and debugging, e.g. "leftFemur".
	// Names are not required to be unique; Find returns the first match.
	Name string

	// Shape is the primitive rendered at this node, or nil for grouping nodes.
	Shape Shape

	// Material describes surface appearance. nil means renderer default.
	Material *Material

	// Local transform relative to the parent node (局部变换).
	// Rotation is Euler angles in radians, applied in X, Y, Z order.
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3

	// CastShadow marks the node's shape as a shadow caster.
	CastShadow bool

	// Visible toggles rendering of this node and its subtree.
	Visible bool

	parent   *Node
	children []*Node
}

// NewNode creates an empty grouping node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   mgl64.Vec3{1, 1, 1},
		Visible: true,
	}
}

// NewMeshNode creates a node carrying a primitive shape and material.
func NewMeshNode(name string, shape Shape, material *Material) *Node {
	n := NewNode(name)
	n.Shape = shape
	n.Material = material
	return n
}

// Add attaches child under n. If the child is currently attached elsewhere it
// is moved (detached from its old parent first). Attaching a node to itself
// or to one of its own descendants is rejected, because either would break
// the tree shape.
func (n *Node) Add(child *Node) error {
	if child == nil {
		return fmt.Errorf("cannot attach nil node under %q", n.Name)
	}
	if child == n {
		return fmt.Errorf("cannot attach node %q to itself", n.Name)
	}
	if child.isAncestorOf(n) {
		return fmt.Errorf("cannot attach %q under its own descendant %q", child.Name, n.Name)
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// MustAdd is Add for construction-time wiring where the caller guarantees
// tree shape (fresh nodes). It panics on the errors Add reports, which can
// only be programming mistakes, never data-dependent conditions.
func (n *Node) MustAdd(child *Node) *Node {
	if err := n.Add(child); err != nil {
		panic(err)
	}
	return child
}

// Remove detaches child from n. Returns false when child is not a direct
// child of n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes the node from its current parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// Parent returns the current parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the direct children in attach order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// isAncestorOf reports whether n appears on other's parent chain.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// LocalMatrix returns the node's local transform as translate × rotate ×
// scale, with rotation applied in X, Y, Z order.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	m = m.Mul4(mgl64.HomogRotate3DX(n.Rotation.X()))
	m = m.Mul4(mgl64.HomogRotate3DY(n.Rotation.Y()))
	m = m.Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z()))
	m = m.Mul4(mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
	return m
}

// WorldMatrix returns the composed transform from the tree root down to this
// node. The graph is mutated on a single goroutine per the engine's frame
// model, so no caching or locking is needed here.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// WorldPosition returns the node origin in world coordinates.
func (n *Node) WorldPosition() mgl64.Vec3 {
	p := n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	return p.Vec3()
}

// Walk visits the subtree rooted at n in depth-first preorder. When fn
// returns false the children of that node are skipped; traversal continues
// with the next sibling.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node named name in preorder, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree, including n itself.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
