package utils

import (
	"math"
	"testing"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

func testCamera() scenegraph.Camera {
	return scenegraph.Camera{
		FOV:      45,
		Near:     0.1,
		Far:      1000,
		Position: mgl64.Vec3{0, 0, 50},
		LookAt:   mgl64.Vec3{0, 0, 0},
	}
}

// TestProject_Center 测试相机注视点投影到画面中心
func TestProject_Center(t *testing.T) {
	p := NewProjector(testCamera(), 800, 600)

	x, y, visible := p.Project(mgl64.Vec3{0, 0, 0})
	if !visible {
		t.Fatal("look-at point should be visible")
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("center projection: got (%v, %v), want (400, 300)", x, y)
	}
}

// TestProject_Axes 测试上方点投影到画面上半部，右侧点投影到右半部
func TestProject_Axes(t *testing.T) {
	p := NewProjector(testCamera(), 800, 600)

	_, yUp, ok := p.Project(mgl64.Vec3{0, 5, 0})
	if !ok || yUp >= 300 {
		t.Errorf("point above origin should land above screen center, got y=%v", yUp)
	}

	xRight, _, ok := p.Project(mgl64.Vec3{5, 0, 0})
	if !ok || xRight <= 400 {
		t.Errorf("point right of origin should land right of screen center, got x=%v", xRight)
	}
}

// TestProject_BehindCamera 测试相机背后的点不可见
func TestProject_BehindCamera(t *testing.T) {
	p := NewProjector(testCamera(), 800, 600)

	if _, _, visible := p.Project(mgl64.Vec3{0, 0, 100}); visible {
		t.Error("point behind the camera should not be visible")
	}
}

// TestProjectNodeOrigin 测试节点原点投影使用世界坐标
func TestProjectNodeOrigin(t *testing.T) {
	parent := scenegraph.NewNode("parent")
	parent.Position = mgl64.Vec3{0, 5, 0}
	child := scenegraph.NewNode("child")
	parent.MustAdd(child)

	p := NewProjector(testCamera(), 800, 600)

	_, yChild, _ := p.ProjectNodeOrigin(child)
	_, yParent, _ := p.Project(mgl64.Vec3{0, 5, 0})
	if math.Abs(yChild-yParent) > 1e-9 {
		t.Errorf("child at parent origin should project identically: %v vs %v", yChild, yParent)
	}
}
