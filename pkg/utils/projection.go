package utils

import (
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// Projector 将世界坐标投影到屏幕坐标
//
// 仅供 cmd/ 下的线框查看工具使用：正式渲染由外部渲染器完成，
// 这里只需要一个够用的透视投影来画调试线框。
type Projector struct {
	viewProj mgl64.Mat4
	width    float64
	height   float64
}

// NewProjector 根据场景相机和输出尺寸构建投影器
//
// 参数：
//   - cam: 场景相机（视场角、近远平面、位置、注视点）
//   - width, height: 输出画面尺寸（像素）
func NewProjector(cam scenegraph.Camera, width, height int) *Projector {
	proj := mgl64.Perspective(
		mgl64.DegToRad(cam.FOV),
		float64(width)/float64(height),
		cam.Near, cam.Far,
	)
	view := mgl64.LookAtV(cam.Position, cam.LookAt, mgl64.Vec3{0, 1, 0})
	return &Projector{
		viewProj: proj.Mul4(view),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project 将世界坐标点投影到屏幕坐标
// 返回：屏幕坐标 (x, y) 以及该点是否位于相机前方（可见）
func (p *Projector) Project(world mgl64.Vec3) (x, y float64, visible bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * p.width
	y = (1 - ndcY) / 2 * p.height
	return x, y, true
}

// ProjectNodeOrigin 投影节点原点的便捷封装
func (p *Projector) ProjectNodeOrigin(n *scenegraph.Node) (x, y float64, visible bool) {
	return p.Project(n.WorldPosition())
}
