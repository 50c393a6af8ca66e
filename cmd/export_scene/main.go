// export_scene - 场景导出工具
// 组装完整舞台并把场景图（节点、变换、形状、材质、相机、光源）
// 序列化为 YAML，交给外部渲染器消费
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	robostage "github.com/decker502/robostage"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/embedded"
	"github.com/decker502/robostage/pkg/game"
	"github.com/decker502/robostage/pkg/scenes"
	"gopkg.in/yaml.v3"
)

// ========== 导出文档结构 ==========

type exportMaterial struct {
	Color   string         `yaml:"color,omitempty"`
	Texture *exportTexture `yaml:"texture,omitempty"`
}

type exportTexture struct {
	ID       string  `yaml:"id"`
	Path     string  `yaml:"path"`
	WrapMode string  `yaml:"wrapMode,omitempty"`
	RepeatX  float64 `yaml:"repeatX"`
	RepeatY  float64 `yaml:"repeatY"`
}

type exportShape struct {
	Kind string `yaml:"kind"`

	// cylinder
	RadiusTop      float64 `yaml:"radiusTop,omitempty"`
	RadiusBottom   float64 `yaml:"radiusBottom,omitempty"`
	RadialSegments int     `yaml:"radialSegments,omitempty"`

	// sphere
	Radius         float64 `yaml:"radius,omitempty"`
	WidthSegments  int     `yaml:"widthSegments,omitempty"`
	HeightSegments int     `yaml:"heightSegments,omitempty"`

	// 公共尺寸（cylinder 高 / box 三边 / plane 两边）
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Depth  float64 `yaml:"depth,omitempty"`
}

type exportNode struct {
	Name       string          `yaml:"name"`
	Shape      *exportShape    `yaml:"shape,omitempty"`
	Material   *exportMaterial `yaml:"material,omitempty"`
	Position   [3]float64      `yaml:"position"`
	Rotation   [3]float64      `yaml:"rotation"`
	Scale      [3]float64      `yaml:"scale"`
	CastShadow bool            `yaml:"castShadow,omitempty"`
	Children   []exportNode    `yaml:"children,omitempty"`
}

type exportLight struct {
	Name       string     `yaml:"name"`
	Kind       string     `yaml:"kind"`
	Color      string     `yaml:"color"`
	Intensity  float64    `yaml:"intensity"`
	Position   [3]float64 `yaml:"position"`
	CastShadow bool       `yaml:"castShadow,omitempty"`
}

type exportCamera struct {
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
	LookAt   [3]float64 `yaml:"lookAt"`
}

type exportScene struct {
	Background string        `yaml:"background"`
	Camera     exportCamera  `yaml:"camera"`
	Lights     []exportLight `yaml:"lights"`
	Root       exportNode    `yaml:"root"`
}

func main() {
	output := flag.String("o", "scene.yaml", "output file path")
	flag.Parse()

	embedded.Init(robostage.DataFS)

	stage, err := scenes.NewStageScene(nil, nil)
	if err != nil {
		log.Fatalf("[ExportScene] failed to compose stage: %v", err)
	}

	doc, err := buildExport(stage.Compose(), stage.TextureCatalog())
	if err != nil {
		log.Fatalf("[ExportScene] failed to build export: %v", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		log.Fatalf("[ExportScene] failed to marshal scene: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("[ExportScene] failed to write %s: %v", *output, err)
	}

	log.Printf("[ExportScene] wrote %s (%d bytes, %d nodes)", *output, len(data), stage.Compose().Root.Count())
}

func buildExport(scene *scenegraph.Scene, catalog *game.TextureCatalog) (*exportScene, error) {
	root, err := buildNode(scene.Root, catalog)
	if err != nil {
		return nil, err
	}

	doc := &exportScene{
		Background: scene.Background,
		Camera: exportCamera{
			FOV:      scene.Camera.FOV,
			Near:     scene.Camera.Near,
			Far:      scene.Camera.Far,
			Position: [3]float64(scene.Camera.Position),
			LookAt:   [3]float64(scene.Camera.LookAt),
		},
		Root: root,
	}
	for _, l := range scene.Lights {
		doc.Lights = append(doc.Lights, exportLight{
			Name:       l.Name,
			Kind:       string(l.Kind),
			Color:      l.Color,
			Intensity:  l.Intensity,
			Position:   [3]float64(l.Position),
			CastShadow: l.CastShadow,
		})
	}
	return doc, nil
}

func buildNode(n *scenegraph.Node, catalog *game.TextureCatalog) (exportNode, error) {
	out := exportNode{
		Name:       n.Name,
		Position:   [3]float64(n.Position),
		Rotation:   [3]float64(n.Rotation),
		Scale:      [3]float64(n.Scale),
		CastShadow: n.CastShadow,
	}

	if n.Shape != nil {
		out.Shape = buildShape(n.Shape)
	}
	if n.Material != nil {
		mat := &exportMaterial{Color: n.Material.Color}
		if n.Material.TextureID != "" {
			ref, err := catalog.Resolve(n.Material.TextureID)
			if err != nil {
				return exportNode{}, fmt.Errorf("node %s: %w", n.Name, err)
			}
			mat.Texture = &exportTexture{
				ID:       ref.ID,
				Path:     ref.Path,
				WrapMode: ref.WrapMode,
				RepeatX:  ref.RepeatX,
				RepeatY:  ref.RepeatY,
			}
		}
		out.Material = mat
	}

	for _, c := range n.Children() {
		child, err := buildNode(c, catalog)
		if err != nil {
			return exportNode{}, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

func buildShape(s scenegraph.Shape) *exportShape {
	out := &exportShape{Kind: string(s.Kind())}
	switch shape := s.(type) {
	case scenegraph.Cylinder:
		out.RadiusTop = shape.RadiusTop
		out.RadiusBottom = shape.RadiusBottom
		out.Height = shape.Height
		out.RadialSegments = shape.RadialSegments
	case scenegraph.Sphere:
		out.Radius = shape.Radius
		out.WidthSegments = shape.WidthSegments
		out.HeightSegments = shape.HeightSegments
	case scenegraph.Box:
		out.Width = shape.Width
		out.Height = shape.Height
		out.Depth = shape.Depth
	case scenegraph.Plane:
		out.Width = shape.Width
		out.Depth = shape.Depth
	}
	return out
}
