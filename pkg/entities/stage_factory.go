package entities

import (
	"fmt"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewStagePropEntities 创建舞台道具实体：地板、四面围墙、天空穹顶
// 每个道具一个实体，节点全部挂在 stageRoot 下
//
// 参数:
//   - em: 实体管理器
//   - stageCfg: 舞台配置
//   - stageRoot: 道具挂载的场景图父节点
//
// 返回:
//   - []ecs.EntityID: 创建的道具实体ID列表
//   - error: 如果创建失败返回错误信息
func NewStagePropEntities(em *ecs.EntityManager, stageCfg *config.StageConfig, stageRoot *scenegraph.Node) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if stageCfg == nil {
		return nil, fmt.Errorf("stage config cannot be nil")
	}
	if stageRoot == nil {
		return nil, fmt.Errorf("stage root node cannot be nil")
	}

	var created []ecs.EntityID

	// 地板：XZ 平面，位于 y=0
	floor := scenegraph.NewMeshNode("floor", scenegraph.Plane{
		Width: stageCfg.Floor.Size,
		Depth: stageCfg.Floor.Size,
	}, &scenegraph.Material{Color: stageCfg.Floor.Color, TextureID: stageCfg.Floor.Texture})
	created = append(created, newPropEntity(em, stageRoot, floor))

	// 四面围墙：沿地板边缘立起
	half := stageCfg.Floor.Size / 2
	wallH := stageCfg.Walls.Height
	wallThickness := 1.0
	wallMat := &scenegraph.Material{Color: stageCfg.Walls.Color, TextureID: stageCfg.Walls.Texture}

	walls := []struct {
		name     string
		shape    scenegraph.Box
		position mgl64.Vec3
	}{
		{"wallNorth", scenegraph.Box{Width: stageCfg.Floor.Size, Height: wallH, Depth: wallThickness}, mgl64.Vec3{0, wallH / 2, -half}},
		{"wallSouth", scenegraph.Box{Width: stageCfg.Floor.Size, Height: wallH, Depth: wallThickness}, mgl64.Vec3{0, wallH / 2, half}},
		{"wallEast", scenegraph.Box{Width: wallThickness, Height: wallH, Depth: stageCfg.Floor.Size}, mgl64.Vec3{half, wallH / 2, 0}},
		{"wallWest", scenegraph.Box{Width: wallThickness, Height: wallH, Depth: stageCfg.Floor.Size}, mgl64.Vec3{-half, wallH / 2, 0}},
	}
	for _, w := range walls {
		node := scenegraph.NewMeshNode(w.name, w.shape, wallMat)
		node.Position = w.position
		created = append(created, newPropEntity(em, stageRoot, node))
	}

	// 天空穹顶：包住整个舞台的大球（渲染器从内侧着色）
	sky := scenegraph.NewMeshNode("sky", scenegraph.Sphere{
		Radius:         stageCfg.Floor.Size * 2,
		WidthSegments:  32,
		HeightSegments: 32,
	}, &scenegraph.Material{Color: stageCfg.Sky.Color, TextureID: stageCfg.Sky.Texture})
	created = append(created, newPropEntity(em, stageRoot, sky))

	return created, nil
}

// newPropEntity 创建一个带节点组件的道具实体并挂入场景树
func newPropEntity(em *ecs.EntityManager, parent, node *scenegraph.Node) ecs.EntityID {
	parent.MustAdd(node)
	id := em.CreateEntity()
	em.AddComponent(id, &components.NodeComponent{Node: node})
	return id
}
