package entities

import (
	"fmt"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewHazardEntity 创建伤害源实体
// 伤害源在舞台上有一个标记节点（细高圆柱），并按间隔对机器人放电
//
// 参数:
//   - em: 实体管理器
//   - entry: 伤害源配置条目
//   - stageRoot: 标记节点挂载的场景图父节点
//
// 返回:
//   - ecs.EntityID: 创建的伤害源实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewHazardEntity(em *ecs.EntityManager, entry config.HazardEntry, stageRoot *scenegraph.Node) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stageRoot == nil {
		return 0, fmt.Errorf("stage root node cannot be nil")
	}

	marker := scenegraph.NewMeshNode(entry.Name, scenegraph.Cylinder{
		RadiusTop:      0.3,
		RadiusBottom:   0.8,
		Height:         4,
		RadialSegments: 12,
	}, &scenegraph.Material{Color: "#e53935"})
	marker.Position = mgl64.Vec3{entry.Position[0], entry.Position[1], entry.Position[2]}
	if err := stageRoot.Add(marker); err != nil {
		return 0, fmt.Errorf("failed to attach hazard marker: %w", err)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.HazardComponent{
		Name:     entry.Name,
		Damage:   entry.Damage,
		Interval: entry.Interval,
	})
	em.AddComponent(entityID, &components.NodeComponent{
		Node: marker,
	})

	return entityID, nil
}

// NewChargerEntity 创建充能台实体
// 充能台是一个扁平圆盘标记，按间隔恢复机器人的能量
//
// 参数:
//   - em: 实体管理器
//   - entry: 充能台配置条目
//   - stageRoot: 标记节点挂载的场景图父节点
//
// 返回:
//   - ecs.EntityID: 创建的充能台实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewChargerEntity(em *ecs.EntityManager, entry config.ChargerEntry, stageRoot *scenegraph.Node) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stageRoot == nil {
		return 0, fmt.Errorf("stage root node cannot be nil")
	}

	marker := scenegraph.NewMeshNode(entry.Name, scenegraph.Cylinder{
		RadiusTop:      3,
		RadiusBottom:   3,
		Height:         0.5,
		RadialSegments: 24,
	}, &scenegraph.Material{Color: "#43a047"})
	marker.Position = mgl64.Vec3{entry.Position[0], entry.Position[1], entry.Position[2]}
	if err := stageRoot.Add(marker); err != nil {
		return 0, fmt.Errorf("failed to attach charger marker: %w", err)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.ChargerComponent{
		Name:       entry.Name,
		HealAmount: entry.HealAmount,
		Interval:   entry.Interval,
	})
	em.AddComponent(entityID, &components.NodeComponent{
		Node: marker,
	})

	return entityID, nil
}
