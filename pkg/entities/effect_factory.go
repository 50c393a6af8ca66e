package entities

import (
	"fmt"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewSparkEffectEntity 创建伤害火花特效实体
// 火花在指定位置显示一个短暂的亮色小球后自动消失
//
// 参数:
//   - em: 实体管理器
//   - parent: 火花节点挂载的场景图父节点
//   - at: 火花的世界坐标位置
//
// 返回:
//   - ecs.EntityID: 创建的特效实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewSparkEffectEntity(em *ecs.EntityManager, parent *scenegraph.Node, at mgl64.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if parent == nil {
		return 0, fmt.Errorf("parent node cannot be nil")
	}

	spark := scenegraph.NewMeshNode("spark", scenegraph.Sphere{
		Radius:         0.5,
		WidthSegments:  8,
		HeightSegments: 8,
	}, &scenegraph.Material{Color: "#ffd54f"})
	spark.Position = at
	if err := parent.Add(spark); err != nil {
		return 0, fmt.Errorf("failed to attach spark node: %w", err)
	}

	// 创建实体
	entityID := em.CreateEntity()

	// 绑定场景图节点（LifetimeSystem 到期时负责摘除）
	em.AddComponent(entityID, &components.NodeComponent{
		Node: spark,
	})

	// 添加生命周期组件（控制特效显示时长）
	em.AddComponent(entityID, &components.LifetimeComponent{
		CurrentLifetime: 0.0,
		MaxLifetime:     config.SparkEffectDuration,
		IsExpired:       false,
	})

	return entityID, nil
}
