package systems

import (
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/ecs"
)

// LifetimeSystem 管理瞬时实体的生命周期
// 到期实体被标记删除，其场景图节点一并从场景树上摘除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 增加当前生命时间
		lifetime.CurrentLifetime += deltaTime

		// 检查是否过期
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			// 场景图节点先摘除，再标记实体待删除
			if nodeComp, ok := ecs.GetComponent[*components.NodeComponent](s.entityManager, id); ok && nodeComp.Node != nil {
				nodeComp.Node.Detach()
			}
			s.entityManager.DestroyEntity(id)
		}
	}
}
