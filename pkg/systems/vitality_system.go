package systems

import (
	"log"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/decker502/robostage/pkg/entities"
)

// VitalitySystem 推进伤害源与充能台的计时器并作用到机器人
//
// 每个伤害源/充能台按自己的间隔独立触发；骨架的生命操作
// 在死亡后自动退化为空操作，所以系统无需重复判断。
// 死亡只上报一次。
type VitalitySystem struct {
	entityManager *ecs.EntityManager
	// 伤害火花节点挂载的场景图父节点（通常是舞台特效层）
	effectsRoot *scenegraph.Node
	// 已上报死亡的机器人实体
	deathReported map[ecs.EntityID]bool
}

// NewVitalitySystem 创建生命系统
//
// 参数：
//   - em: 实体管理器
//   - effectsRoot: 伤害火花等瞬时特效的场景图挂载点，可为 nil（不生成特效）
func NewVitalitySystem(em *ecs.EntityManager, effectsRoot *scenegraph.Node) *VitalitySystem {
	return &VitalitySystem{
		entityManager: em,
		effectsRoot:   effectsRoot,
		deathReported: make(map[ecs.EntityID]bool),
	}
}

// Update 推进所有伤害源与充能台
// deltaTime 为上一帧以来经过的秒数
func (s *VitalitySystem) Update(deltaTime float64) {
	robots := ecs.GetEntitiesWith1[*components.FigureComponent](s.entityManager)
	if len(robots) == 0 {
		return
	}

	s.updateHazards(robots, deltaTime)
	s.updateChargers(robots, deltaTime)
	s.reportDeaths(robots)
}

// updateHazards 推进伤害源计时器，触发时对所有机器人施加伤害
func (s *VitalitySystem) updateHazards(robots []ecs.EntityID, deltaTime float64) {
	hazards := ecs.GetEntitiesWith1[*components.HazardComponent](s.entityManager)

	for _, hid := range hazards {
		hazard, ok := ecs.GetComponent[*components.HazardComponent](s.entityManager, hid)
		if !ok || hazard.Interval <= 0 {
			continue
		}

		hazard.Timer += deltaTime
		for hazard.Timer >= hazard.Interval {
			hazard.Timer -= hazard.Interval
			s.applyHazard(robots, hid, hazard)
		}
	}
}

// applyHazard 对所有机器人施加一次伤害并生成火花特效
func (s *VitalitySystem) applyHazard(robots []ecs.EntityID, hazardID ecs.EntityID, hazard *components.HazardComponent) {
	for _, rid := range robots {
		figComp, ok := ecs.GetComponent[*components.FigureComponent](s.entityManager, rid)
		if !ok || figComp.Rig == nil || !figComp.Rig.Alive() {
			continue
		}

		figComp.Rig.ApplyDamage(hazard.Damage)

		// 火花生成在伤害源节点处（如伤害源没有节点则生成在机器人根部）
		sparkAt := figComp.Rig.Root().WorldPosition()
		if nodeComp, ok := ecs.GetComponent[*components.NodeComponent](s.entityManager, hazardID); ok && nodeComp.Node != nil {
			sparkAt = nodeComp.Node.WorldPosition()
		}
		if s.effectsRoot != nil {
			if _, err := entities.NewSparkEffectEntity(s.entityManager, s.effectsRoot, sparkAt); err != nil {
				log.Printf("[VitalitySystem] Warning: failed to spawn spark effect: %v", err)
			}
		}
	}
}

// updateChargers 推进充能台计时器，触发时恢复所有机器人的能量
func (s *VitalitySystem) updateChargers(robots []ecs.EntityID, deltaTime float64) {
	chargers := ecs.GetEntitiesWith1[*components.ChargerComponent](s.entityManager)

	for _, cid := range chargers {
		charger, ok := ecs.GetComponent[*components.ChargerComponent](s.entityManager, cid)
		if !ok || charger.Interval <= 0 {
			continue
		}

		charger.Timer += deltaTime
		for charger.Timer >= charger.Interval {
			charger.Timer -= charger.Interval
			for _, rid := range robots {
				figComp, ok := ecs.GetComponent[*components.FigureComponent](s.entityManager, rid)
				if !ok || figComp.Rig == nil {
					continue
				}
				figComp.Rig.Heal(charger.HealAmount)
			}
		}
	}
}

// reportDeaths 对每个新死亡的机器人打一条日志，只打一次
func (s *VitalitySystem) reportDeaths(robots []ecs.EntityID) {
	for _, rid := range robots {
		figComp, ok := ecs.GetComponent[*components.FigureComponent](s.entityManager, rid)
		if !ok || figComp.Rig == nil {
			continue
		}
		if !figComp.Rig.Alive() && !s.deathReported[rid] {
			s.deathReported[rid] = true
			log.Printf("[VitalitySystem] 机器人死亡: entity=%d energy=%.1f points=%d",
				rid, figComp.Rig.Energy(), figComp.Rig.Points())
		}
	}
}
