package systems

import (
	"log"
	"math"

	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/decker502/robostage/pkg/utils"
)

// MotionSystem 驱动机器人姿势执行
//
// 每帧把当前姿势过渡向目标推进一步，并通过骨架的夹取 setter 应用。
// setter 本身是幂等且带限位的，所以系统不需要关心越界目标：
// 配置里写 999 度也只会停在限位边界上。
// 机器人死亡后 setter 全部退化为空操作，姿势序列自然冻结。
type MotionSystem struct {
	entityManager *ecs.EntityManager
}

// NewMotionSystem 创建姿势驱动系统
func NewMotionSystem(em *ecs.EntityManager) *MotionSystem {
	return &MotionSystem{entityManager: em}
}

// Update 推进所有机器人实体的姿势状态
// deltaTime 为上一帧以来经过的秒数
func (s *MotionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.FigureComponent, *components.PoseComponent](s.entityManager)

	for _, id := range entities {
		figComp, ok := ecs.GetComponent[*components.FigureComponent](s.entityManager, id)
		if !ok || figComp.Rig == nil {
			continue
		}
		pose, ok := ecs.GetComponent[*components.PoseComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 死亡后不再推进任何姿势状态
		if !figComp.Rig.Alive() {
			continue
		}

		switch pose.Phase {
		case components.PhaseIdle:
			s.updateIdle(figComp, pose, deltaTime)
		case components.PhaseMoving:
			s.updateMoving(figComp, pose, deltaTime)
		case components.PhaseHolding:
			s.updateHolding(figComp, pose, deltaTime)
		}
	}
}

// updateIdle 待机阶段：有下一个姿势就开始过渡，否则播放待机摆头
func (s *MotionSystem) updateIdle(figComp *components.FigureComponent, pose *components.PoseComponent, deltaTime float64) {
	if pose.Index < len(pose.Poses) {
		// 采样过渡起点并进入过渡阶段
		fig := figComp.Rig
		pose.FromHeadDeg = fig.HeadAngle()
		pose.FromBodyDeg = fig.BodyAngle()
		pose.FromStretch = fig.LegStretch()
		pose.Progress = 0
		pose.Phase = components.PhaseMoving
		log.Printf("[MotionSystem] 开始姿势: %s", pose.Poses[pose.Index].Name)
		return
	}

	// 序列播完：轻微的待机摆头
	if pose.IdleSwayDeg > 0 {
		pose.IdleSwayClock += deltaTime
		figComp.Rig.SetHeadRotation(math.Sin(pose.IdleSwayClock*pose.IdleSwaySpeed) * pose.IdleSwayDeg)
	}
}

// updateMoving 过渡阶段：按缓动曲线插值到目标姿势
func (s *MotionSystem) updateMoving(figComp *components.FigureComponent, pose *components.PoseComponent, deltaTime float64) {
	target := pose.Poses[pose.Index]

	if pose.TransitionSeconds <= 0 {
		pose.Progress = 1
	} else {
		pose.Progress += deltaTime / pose.TransitionSeconds
	}

	t := math.Min(pose.Progress, 1)
	e := utils.EasingByName(pose.Easing)(t)

	fig := figComp.Rig
	fig.SetHeadRotation(utils.Lerp(pose.FromHeadDeg, target.HeadDeg, e))
	fig.SetBodyRotation(utils.Lerp(pose.FromBodyDeg, target.BodyDeg, e))
	fig.SetLegStretch(utils.Lerp(pose.FromStretch, target.Stretch, e))

	if t >= 1 {
		pose.Phase = components.PhaseHolding
		pose.HoldLeft = target.HoldSeconds
	}
}

// updateHolding 保持阶段：倒计时结束后记分并切到下一个姿势
func (s *MotionSystem) updateHolding(figComp *components.FigureComponent, pose *components.PoseComponent, deltaTime float64) {
	pose.HoldLeft -= deltaTime
	if pose.HoldLeft > 0 {
		return
	}

	target := pose.Poses[pose.Index]
	figComp.Rig.AddPoints(target.Points)
	pose.CompletedCount++
	pose.Index++
	pose.Phase = components.PhaseIdle
	log.Printf("[MotionSystem] 完成姿势: %s (+%d 分)", target.Name, target.Points)
}
