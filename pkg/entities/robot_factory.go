package entities

import (
	"fmt"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
)

// NewRobotEntity 创建机器人实体
// 按配置构建骨架，把骨架根节点挂到舞台节点下，并绑定姿势序列
//
// 参数:
//   - em: 实体管理器
//   - robotCfg: 机器人构建配置
//   - poseCfg: 姿势序列配置，可为 nil（机器人静止站立）
//   - quality: 质量档位名（robotCfg.Quality 的键）
//   - stageRoot: 机器人挂载的场景图父节点
//
// 返回:
//   - ecs.EntityID: 创建的机器人实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewRobotEntity(em *ecs.EntityManager, robotCfg *config.RobotConfig, poseCfg *config.PoseSetConfig, quality string, stageRoot *scenegraph.Node) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if robotCfg == nil {
		return 0, fmt.Errorf("robot config cannot be nil")
	}
	if stageRoot == nil {
		return 0, fmt.Errorf("stage root node cannot be nil")
	}

	figure := rig.New(rig.Config{
		Height:         robotCfg.Height,
		Width:          robotCfg.Width,
		RadialSegments: robotCfg.Segments(quality),
		BodyAnchor:     anchorSide(robotCfg.BodyAnchor),
		Palette: rig.Palette{
			Foot:     robotCfg.Colors.Foot,
			Femur:    robotCfg.Colors.Femur,
			Shoulder: robotCfg.Colors.Shoulder,
			Body:     robotCfg.Colors.Body,
			Head:     robotCfg.Colors.Head,
			Eye:      robotCfg.Colors.Eye,
		},
		Textures: rig.Textures{
			Foot:     robotCfg.Textures.Foot,
			Femur:    robotCfg.Textures.Femur,
			Shoulder: robotCfg.Textures.Shoulder,
			Body:     robotCfg.Textures.Body,
			Head:     robotCfg.Textures.Head,
			Eye:      robotCfg.Textures.Eye,
		},
	})

	if err := stageRoot.Add(figure.Root()); err != nil {
		return 0, fmt.Errorf("failed to attach robot to stage: %w", err)
	}

	// 创建实体
	entityID := em.CreateEntity()

	// 绑定骨架
	em.AddComponent(entityID, &components.FigureComponent{
		Rig: figure,
	})

	// 绑定姿势序列（无配置时为空序列，进入待机）
	poseComp := &components.PoseComponent{
		Phase: components.PhaseIdle,
	}
	if poseCfg != nil {
		poseComp.TransitionSeconds = poseCfg.TransitionSeconds
		poseComp.Easing = poseCfg.Easing
		poseComp.IdleSwayDeg = poseCfg.IdleSway.Degrees
		poseComp.IdleSwaySpeed = poseCfg.IdleSway.Speed
		for _, p := range poseCfg.Poses {
			poseComp.Poses = append(poseComp.Poses, components.PoseTarget{
				Name:        p.Name,
				HeadDeg:     p.Head,
				BodyDeg:     p.Body,
				Stretch:     p.Stretch,
				HoldSeconds: p.HoldSeconds,
				Points:      p.Points,
			})
		}
	}
	em.AddComponent(entityID, poseComp)

	return entityID, nil
}

// anchorSide 把配置中的挂载侧名称翻译为骨架侧别，空串回退到左侧
func anchorSide(name string) rig.Side {
	if name == "right" {
		return rig.SideRight
	}
	return rig.SideLeft
}
