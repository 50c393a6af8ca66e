package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
	"github.com/decker502/robostage/pkg/entities"
	"github.com/decker502/robostage/pkg/game"
	"github.com/decker502/robostage/pkg/systems"
	"github.com/go-gl/mathgl/mgl64"
)

// StageScene 舞台场景：机器人 + 环境道具 + 相机 + 光源的组装体
//
// 实现 game.Scene。每帧按固定顺序推进姿势、生命、生命周期三个系统，
// Compose 返回外部渲染器消费的场景图
type StageScene struct {
	entityManager  *ecs.EntityManager
	motionSystem   *systems.MotionSystem
	vitalitySystem *systems.VitalitySystem
	lifetimeSystem *systems.LifetimeSystem

	scene       *scenegraph.Scene
	effectsRoot *scenegraph.Node

	robotID ecs.EntityID
	figure  *rig.Figure

	textureCatalog  *game.TextureCatalog
	progressManager *game.ProgressManager
	gameState       *game.GameState

	scoreSubmitted bool
}

// NewStageScene 组装舞台场景
// 加载全部嵌入配置、构建场景图骨干、创建道具/机器人/伤害源实体
//
// 参数：
//   - settings: 工具设置（质量档位、阴影开关、相机预设），nil 使用默认值
//   - progressManager: 成绩管理器，可为 nil（不记录成绩）
//
// 返回：
//   - *StageScene: 组装完成的场景
//   - error: 任何配置加载、校验或组装失败
func NewStageScene(settings *game.StageSettings, progressManager *game.ProgressManager) (*StageScene, error) {
	if settings == nil {
		settings = game.DefaultSettings()
	}

	// 加载全部配置，任何一个失败都让组装尽早失败
	stageCfg, err := config.LoadStageConfig(config.StageConfigPath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	robotCfg, err := config.LoadRobotConfig(config.RobotConfigPath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	poseCfg, err := config.LoadPoseSetConfig(config.PoseConfigPath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	hazardsCfg, err := config.LoadHazardsConfig(config.HazardConfigPath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	textureCfg, err := config.LoadTextureCatalogConfig(config.TextureCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}

	s := &StageScene{
		entityManager:   ecs.NewEntityManager(),
		textureCatalog:  game.NewTextureCatalog(textureCfg),
		progressManager: progressManager,
		gameState:       game.GetGameState(),
	}
	s.gameState.Reset()

	// 场景图骨干：根节点 + 特效层 + 相机 + 光源 + 背景
	s.scene = scenegraph.NewScene()
	s.scene.Background = stageCfg.Sky.Color
	s.scene.Camera = buildCamera(stageCfg.Camera, settings.CameraPreset)
	for _, l := range stageCfg.Lights {
		s.scene.Lights = append(s.scene.Lights, scenegraph.Light{
			Name:       l.Name,
			Kind:       scenegraph.LightKind(l.Type),
			Color:      l.Color,
			Intensity:  l.Intensity,
			Position:   vec3(l.Position),
			CastShadow: l.CastShadow && settings.ShadowsEnabled,
		})
	}
	s.effectsRoot = scenegraph.NewNode("effects")
	s.scene.Root.MustAdd(s.effectsRoot)

	// 实体组装
	if _, err := entities.NewStagePropEntities(s.entityManager, stageCfg, s.scene.Root); err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	robotID, err := entities.NewRobotEntity(s.entityManager, robotCfg, poseCfg, settings.Quality, s.scene.Root)
	if err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}
	s.robotID = robotID
	figComp, ok := ecs.GetComponent[*components.FigureComponent](s.entityManager, robotID)
	if !ok {
		return nil, fmt.Errorf("stage scene: robot entity has no figure component")
	}
	s.figure = figComp.Rig

	for _, h := range hazardsCfg.Hazards {
		if _, err := entities.NewHazardEntity(s.entityManager, h, s.scene.Root); err != nil {
			return nil, fmt.Errorf("stage scene: %w", err)
		}
	}
	for _, c := range hazardsCfg.Chargers {
		if _, err := entities.NewChargerEntity(s.entityManager, c, s.scene.Root); err != nil {
			return nil, fmt.Errorf("stage scene: %w", err)
		}
	}

	// 材质引用的纹理ID必须全部在目录中，未知ID在组装期报错
	if err := s.checkTextureRefs(); err != nil {
		return nil, fmt.Errorf("stage scene: %w", err)
	}

	// 阴影总开关
	if !settings.ShadowsEnabled {
		s.scene.Root.Walk(func(n *scenegraph.Node) bool {
			n.CastShadow = false
			return true
		})
	}

	// 系统装配
	s.motionSystem = systems.NewMotionSystem(s.entityManager)
	s.vitalitySystem = systems.NewVitalitySystem(s.entityManager, s.effectsRoot)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)

	log.Printf("[StageScene] 舞台组装完成: %d 节点, %d 实体",
		s.scene.Root.Count(), s.entityManager.EntityCount())
	return s, nil
}

// buildCamera 应用相机预设
// 未知预设名回退到配置原值
func buildCamera(cfg config.CameraConfig, preset string) scenegraph.Camera {
	cam := scenegraph.Camera{
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Position: vec3(cfg.Position),
		LookAt:   vec3(cfg.LookAt),
	}
	switch preset {
	case "front":
		cam.Position = mgl64.Vec3{0, cam.LookAt.Y(), cam.Position.Len()}
	case "top":
		cam.Position = mgl64.Vec3{0, cam.Position.Len(), 0.001}
	}
	return cam
}

func vec3(v config.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// checkTextureRefs 遍历场景树，校验所有材质纹理ID都能在目录中解析
func (s *StageScene) checkTextureRefs() error {
	var missing []string
	s.scene.Root.Walk(func(n *scenegraph.Node) bool {
		if n.Material != nil && n.Material.TextureID != "" && !s.textureCatalog.Has(n.Material.TextureID) {
			missing = append(missing, fmt.Sprintf("%s (node %s)", n.Material.TextureID, n.Name))
		}
		return true
	})
	if len(missing) > 0 {
		return fmt.Errorf("unresolved texture ids: %v", missing)
	}
	return nil
}

// Update 按固定顺序推进一帧：姿势 → 生命 → 生命周期 → 实体清理
func (s *StageScene) Update(deltaTime float64) {
	s.gameState.Tick(deltaTime)

	s.motionSystem.Update(deltaTime)
	s.vitalitySystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	// 把机器人状态镜像到全局会话状态，供调试叠层显示
	s.gameState.Score = s.figure.Points()
	if pose, ok := ecs.GetComponent[*components.PoseComponent](s.entityManager, s.robotID); ok {
		s.gameState.PoseIndex = pose.Index
	}
}

// Compose 返回可渲染的场景图
func (s *StageScene) Compose() *scenegraph.Scene {
	return s.scene
}

// Figure 返回场景中的机器人骨架
func (s *StageScene) Figure() *rig.Figure {
	return s.figure
}

// EntityManager 返回场景的实体管理器（查看工具与测试使用）
func (s *StageScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// TextureCatalog 返回纹理目录
func (s *StageScene) TextureCatalog() *game.TextureCatalog {
	return s.textureCatalog
}

// 面向输入层/查看工具的类型化操作，全部直通骨架（骨架自带夹取与死亡门控）

// SetHeadRotation 设置头部角度（度），越界夹取
func (s *StageScene) SetHeadRotation(degrees float64) { s.figure.SetHeadRotation(degrees) }

// SetBodyRotation 设置身体角度（度），越界夹取
func (s *StageScene) SetBodyRotation(degrees float64) { s.figure.SetBodyRotation(degrees) }

// SetLegStretch 设置腿部拉伸系数，越界夹取
func (s *StageScene) SetLegStretch(factor float64) { s.figure.SetLegStretch(factor) }

// ApplyDamage 对机器人施加伤害
func (s *StageScene) ApplyDamage(amount float64) { s.figure.ApplyDamage(amount) }

// Heal 恢复机器人能量
func (s *StageScene) Heal(amount float64) { s.figure.Heal(amount) }

// AddPoints 给机器人记分
func (s *StageScene) AddPoints(amount int) { s.figure.AddPoints(amount) }

// NextPose 跳过当前姿势，下一帧直接开始序列中的下一个
// 被跳过的姿势不记分。序列已播完或机器人已死亡时无效果
func (s *StageScene) NextPose() {
	if !s.figure.Alive() {
		return
	}
	pose, ok := ecs.GetComponent[*components.PoseComponent](s.entityManager, s.robotID)
	if !ok {
		return
	}
	if pose.Phase != components.PhaseIdle && pose.Index < len(pose.Poses) {
		log.Printf("[StageScene] 跳过姿势: %s", pose.Poses[pose.Index].Name)
		pose.Index++
	}
	pose.Phase = components.PhaseIdle
	pose.Progress = 0
	pose.HoldLeft = 0
}

// SaveOnExit 实现 game.Saveable：退出时提交本次会话分数
// 返回 true 表示保存成功或无需保存
func (s *StageScene) SaveOnExit() bool {
	if s.progressManager == nil || s.scoreSubmitted {
		return true
	}
	s.scoreSubmitted = true

	if s.progressManager.SubmitScore(s.figure.Points()) {
		log.Printf("[StageScene] 新纪录: %d 分", s.figure.Points())
	}
	if err := s.progressManager.Save(); err != nil {
		log.Printf("[StageScene] Warning: failed to save progress: %v", err)
		return false
	}
	return true
}
