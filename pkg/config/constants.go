package config

// 进程级只读常量
// 窗口尺寸只用于 cmd/ 下的线框查看工具；正式画面尺寸由外部渲染器决定

const (
	// WindowWidth 查看工具窗口宽度（像素）
	WindowWidth = 1024
	// WindowHeight 查看工具窗口高度（像素）
	WindowHeight = 768
)

// 嵌入配置文件的默认路径
const (
	StageConfigPath    = "data/stage.yaml"
	RobotConfigPath    = "data/robot.yaml"
	PoseConfigPath     = "data/poses.yaml"
	HazardConfigPath   = "data/hazards.yaml"
	TextureCatalogPath = "data/textures.yaml"
)

// SparkEffectDuration 伤害火花特效的存活时长（秒）
const SparkEffectDuration = 0.2

// Vec3 YAML 配置中的三维坐标，形如 [x, y, z]
type Vec3 [3]float64
