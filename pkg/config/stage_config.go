package config

import (
	"fmt"

	"github.com/decker502/robostage/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// FloorConfig 地板配置
type FloorConfig struct {
	Size    float64 `yaml:"size"`    // 正方形边长
	Color   string  `yaml:"color"`   // "#RRGGBB"
	Texture string  `yaml:"texture"` // 纹理目录ID，空为无纹理
}

// WallConfig 围墙配置
type WallConfig struct {
	Height  float64 `yaml:"height"`  // 墙高
	Color   string  `yaml:"color"`   // "#RRGGBB"
	Texture string  `yaml:"texture"` // 纹理目录ID
}

// SkyConfig 天空配置
type SkyConfig struct {
	Color   string `yaml:"color"`   // 背景色 "#RRGGBB"
	Texture string `yaml:"texture"` // 天空纹理目录ID，空为纯色
}

// CameraConfig 相机配置
type CameraConfig struct {
	FOV      float64 `yaml:"fov"`      // 垂直视场角（度）
	Near     float64 `yaml:"near"`     // 近平面
	Far      float64 `yaml:"far"`      // 远平面
	Position Vec3    `yaml:"position"` // 相机位置
	LookAt   Vec3    `yaml:"lookAt"`   // 注视点
}

// LightConfig 光源配置
type LightConfig struct {
	Name       string  `yaml:"name"`       // 光源名称
	Type       string  `yaml:"type"`       // "ambient" / "directional" / "point"
	Color      string  `yaml:"color"`      // "#RRGGBB"
	Intensity  float64 `yaml:"intensity"`  // 强度
	Position   Vec3    `yaml:"position"`   // 位置（ambient 忽略）
	CastShadow bool    `yaml:"castShadow"` // 是否投射阴影
}

// StageConfig 舞台配置文件结构
type StageConfig struct {
	Floor  FloorConfig   `yaml:"floor"`
	Walls  WallConfig    `yaml:"walls"`
	Sky    SkyConfig     `yaml:"sky"`
	Camera CameraConfig  `yaml:"camera"`
	Lights []LightConfig `yaml:"lights"`
}

// LoadStageConfig 从嵌入的 YAML 文件加载舞台配置
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*StageConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadStageConfig(filepath string) (*StageConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage config %s: %w", filepath, err)
	}

	var config StageConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse stage config YAML from %s: %w", filepath, err)
	}

	if err := validateStageConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid stage config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateStageConfig 验证舞台配置的完整性和合法性
func validateStageConfig(config *StageConfig) error {
	if config.Floor.Size <= 0 {
		return fmt.Errorf("floor size must be positive, got %v", config.Floor.Size)
	}
	if config.Walls.Height < 0 {
		return fmt.Errorf("wall height cannot be negative, got %v", config.Walls.Height)
	}

	cam := config.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", cam.FOV)
	}
	if cam.Near <= 0 {
		return fmt.Errorf("camera near plane must be positive, got %v", cam.Near)
	}
	if cam.Far <= cam.Near {
		return fmt.Errorf("camera far plane must exceed near plane, got near=%v far=%v", cam.Near, cam.Far)
	}

	for i, light := range config.Lights {
		switch light.Type {
		case "ambient", "directional", "point":
		default:
			return fmt.Errorf("light %d (%s): unknown type %q", i, light.Name, light.Type)
		}
		if light.Intensity < 0 {
			return fmt.Errorf("light %d (%s): intensity cannot be negative, got %v", i, light.Name, light.Intensity)
		}
	}

	return nil
}
