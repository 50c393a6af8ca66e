package config

import (
	"fmt"

	"github.com/decker502/robostage/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PartValues 按部件展开的字符串配置（颜色或纹理ID）
// 空值表示使用渲染器默认值 / 无纹理
type PartValues struct {
	Foot     string `yaml:"foot"`
	Femur    string `yaml:"femur"`
	Shoulder string `yaml:"shoulder"`
	Body     string `yaml:"body"`
	Head     string `yaml:"head"`
	Eye      string `yaml:"eye"`
}

// RobotConfig 机器人构建配置
type RobotConfig struct {
	Height     float64        `yaml:"height"`     // 总高度，0 表示使用默认值 21
	Width      float64        `yaml:"width"`      // 总宽度，0 表示使用默认值 12.5
	BodyAnchor string         `yaml:"bodyAnchor"` // 身体链挂载侧: "left" / "right"，空为 left
	Quality    map[string]int `yaml:"quality"`    // 档位名 -> 圆周细分段数
	Colors     PartValues     `yaml:"colors"`     // 各部件颜色 "#RRGGBB"
	Textures   PartValues     `yaml:"textures"`   // 各部件纹理目录ID
}

// LoadRobotConfig 从嵌入的 YAML 文件加载机器人配置
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*RobotConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadRobotConfig(filepath string) (*RobotConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read robot config %s: %w", filepath, err)
	}

	var config RobotConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse robot config YAML from %s: %w", filepath, err)
	}

	if err := validateRobotConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid robot config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateRobotConfig 验证机器人配置的合法性
// 骨架层对尺寸不做校验（任何有限正数都接受），所以尺寸校验放在这里：
// 配置错误属于仓库问题，应该尽早失败
func validateRobotConfig(config *RobotConfig) error {
	if config.Height < 0 {
		return fmt.Errorf("height cannot be negative, got %v", config.Height)
	}
	if config.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %v", config.Width)
	}

	switch config.BodyAnchor {
	case "", "left", "right":
	default:
		return fmt.Errorf("bodyAnchor must be 'left' or 'right', got %q", config.BodyAnchor)
	}

	for name, segments := range config.Quality {
		if segments < 3 {
			return fmt.Errorf("quality %s: radial segments must be at least 3, got %d", name, segments)
		}
	}

	return nil
}

// Segments 返回指定质量档位的圆周细分段数
// 未配置的档位返回 0（骨架层会回退到默认细分）
func (c *RobotConfig) Segments(quality string) int {
	return c.Quality[quality]
}
