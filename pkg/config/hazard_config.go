package config

import (
	"fmt"

	"github.com/decker502/robostage/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// HazardEntry 单个伤害源条目
type HazardEntry struct {
	Name     string  `yaml:"name"`     // 伤害源名称
	Damage   float64 `yaml:"damage"`   // 每次触发扣除的能量
	Interval float64 `yaml:"interval"` // 触发间隔（秒）
	Position Vec3    `yaml:"position"` // 世界坐标位置
}

// ChargerEntry 单个充能台条目
type ChargerEntry struct {
	Name       string  `yaml:"name"`       // 充能台名称
	HealAmount float64 `yaml:"healAmount"` // 每次触发恢复的能量
	Interval   float64 `yaml:"interval"`   // 触发间隔（秒）
	Position   Vec3    `yaml:"position"`   // 世界坐标位置
}

// HazardsConfig 伤害源/充能台配置文件结构
type HazardsConfig struct {
	Hazards  []HazardEntry  `yaml:"hazards"`
	Chargers []ChargerEntry `yaml:"chargers"`
}

// LoadHazardsConfig 从嵌入的 YAML 文件加载伤害源配置
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*HazardsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadHazardsConfig(filepath string) (*HazardsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read hazards config %s: %w", filepath, err)
	}

	var config HazardsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse hazards config YAML from %s: %w", filepath, err)
	}

	if err := validateHazardsConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid hazards config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateHazardsConfig 验证伤害源配置的合法性
func validateHazardsConfig(config *HazardsConfig) error {
	for i, h := range config.Hazards {
		if h.Name == "" {
			return fmt.Errorf("hazard %d: name is required", i)
		}
		if h.Damage <= 0 {
			return fmt.Errorf("hazard %s: damage must be positive, got %v", h.Name, h.Damage)
		}
		if h.Interval <= 0 {
			return fmt.Errorf("hazard %s: interval must be positive, got %v", h.Name, h.Interval)
		}
	}

	for i, c := range config.Chargers {
		if c.Name == "" {
			return fmt.Errorf("charger %d: name is required", i)
		}
		if c.HealAmount <= 0 {
			return fmt.Errorf("charger %s: healAmount must be positive, got %v", c.Name, c.HealAmount)
		}
		if c.Interval <= 0 {
			return fmt.Errorf("charger %s: interval must be positive, got %v", c.Name, c.Interval)
		}
	}

	return nil
}
