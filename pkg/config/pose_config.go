package config

import (
	"fmt"
	"log"

	"github.com/decker502/robostage/internal/rig"
	"github.com/decker502/robostage/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PoseEntry 单个姿势条目
type PoseEntry struct {
	Name        string  `yaml:"name"`        // 姿势名称
	Head        float64 `yaml:"head"`        // 头部角度（度）
	Body        float64 `yaml:"body"`        // 身体角度（度）
	Stretch     float64 `yaml:"stretch"`     // 腿部拉伸系数
	HoldSeconds float64 `yaml:"holdSeconds"` // 保持时长（秒）
	Points      int     `yaml:"points"`      // 完成得分
}

// IdleSwayConfig 待机摆头配置
type IdleSwayConfig struct {
	Degrees float64 `yaml:"degrees"` // 摆头幅度（度），0 表示关闭
	Speed   float64 `yaml:"speed"`   // 摆头角速度（弧度/秒）
}

// PoseSetConfig 姿势序列配置文件结构
type PoseSetConfig struct {
	TransitionSeconds float64        `yaml:"transitionSeconds"` // 单次过渡时长（秒）
	Easing            string         `yaml:"easing"`            // 缓动函数名
	IdleSway          IdleSwayConfig `yaml:"idleSway"`          // 待机摆头
	Poses             []PoseEntry    `yaml:"poses"`             // 按顺序执行的姿势序列
}

// LoadPoseSetConfig 从嵌入的 YAML 文件加载姿势序列配置
//
// 越界的角度/拉伸值不视为错误：骨架 setter 会在运行时夹取到边界，
// 加载时仅打印告警日志提示配置作者
//
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*PoseSetConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadPoseSetConfig(filepath string) (*PoseSetConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pose config %s: %w", filepath, err)
	}

	var config PoseSetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pose config YAML from %s: %w", filepath, err)
	}

	if err := validatePoseSetConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pose config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validatePoseSetConfig 验证姿势配置；越界值只告警
func validatePoseSetConfig(config *PoseSetConfig) error {
	if config.TransitionSeconds < 0 {
		return fmt.Errorf("transitionSeconds cannot be negative, got %v", config.TransitionSeconds)
	}

	for i, pose := range config.Poses {
		if pose.Name == "" {
			return fmt.Errorf("pose %d: name is required", i)
		}
		if pose.HoldSeconds < 0 {
			return fmt.Errorf("pose %s: holdSeconds cannot be negative, got %v", pose.Name, pose.HoldSeconds)
		}
		if pose.Points < 0 {
			return fmt.Errorf("pose %s: points cannot be negative, got %d", pose.Name, pose.Points)
		}

		if pose.Head < rig.HeadMinDeg || pose.Head > rig.HeadMaxDeg {
			log.Printf("[PoseConfig] Warning: pose %s head angle %v outside [%v, %v], will be clamped at runtime",
				pose.Name, pose.Head, rig.HeadMinDeg, rig.HeadMaxDeg)
		}
		if pose.Body < rig.BodyMinDeg || pose.Body > rig.BodyMaxDeg {
			log.Printf("[PoseConfig] Warning: pose %s body angle %v outside [%v, %v], will be clamped at runtime",
				pose.Name, pose.Body, rig.BodyMinDeg, rig.BodyMaxDeg)
		}
		if pose.Stretch != 0 && (pose.Stretch < rig.StretchMin || pose.Stretch > rig.StretchMax) {
			log.Printf("[PoseConfig] Warning: pose %s stretch %v outside [%v, %v], will be clamped at runtime",
				pose.Name, pose.Stretch, rig.StretchMin, rig.StretchMax)
		}
	}

	return nil
}
