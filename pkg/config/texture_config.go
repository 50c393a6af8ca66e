package config

import (
	"fmt"

	"github.com/decker502/robostage/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TextureEntry 单个纹理条目
// Path 是外部渲染器解析的不透明资源路径，本仓库不解码纹理内容
type TextureEntry struct {
	ID       string  `yaml:"id"`       // 纹理ID，全局唯一
	Path     string  `yaml:"path"`     // 资源相对路径（交给渲染器）
	WrapMode string  `yaml:"wrapMode"` // "repeat" / "clamp" / "mirror"，空为渲染器默认
	RepeatX  float64 `yaml:"repeatX"`  // X 方向平铺次数，0 表示 1
	RepeatY  float64 `yaml:"repeatY"`  // Y 方向平铺次数，0 表示 1
}

// TextureCatalogConfig 纹理目录配置文件结构
type TextureCatalogConfig struct {
	Textures []TextureEntry `yaml:"textures"`
}

// LoadTextureCatalogConfig 从嵌入的 YAML 文件加载纹理目录
// 参数：
//
//	filepath - 配置文件路径（data/ 下）
//
// 返回：
//
//	*TextureCatalogConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadTextureCatalogConfig(filepath string) (*TextureCatalogConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture catalog %s: %w", filepath, err)
	}

	var config TextureCatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse texture catalog YAML from %s: %w", filepath, err)
	}

	if err := validateTextureCatalog(&config); err != nil {
		return nil, fmt.Errorf("invalid texture catalog in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateTextureCatalog 验证纹理目录：ID 唯一、路径非空、平铺模式合法
func validateTextureCatalog(config *TextureCatalogConfig) error {
	seen := make(map[string]bool)

	for i, tex := range config.Textures {
		if tex.ID == "" {
			return fmt.Errorf("texture %d: id is required", i)
		}
		if seen[tex.ID] {
			return fmt.Errorf("texture %s: duplicate id", tex.ID)
		}
		seen[tex.ID] = true

		if tex.Path == "" {
			return fmt.Errorf("texture %s: path is required", tex.ID)
		}

		switch tex.WrapMode {
		case "", "repeat", "clamp", "mirror":
		default:
			return fmt.Errorf("texture %s: unknown wrapMode %q", tex.ID, tex.WrapMode)
		}

		if tex.RepeatX < 0 || tex.RepeatY < 0 {
			return fmt.Errorf("texture %s: repeat counts cannot be negative", tex.ID)
		}
	}

	return nil
}
