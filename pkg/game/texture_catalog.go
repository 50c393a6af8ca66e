package game

import (
	"fmt"

	"github.com/decker502/robostage/pkg/config"
)

// TextureRef 不透明纹理句柄
// 仓库不解码纹理内容，只把目录条目原样交给外部渲染器
type TextureRef struct {
	ID       string
	Path     string
	WrapMode string
	RepeatX  float64
	RepeatY  float64
}

// TextureCatalog 纹理目录
// 在场景组装期把材质上的纹理ID解析为句柄；未知ID视为配置错误，
// 尽早失败（这是仓库层错误，不是核心的优雅降级范畴）
type TextureCatalog struct {
	refs map[string]TextureRef
}

// NewTextureCatalog 从纹理目录配置构建目录
//
// 参数：
//   - cfg: 已加载并通过校验的纹理目录配置
//
// 返回：
//   - *TextureCatalog: 纹理目录实例
func NewTextureCatalog(cfg *config.TextureCatalogConfig) *TextureCatalog {
	refs := make(map[string]TextureRef, len(cfg.Textures))
	for _, tex := range cfg.Textures {
		repeatX, repeatY := tex.RepeatX, tex.RepeatY
		if repeatX == 0 {
			repeatX = 1
		}
		if repeatY == 0 {
			repeatY = 1
		}
		refs[tex.ID] = TextureRef{
			ID:       tex.ID,
			Path:     tex.Path,
			WrapMode: tex.WrapMode,
			RepeatX:  repeatX,
			RepeatY:  repeatY,
		}
	}
	return &TextureCatalog{refs: refs}
}

// Resolve 按ID解析纹理句柄
//
// 返回：
//   - TextureRef: 纹理句柄
//   - error: 未知ID返回错误
func (tc *TextureCatalog) Resolve(id string) (TextureRef, error) {
	ref, ok := tc.refs[id]
	if !ok {
		return TextureRef{}, fmt.Errorf("unknown texture id: %q", id)
	}
	return ref, nil
}

// Has 检查纹理ID是否存在
func (tc *TextureCatalog) Has(id string) bool {
	_, ok := tc.refs[id]
	return ok
}

// Count 返回目录中的纹理数量
func (tc *TextureCatalog) Count() int {
	return len(tc.refs)
}
