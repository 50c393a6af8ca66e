package game

import (
	"testing"

	"github.com/decker502/robostage/pkg/config"
)

func testCatalog() *TextureCatalog {
	return NewTextureCatalog(&config.TextureCatalogConfig{
		Textures: []config.TextureEntry{
			{ID: "grass", Path: "textures/grass.png", WrapMode: "repeat", RepeatX: 16, RepeatY: 16},
			{ID: "sky", Path: "textures/sky.png", WrapMode: "clamp"},
		},
	})
}

// TestTextureCatalog_Resolve 测试已知ID解析与默认平铺次数
func TestTextureCatalog_Resolve(t *testing.T) {
	tc := testCatalog()

	grass, err := tc.Resolve("grass")
	if err != nil {
		t.Fatalf("Resolve(grass) failed: %v", err)
	}
	if grass.Path != "textures/grass.png" || grass.RepeatX != 16 {
		t.Errorf("grass ref: got %+v", grass)
	}

	// 未设置的平铺次数默认为 1
	sky, err := tc.Resolve("sky")
	if err != nil {
		t.Fatalf("Resolve(sky) failed: %v", err)
	}
	if sky.RepeatX != 1 || sky.RepeatY != 1 {
		t.Errorf("sky repeat defaults: got (%v, %v), want (1, 1)", sky.RepeatX, sky.RepeatY)
	}
}

// TestTextureCatalog_UnknownID 测试未知ID尽早失败
func TestTextureCatalog_UnknownID(t *testing.T) {
	tc := testCatalog()

	if _, err := tc.Resolve("lava"); err == nil {
		t.Error("expected error for unknown texture id")
	}
	if tc.Has("lava") {
		t.Error("Has should report false for unknown id")
	}
	if !tc.Has("grass") {
		t.Error("Has should report true for known id")
	}
	if tc.Count() != 2 {
		t.Errorf("Count: got %d, want 2", tc.Count())
	}
}
