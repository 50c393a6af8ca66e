package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录中创建 gdata manager
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Quality != "medium" {
		t.Errorf("Quality: got %q, want medium", settings.Quality)
	}
	if !settings.ShadowsEnabled {
		t.Error("ShadowsEnabled: got false, want true")
	}
	if settings.CameraPreset != "default" {
		t.Errorf("CameraPreset: got %q, want default", settings.CameraPreset)
	}
}

// TestSettingsManager_SaveLoad 测试设置的保存与重新加载
func TestSettingsManager_SaveLoad(t *testing.T) {
	gdataManager := newTestGdata(t, "test_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	sm.SetQuality("high")
	sm.SetShadowsEnabled(false)
	sm.SetCameraPreset("top")
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 新管理器实例应加载到相同的设置
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("second NewSettingsManager failed: %v", err)
	}
	got := sm2.GetSettings()
	if got.Quality != "high" {
		t.Errorf("Quality after reload: got %q, want high", got.Quality)
	}
	if got.ShadowsEnabled {
		t.Error("ShadowsEnabled after reload: got true, want false")
	}
	if got.CameraPreset != "top" {
		t.Errorf("CameraPreset after reload: got %q, want top", got.CameraPreset)
	}
}

// TestSettingsManager_NilGdata 测试降级模式：nil 管理器不报错，仅内存设置
func TestSettingsManager_NilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) failed: %v", err)
	}

	sm.SetQuality("low")
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not error, got: %v", err)
	}
	if sm.GetSettings().Quality != "low" {
		t.Error("in-memory settings should still work in degraded mode")
	}
}

// TestSetQuality_UnknownFallsBack 测试未知档位回退到 medium
func TestSetQuality_UnknownFallsBack(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetQuality("ultra")
	if got := sm.GetSettings().Quality; got != "medium" {
		t.Errorf("unknown quality: got %q, want medium", got)
	}
}
