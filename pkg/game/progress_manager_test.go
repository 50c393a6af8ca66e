package game

import (
	"testing"
)

// TestProgressManager_SubmitScore 测试最高分维护与会话计数
func TestProgressManager_SubmitScore(t *testing.T) {
	pm, err := NewProgressManager(nil)
	if err != nil {
		t.Fatalf("NewProgressManager failed: %v", err)
	}

	if !pm.SubmitScore(50) {
		t.Error("first score should be a new best")
	}
	if pm.SubmitScore(30) {
		t.Error("lower score should not be a new best")
	}
	if !pm.SubmitScore(80) {
		t.Error("higher score should be a new best")
	}

	progress := pm.GetProgress()
	if progress.BestScore != 80 {
		t.Errorf("BestScore: got %d, want 80", progress.BestScore)
	}
	if progress.TotalSessions != 3 {
		t.Errorf("TotalSessions: got %d, want 3", progress.TotalSessions)
	}
	if progress.LastPlayed == "" {
		t.Error("LastPlayed should be recorded")
	}
}

// TestProgressManager_SaveLoad 测试成绩的持久化与重新加载
func TestProgressManager_SaveLoad(t *testing.T) {
	gdataManager := newTestGdata(t, "test_progress")

	pm, err := NewProgressManager(gdataManager)
	if err != nil {
		t.Fatalf("NewProgressManager failed: %v", err)
	}
	pm.SubmitScore(120)
	if err := pm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pm2, err := NewProgressManager(gdataManager)
	if err != nil {
		t.Fatalf("second NewProgressManager failed: %v", err)
	}
	progress := pm2.GetProgress()
	if progress.BestScore != 120 {
		t.Errorf("BestScore after reload: got %d, want 120", progress.BestScore)
	}
	if progress.TotalSessions != 1 {
		t.Errorf("TotalSessions after reload: got %d, want 1", progress.TotalSessions)
	}
}

// TestProgressManager_NilGdata 测试降级模式不报错
func TestProgressManager_NilGdata(t *testing.T) {
	pm, err := NewProgressManager(nil)
	if err != nil {
		t.Fatalf("NewProgressManager(nil) failed: %v", err)
	}
	pm.SubmitScore(10)
	if err := pm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not error, got: %v", err)
	}
}
