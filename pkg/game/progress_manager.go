package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// StageProgress 跨会话的成绩记录
type StageProgress struct {
	BestScore     int    `yaml:"bestScore"`     // 历史最高分
	TotalSessions int    `yaml:"totalSessions"` // 累计会话次数
	LastPlayed    string `yaml:"lastPlayed"`    // 最近一次会话时间（RFC3339）
}

// ProgressManager 成绩管理器
// 负责历史成绩的加载、保存和最高分维护
type ProgressManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	progress     *StageProgress // 当前成绩记录
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "stage"
)

// NewProgressManager 创建新的成绩管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *ProgressManager: 成绩管理器实例
//   - error: 如果加载成绩失败返回错误（不影响创建）
func NewProgressManager(gdataManager *gdata.Manager) (*ProgressManager, error) {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     &StageProgress{},
	}

	if err := pm.Load(); err != nil {
		// 加载失败不是致命错误，从零开始记录
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return pm, nil
}

// Load 从 gdata 加载成绩记录
//
// 如果 gdataManager 为 nil 或文件不存在，从零开始
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		pm.progress = &StageProgress{}
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.progress = &StageProgress{}
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.progress = &StageProgress{}
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded StageProgress
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		pm.progress = &StageProgress{}
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	pm.progress = &loaded
	log.Printf("[ProgressManager] Progress loaded: best=%d sessions=%d", loaded.BestScore, loaded.TotalSessions)
	return nil
}

// Save 保存成绩记录到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	log.Printf("[ProgressManager] Progress saved successfully")
	return nil
}

// SubmitScore 提交一次会话的最终分数
// 记录会话次数和时间，只有超过历史最高分时才更新最高分
//
// 参数：
//   - score: 本次会话的最终分数
//
// 返回：
//   - bool: 是否刷新了历史最高分
func (pm *ProgressManager) SubmitScore(score int) bool {
	pm.progress.TotalSessions++
	pm.progress.LastPlayed = time.Now().Format(time.RFC3339)

	if score > pm.progress.BestScore {
		pm.progress.BestScore = score
		return true
	}
	return false
}

// GetProgress 获取当前成绩记录
func (pm *ProgressManager) GetProgress() *StageProgress {
	return pm.progress
}
