package components

import "github.com/decker502/robostage/internal/rig"

// FigureComponent 将机器人骨架绑定到实体
// 骨架本身（部件树、关节限位、生命状态）由 internal/rig 负责，
// 组件只做纯数据挂载，不含任何逻辑
type FigureComponent struct {
	Rig *rig.Figure // 机器人骨架实例
}
