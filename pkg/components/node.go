package components

import "github.com/decker502/robostage/internal/scenegraph"

// NodeComponent 将场景图节点绑定到实体
// 舞台道具（地板、墙、天空）和瞬时特效都通过它挂进场景树，
// 实体销毁时由 LifetimeSystem 负责把节点从场景树上摘除
type NodeComponent struct {
	Node *scenegraph.Node // 实体在场景图中的节点
}
