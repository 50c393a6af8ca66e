package entities

import (
	"testing"

	"github.com/decker502/robostage/internal/scenegraph"
	"github.com/decker502/robostage/pkg/components"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/ecs"
)

// TestNewHazardEntity 测试伤害源实体的组件装配与标记节点
func TestNewHazardEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	root := scenegraph.NewNode("root")
	entry := config.HazardEntry{
		Name: "arc_emitter", Damage: 12, Interval: 3,
		Position: config.Vec3{25, 6, 0},
	}

	id, err := NewHazardEntity(em, entry, root)
	if err != nil {
		t.Fatalf("NewHazardEntity failed: %v", err)
	}

	hazard, ok := ecs.GetComponent[*components.HazardComponent](em, id)
	if !ok {
		t.Fatal("hazard entity should carry a hazard component")
	}
	if hazard.Damage != 12 || hazard.Interval != 3 {
		t.Errorf("hazard values: got (%v, %v), want (12, 3)", hazard.Damage, hazard.Interval)
	}
	if hazard.Timer != 0 {
		t.Errorf("hazard timer should start at 0, got %v", hazard.Timer)
	}

	marker := root.Find("arc_emitter")
	if marker == nil {
		t.Fatal("hazard marker node not attached")
	}
	if marker.Position.X() != 25 || marker.Position.Y() != 6 {
		t.Errorf("marker position: got %v, want (25, 6, 0)", marker.Position)
	}
}

// TestNewChargerEntity 测试充能台实体的组件装配
func TestNewChargerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	root := scenegraph.NewNode("root")
	entry := config.ChargerEntry{
		Name: "charge_pad", HealAmount: 4, Interval: 2,
		Position: config.Vec3{0, 0.5, -25},
	}

	id, err := NewChargerEntity(em, entry, root)
	if err != nil {
		t.Fatalf("NewChargerEntity failed: %v", err)
	}

	charger, ok := ecs.GetComponent[*components.ChargerComponent](em, id)
	if !ok {
		t.Fatal("charger entity should carry a charger component")
	}
	if charger.HealAmount != 4 || charger.Interval != 2 {
		t.Errorf("charger values: got (%v, %v), want (4, 2)", charger.HealAmount, charger.Interval)
	}
	if root.Find("charge_pad") == nil {
		t.Error("charger marker node not attached")
	}
}

// TestHazardFactories_NilArguments 测试空参数报错
func TestHazardFactories_NilArguments(t *testing.T) {
	em := ecs.NewEntityManager()
	root := scenegraph.NewNode("root")

	if _, err := NewHazardEntity(nil, config.HazardEntry{}, root); err == nil {
		t.Error("expected error for nil entity manager")
	}
	if _, err := NewHazardEntity(em, config.HazardEntry{}, nil); err == nil {
		t.Error("expected error for nil stage root")
	}
	if _, err := NewChargerEntity(nil, config.ChargerEntry{}, root); err == nil {
		t.Error("expected error for nil entity manager")
	}
	if _, err := NewChargerEntity(em, config.ChargerEntry{}, nil); err == nil {
		t.Error("expected error for nil stage root")
	}
}
