package ecs

import "testing"

// 测试用组件类型
type testTag struct{ Name string }
type testCounter struct{ Value int }

// TestCreateEntity 测试实体创建返回递增且非零的ID
func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == 0 || id2 == 0 {
		t.Error("Entity ID should never be 0")
	}
	if id1 == id2 {
		t.Errorf("Entity IDs should be unique, got %d twice", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

// TestAddGetComponent 测试组件的添加与泛型读取
func TestAddGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTag{Name: "robot"})

	tag, ok := GetComponent[*testTag](em, id)
	if !ok {
		t.Fatal("GetComponent should find the added component")
	}
	if tag.Name != "robot" {
		t.Errorf("Name: got %s, want robot", tag.Name)
	}

	// 未添加的组件类型查不到
	if _, ok := GetComponent[*testCounter](em, id); ok {
		t.Error("GetComponent should not find a component that was never added")
	}

	// 同类型组件覆盖旧值
	em.AddComponent(id, &testTag{Name: "stage"})
	tag, _ = GetComponent[*testTag](em, id)
	if tag.Name != "stage" {
		t.Errorf("Name after overwrite: got %s, want stage", tag.Name)
	}
}

// TestAddComponentToMissingEntity 测试对不存在实体添加组件被静默忽略
func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()

	em.AddComponent(EntityID(42), &testTag{Name: "ghost"})

	if _, ok := GetComponent[*testTag](em, EntityID(42)); ok {
		t.Error("Component added to a missing entity should not be retrievable")
	}
}

// TestHasRemoveComponent 测试组件存在性检查与移除
func TestHasRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCounter{Value: 1})

	if !HasComponent[*testCounter](em, id) {
		t.Error("HasComponent should report true for an added component")
	}

	RemoveComponent[*testCounter](em, id)

	if HasComponent[*testCounter](em, id) {
		t.Error("HasComponent should report false after removal")
	}
}

// TestDeferredDestroy 测试延迟删除：标记后实体仍存活，清理后消失
func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTag{Name: "doomed"})

	em.DestroyEntity(id)

	// 清理前仍可访问（系统可能还在遍历）
	if !em.HasEntity(id) {
		t.Error("Entity should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if em.HasEntity(id) {
		t.Error("Entity should be gone after RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*testTag](em, id); ok {
		t.Error("Components should be gone with the entity")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount after cleanup: got %d, want 0", em.EntityCount())
	}
}

// TestGetEntitiesWith 测试组件组合查询
func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testTag{})
	em.AddComponent(both, &testCounter{})

	tagOnly := em.CreateEntity()
	em.AddComponent(tagOnly, &testTag{})

	em.CreateEntity() // 空实体

	tagged := GetEntitiesWith1[*testTag](em)
	if len(tagged) != 2 {
		t.Errorf("GetEntitiesWith1: got %d entities, want 2", len(tagged))
	}

	pairs := GetEntitiesWith2[*testTag, *testCounter](em)
	if len(pairs) != 1 {
		t.Fatalf("GetEntitiesWith2: got %d entities, want 1", len(pairs))
	}
	if pairs[0] != both {
		t.Errorf("GetEntitiesWith2: got entity %d, want %d", pairs[0], both)
	}
}
