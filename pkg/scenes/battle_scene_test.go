package scenes

import (
	"testing"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/entities"
)

const testBattleYAML = `
states:
  - {id: 1, name: Knockout, iconIndex: 1, priority: 100}
  - {id: 4, name: Poison, iconIndex: 2, priority: 50}
  - {id: 5, name: Blind, iconIndex: 3, priority: 60}
  - {id: 6, name: Silence, iconIndex: 4, priority: 65}
actors:
  - {id: 1, name: Reid, hp: 100, maxHp: 100, states: [4, 5]}
  - {id: 2, name: Priscilla, hp: 80, maxHp: 80}
events:
  - {tick: 0, actor: 2, action: addState, state: 6}
  - {tick: 3, actor: 1, action: damage, value: 500}
loopTicks: 10
`

// newTestScene 创建不带图标表的测试场景
func newTestScene(t *testing.T, layout *config.StateIconLayout) *BattleScene {
	t.Helper()
	battle, err := config.ParseBattleDemo([]byte(testBattleYAML))
	if err != nil {
		t.Fatalf("ParseBattleDemo failed: %v", err)
	}
	return NewBattleSceneFromConfig(battle, layout, nil)
}

// slotIcon 取出角色第 n 个格子的精灵
func slotIcon(t *testing.T, s *BattleScene, actorID, n int) *components.StateIconComponent {
	t.Helper()
	id, ok := s.StatusModule().Registry()[entities.StateIconSlotKey(actorID, n)]
	if !ok {
		t.Fatalf("slot %d of actor %d not registered", n, actorID)
	}
	icon, ok := ecs.GetComponent[*components.StateIconComponent](s.EntityManager(), id)
	if !ok {
		t.Fatalf("slot %d of actor %d has no StateIconComponent", n, actorID)
	}
	return icon
}

// TestNewBattleSceneFromConfig 测试场景为每个角色放置完整的图标网格
func TestNewBattleSceneFromConfig(t *testing.T) {
	layout := config.DefaultStateIconLayout()
	s := newTestScene(t, layout)

	if len(s.Actors()) != 2 {
		t.Fatalf("Expected 2 actors, got %d", len(s.Actors()))
	}

	// 每个角色：1 个单图标精灵 + RowMax*ColumnMax 个格子
	want := 2 * (1 + layout.MaxIcons())
	if got := len(s.StatusModule().Registry()); got != want {
		t.Errorf("Expected %d registered sprites, got %d", want, got)
	}
}

// TestBattleSceneFirstUpdate 测试第一帧立即显示开战时的状态
func TestBattleSceneFirstUpdate(t *testing.T) {
	s := newTestScene(t, config.DefaultStateIconLayout())
	s.Update(1.0 / 60)

	// 优先级：Blind(3) 在 Poison(2) 之前
	tests := []struct {
		slot        int
		wantIcon    int
		wantOpacity int
	}{
		{0, 3, 255},
		{1, 2, 255},
		{2, 0, 0},
	}
	for _, tt := range tests {
		icon := slotIcon(t, s, 1, tt.slot)
		if icon.IconIndex != tt.wantIcon {
			t.Errorf("slot %d: expected icon %d, got %d", tt.slot, tt.wantIcon, icon.IconIndex)
		}
		if icon.Opacity != tt.wantOpacity {
			t.Errorf("slot %d: expected opacity %d, got %d", tt.slot, tt.wantOpacity, icon.Opacity)
		}
	}

	// tick 0 的事件在图标更新之前执行
	if icon := slotIcon(t, s, 2, 0); icon.IconIndex != 4 {
		t.Errorf("actor 2 slot 0: expected Silence icon 4, got %d", icon.IconIndex)
	}
}

// TestBattleSceneKnockout 测试战斗不能后只保留战斗不能图标
func TestBattleSceneKnockout(t *testing.T) {
	layout := config.DefaultStateIconLayout()
	layout.ChangeSpan = 1
	s := newTestScene(t, layout)

	for i := 0; i < 5; i++ {
		s.Update(1.0 / 60)
	}

	if icon := slotIcon(t, s, 1, 0); icon.IconIndex != 1 {
		t.Errorf("Expected knockout icon 1 in slot 0, got %d", icon.IconIndex)
	}
	if icon := slotIcon(t, s, 1, 1); icon.Opacity != 0 {
		t.Errorf("Expected slot 1 hidden after knockout, got opacity %d", icon.Opacity)
	}
}

// TestBattleScenePause 测试暂停时时间线不前进
func TestBattleScenePause(t *testing.T) {
	s := newTestScene(t, config.DefaultStateIconLayout())
	s.Update(1.0 / 60)

	s.TogglePause()
	if !s.IsPaused() {
		t.Fatal("Expected scene to be paused")
	}
	tick := s.eventSystem.CurrentTick()
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	if got := s.eventSystem.CurrentTick(); got != tick {
		t.Errorf("Expected tick to stay at %d while paused, got %d", tick, got)
	}

	s.TogglePause()
	s.Update(1.0 / 60)
	if got := s.eventSystem.CurrentTick(); got != tick+1 {
		t.Errorf("Expected tick %d after resume, got %d", tick+1, got)
	}
}

// TestBattleSceneDispose 测试销毁场景时移除全部图标精灵，保留角色
func TestBattleSceneDispose(t *testing.T) {
	s := newTestScene(t, config.DefaultStateIconLayout())
	s.Dispose()

	if got := len(s.StatusModule().Registry()); got != 0 {
		t.Errorf("Expected empty registry after dispose, got %d", got)
	}
	if got := len(ecs.GetEntitiesWith1[*components.StateIconComponent](s.EntityManager())); got != 0 {
		t.Errorf("Expected no state icon entities after dispose, got %d", got)
	}
	if got := len(ecs.GetEntitiesWith1[*components.BattlerComponent](s.EntityManager())); got != 2 {
		t.Errorf("Expected 2 battlers after dispose, got %d", got)
	}

	// 重复销毁和销毁后更新都是安全的
	s.Dispose()
	s.Update(1.0 / 60)
}
