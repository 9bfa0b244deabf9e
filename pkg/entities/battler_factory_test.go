package entities

import (
	"testing"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
)

func testCatalog() *config.BattleDemoConfig {
	return &config.BattleDemoConfig{
		States: []config.StateDefinition{
			{ID: 4, Name: "Poison", IconIndex: 2, Priority: 50},
			{ID: 5, Name: "Blind", IconIndex: 3, Priority: 60},
		},
	}
}

// TestNewBattler 测试开战状态按优先级排列
func TestNewBattler(t *testing.T) {
	em := ecs.NewEntityManager()
	def := config.ActorDefinition{ID: 3, Name: "Gale", HP: 50, MaxHP: 60, States: []int{4, 5, 99}}

	id := NewBattler(em, def, testCatalog())
	battler, ok := ecs.GetComponent[*components.BattlerComponent](em, id)
	if !ok {
		t.Fatal("Expected BattlerComponent")
	}

	if battler.ActorID != 3 || battler.Name != "Gale" || !battler.IsActor {
		t.Errorf("Unexpected battler: %+v", battler)
	}
	if battler.HP != 50 || battler.MaxHP != 60 {
		t.Errorf("Expected HP 50/60, got %d/%d", battler.HP, battler.MaxHP)
	}

	// 未知状态 99 被忽略
	icons := battler.AllIcons()
	if len(icons) != 2 || icons[0] != 3 || icons[1] != 2 {
		t.Errorf("Expected icons [3 2], got %v", icons)
	}
}

// TestResetBattler 测试恢复开战状态时清除战斗中的变化
func TestResetBattler(t *testing.T) {
	em := ecs.NewEntityManager()
	def := config.ActorDefinition{ID: 1, Name: "Reid", HP: 10, MaxHP: 10, States: []int{4}}
	catalog := testCatalog()

	id := NewBattler(em, def, catalog)
	battler, _ := ecs.GetComponent[*components.BattlerComponent](em, id)

	battler.HP = 0
	battler.AddBuff(2)
	battler.AddState(BattlerStateFrom(&catalog.States[1]))

	ResetBattler(battler, def, catalog)

	if battler.HP != 10 {
		t.Errorf("Expected HP 10, got %d", battler.HP)
	}
	if icons := battler.AllIcons(); len(icons) != 1 || icons[0] != 2 {
		t.Errorf("Expected icons [2], got %v", icons)
	}
}
