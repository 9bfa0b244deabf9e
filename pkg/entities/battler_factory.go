package entities

import (
	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
)

// NewBattler 按角色定义创建参战角色实体
// 开战时的状态从状态目录中查找图标与优先级
func NewBattler(em *ecs.EntityManager, def config.ActorDefinition, catalog *config.BattleDemoConfig) ecs.EntityID {
	id := em.CreateEntity()
	battler := &components.BattlerComponent{}
	ResetBattler(battler, def, catalog)
	em.AddComponent(id, battler)
	return id
}

// ResetBattler 把角色恢复到开战时的状态
func ResetBattler(battler *components.BattlerComponent, def config.ActorDefinition, catalog *config.BattleDemoConfig) {
	*battler = components.BattlerComponent{
		ActorID: def.ID,
		Name:    def.Name,
		IsActor: true,
		HP:      def.HP,
		MaxHP:   def.MaxHP,
	}
	for _, stateID := range def.States {
		if st, ok := catalog.GetState(stateID); ok {
			battler.AddState(BattlerStateFrom(st))
		}
	}
}

// BattlerStateFrom 把状态定义转换为角色身上的状态
func BattlerStateFrom(def *config.StateDefinition) components.BattlerState {
	return components.BattlerState{
		ID:        def.ID,
		IconIndex: def.IconIndex,
		Priority:  def.Priority,
	}
}
