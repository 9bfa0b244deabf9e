package systems

import (
	"log"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/entities"
)

// KnockoutStateID 战斗不能状态的编号，HP 归零时自动附加
const KnockoutStateID = 1

// BattleEventSystem 按时间线执行演示战斗中的事件
// 事件只修改角色组件，状态图标在下一次切换时读取到新的图标列表
type BattleEventSystem struct {
	entityManager *ecs.EntityManager
	battle        *config.BattleDemoConfig
	actors        map[int]ecs.EntityID // 角色编号 -> 实体
	tick          int
}

// NewBattleEventSystem 创建战斗事件系统
// actors 为角色编号到角色实体的映射
func NewBattleEventSystem(em *ecs.EntityManager, battle *config.BattleDemoConfig, actors map[int]ecs.EntityID) *BattleEventSystem {
	return &BattleEventSystem{
		entityManager: em,
		battle:        battle,
		actors:        actors,
	}
}

// CurrentTick 返回已经经过的帧数
func (s *BattleEventSystem) CurrentTick() int {
	return s.tick
}

// Update 推进一帧，执行当前帧的全部事件
func (s *BattleEventSystem) Update(deltaTime float64) {
	if s.battle.LoopTicks > 0 && s.tick >= s.battle.LoopTicks {
		s.restart()
	}

	for _, ev := range s.battle.Events {
		if ev.Tick == s.tick {
			s.apply(ev)
		}
	}
	s.tick++
}

// restart 时间线循环：所有角色恢复到开战状态
func (s *BattleEventSystem) restart() {
	for _, def := range s.battle.Actors {
		id, ok := s.actors[def.ID]
		if !ok {
			continue
		}
		if battler, ok := ecs.GetComponent[*components.BattlerComponent](s.entityManager, id); ok {
			entities.ResetBattler(battler, def, s.battle)
		}
	}
	s.tick = 0
	log.Printf("[BattleEventSystem] Timeline restarted")
}

// apply 执行单个事件
func (s *BattleEventSystem) apply(ev config.BattleEvent) {
	id, ok := s.actors[ev.Actor]
	if !ok {
		return
	}
	battler, ok := ecs.GetComponent[*components.BattlerComponent](s.entityManager, id)
	if !ok {
		return
	}

	switch ev.Action {
	case config.EventAddState:
		s.addState(battler, ev.State)
	case config.EventRemoveState:
		battler.RemoveState(ev.State)
		if ev.State == KnockoutStateID && battler.HP == 0 {
			battler.HP = 1
		}
	case config.EventAddBuff:
		battler.AddBuff(ev.Param)
	case config.EventAddDebuff:
		battler.AddDebuff(ev.Param)
	case config.EventRemoveBuff:
		battler.RemoveBuff(ev.Param)
	case config.EventDamage:
		battler.HP -= ev.Value
		if battler.HP <= 0 {
			battler.HP = 0
			s.knockOut(battler)
		}
	case config.EventRecover:
		if !battler.IsAlive() {
			battler.RemoveState(KnockoutStateID)
		}
		battler.HP += ev.Value
		if battler.HP > battler.MaxHP {
			battler.HP = battler.MaxHP
		}
	}

	log.Printf("[BattleEventSystem] tick=%d %s %s (icons: %v)", s.tick, battler.Name, ev.Action, battler.AllIcons())
}

func (s *BattleEventSystem) addState(battler *components.BattlerComponent, stateID int) {
	def, ok := s.battle.GetState(stateID)
	if !ok {
		return
	}
	battler.AddState(entities.BattlerStateFrom(def))
	if stateID == KnockoutStateID {
		s.knockOut(battler)
	}
}

// knockOut 战斗不能：HP 归零，解除其他状态和强化
func (s *BattleEventSystem) knockOut(battler *components.BattlerComponent) {
	battler.HP = 0
	for i := len(battler.States) - 1; i >= 0; i-- {
		if battler.States[i].ID != KnockoutStateID {
			battler.RemoveState(battler.States[i].ID)
		}
	}
	battler.Buffs = [8]int{}
	if !battler.HasState(KnockoutStateID) {
		if def, ok := s.battle.GetState(KnockoutStateID); ok {
			battler.AddState(entities.BattlerStateFrom(def))
		}
	}
}
