package systems

import (
	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
)

// StateIconSystem 驱动所有状态图标精灵
//
// 按帧计数：每帧每个精灵的 AnimationCount 加一，达到切换间隔时
// 重新读取所属角色的图标列表并更新图标。
// 带 PagedStateIconComponent 的精灵使用分页行为，其余使用默认的轮播行为。
type StateIconSystem struct {
	entityManager *ecs.EntityManager
	layout        *config.StateIconLayout
	base          StateIconBehavior
}

// NewStateIconSystem 创建状态图标系统
func NewStateIconSystem(em *ecs.EntityManager, layout *config.StateIconLayout) *StateIconSystem {
	return &StateIconSystem{
		entityManager: em,
		layout:        layout,
		base:          BaseStateIconBehavior{},
	}
}

// Update 推进一帧
// deltaTime 不参与计算，切换节奏以帧为单位
func (s *StateIconSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.StateIconComponent](s.entityManager)

	for _, id := range entities {
		icon, ok := ecs.GetComponent[*components.StateIconComponent](s.entityManager, id)
		if !ok {
			continue
		}

		icon.AnimationCount++
		if icon.AnimationCount >= s.AnimationWaitFor(id) {
			s.BehaviorFor(id).UpdateIcon(icon, s.DisplayIcons(icon.Battler))
			icon.AnimationCount = 0
		}
	}
}

// AnimationWaitFor 返回实体的切换间隔：格子为 ChangeSpan，单图标为默认间隔
func (s *StateIconSystem) AnimationWaitFor(id ecs.EntityID) int {
	if ecs.HasComponent[*components.PagedStateIconComponent](s.entityManager, id) {
		return s.layout.ChangeSpan
	}
	return s.base.AnimationWait()
}

// BehaviorFor 返回实体对应的切换行为
// 只在需要切换时调用
func (s *StateIconSystem) BehaviorFor(id ecs.EntityID) StateIconBehavior {
	if paging, ok := ecs.GetComponent[*components.PagedStateIconComponent](s.entityManager, id); ok {
		return &PagedStateIconBehavior{
			Base:   s.base,
			Layout: s.layout,
			Paging: paging,
		}
	}
	return s.base
}

// DisplayIcons 返回角色当前应显示的图标列表
// 我方角色总是显示；敌人只在存活时显示
func (s *StateIconSystem) DisplayIcons(battlerID ecs.EntityID) []int {
	battler, ok := ecs.GetComponent[*components.BattlerComponent](s.entityManager, battlerID)
	if !ok {
		return nil
	}
	if !battler.IsActor && !battler.IsAlive() {
		return nil
	}
	return battler.AllIcons()
}
