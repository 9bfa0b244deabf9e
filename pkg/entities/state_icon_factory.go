package entities

import (
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/utils"
)

// SpriteRegistry 状态窗口中按键注册的附加精灵
// 同一个键只会创建一次实体，窗口刷新时复用
type SpriteRegistry map[string]ecs.EntityID

// NewSpriteRegistry 创建空的精灵注册表
func NewSpriteRegistry() SpriteRegistry {
	return make(SpriteRegistry)
}

// StateIconKey 返回角色单图标精灵的键
func StateIconKey(actorID int) string {
	return fmt.Sprintf("actor%d-stateIcon", actorID)
}

// StateIconSlotKey 返回角色网格第 n 个格子的键
func StateIconSlotKey(actorID, n int) string {
	return fmt.Sprintf("%s_%d", StateIconKey(actorID), n)
}

// createInnerSprite 按键取出已注册的精灵，不存在时调用 create 新建并注册
func createInnerSprite(em *ecs.EntityManager, registry SpriteRegistry, key string, create func() ecs.EntityID) ecs.EntityID {
	if id, ok := registry[key]; ok && em.Exists(id) {
		return id
	}
	id := create()
	registry[key] = id
	return id
}

// NewStateIconSprite 创建一个状态图标精灵实体（尚未绑定角色）
func NewStateIconSprite(em *ecs.EntityManager, key string) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.StateIconComponent{
		Key:     key,
		Opacity: 255,
		Visible: true,
	})
	return id
}

// setupStateIcon 绑定角色
// 绑定新角色时把计数器设为切换间隔，使下一帧立即更新图标
func setupStateIcon(icon *components.StateIconComponent, battler ecs.EntityID, wait int) {
	if icon.Battler != battler {
		icon.Battler = battler
		icon.AnimationCount = wait
	}
}

// PlaceStateIcon 在 (x, y) 放置角色的单图标精灵
func PlaceStateIcon(em *ecs.EntityManager, registry SpriteRegistry, battler ecs.EntityID, actorID int, x, y float64) ecs.EntityID {
	key := StateIconKey(actorID)
	id := createInnerSprite(em, registry, key, func() ecs.EntityID {
		return NewStateIconSprite(em, key)
	})

	icon, _ := ecs.GetComponent[*components.StateIconComponent](em, id)
	setupStateIcon(icon, battler, config.DefaultStateIconAnimationWait)
	icon.Move(x, y)
	icon.Show()
	return id
}

// PlaceStateIconGrid 在 (x, y) 周围放置角色的状态图标网格
//
// 先照常放置单图标精灵，然后把它隐藏（不销毁，状态窗口仍通过键引用它），
// 再按布局为每个格子创建一个分页精灵。重复调用时复用已有实体。
//
// 返回:
//   - 按格子编号排列的精灵实体
func PlaceStateIconGrid(em *ecs.EntityManager, registry SpriteRegistry, battler ecs.EntityID, actorID int, x, y float64, layout *config.StateIconLayout) []ecs.EntityID {
	baseID := PlaceStateIcon(em, registry, battler, actorID, x, y)
	if base, ok := ecs.GetComponent[*components.StateIconComponent](em, baseID); ok {
		base.Hide()
		base.Opacity = 0
	}

	slots := utils.CalculateStateIconSlots(x, y, layout, config.IconWidth, config.IconHeight)
	children := make([]ecs.EntityID, 0, len(slots))

	for _, slot := range slots {
		key := StateIconSlotKey(actorID, len(children))
		id := createInnerSprite(em, registry, key, func() ecs.EntityID {
			spriteID := NewStateIconSprite(em, key)
			em.AddComponent(spriteID, &components.PagedStateIconComponent{})
			return spriteID
		})

		icon, _ := ecs.GetComponent[*components.StateIconComponent](em, id)
		setupStateIcon(icon, battler, layout.ChangeSpan)
		icon.Move(slot.X, slot.Y)
		icon.Show()

		if paging, ok := ecs.GetComponent[*components.PagedStateIconComponent](em, id); ok {
			paging.SlotIndex = slot.Index
		}
		children = append(children, id)
	}

	return children
}

// DestroyStateIconGrid 销毁角色的单图标精灵和全部格子
// 返回销毁的实体数量
func DestroyStateIconGrid(em *ecs.EntityManager, registry SpriteRegistry, actorID int) int {
	prefix := StateIconKey(actorID)
	count := 0
	for key, id := range registry {
		if key != prefix && !strings.HasPrefix(key, prefix+"_") {
			continue
		}
		em.DestroyEntity(id)
		delete(registry, key)
		count++
	}
	if count > 0 {
		log.Printf("[StateIconFactory] Destroyed %d state icon sprites of actor %d", count, actorID)
	}
	return count
}
