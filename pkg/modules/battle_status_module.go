package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/stateicons/pkg/components"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/entities"
	"github.com/gonewx/stateicons/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ItemRect 角色栏矩形
type ItemRect struct {
	X, Y, Width, Height float64
}

// BattleStatusModule 战斗状态窗口
// 封装画面底部的状态窗口：
//   - 每名角色一栏，显示名字与 HP
//   - 在每栏的状态图标位置放置状态图标网格
//   - 绘制窗口背景与全部状态图标
//
// 窗口通过键注册附加精灵，Refresh 可以重复调用，已有精灵会被复用。
type BattleStatusModule struct {
	entityManager *ecs.EntityManager
	layout        *config.StateIconLayout
	registry      entities.SpriteRegistry

	// 按队伍顺序排列的角色实体
	actors []ecs.EntityID

	renderSystem *systems.StateIconRenderSystem
}

// NewBattleStatusModule 创建战斗状态窗口并放置全部角色的状态图标
//
// 参数:
//   - em: EntityManager 实例
//   - layout: 状态图标网格布局
//   - iconSet: 图标表（可为 nil，此时不绘制图标）
//   - actors: 按队伍顺序排列的角色实体
func NewBattleStatusModule(em *ecs.EntityManager, layout *config.StateIconLayout, iconSet *ebiten.Image, actors []ecs.EntityID) *BattleStatusModule {
	m := &BattleStatusModule{
		entityManager: em,
		layout:        layout,
		registry:      entities.NewSpriteRegistry(),
		actors:        actors,
		renderSystem:  systems.NewStateIconRenderSystem(em, iconSet),
	}
	m.Refresh()
	log.Printf("[BattleStatusModule] Initialized with %d actors, %d sprites", len(actors), len(m.registry))
	return m
}

// ItemRect 返回第 index 名角色的栏位矩形（已扣除内边距）
func (m *BattleStatusModule) ItemRect(index int) ItemRect {
	innerX := config.BattleStatusWindowX + config.BattleStatusWindowPadding
	innerY := config.BattleStatusWindowY + config.BattleStatusWindowPadding
	innerW := config.BattleStatusWindowWidth - config.BattleStatusWindowPadding*2
	innerH := config.BattleStatusWindowHeight - config.BattleStatusWindowPadding*2

	itemW := innerW / config.BattleStatusMaxColumns
	return ItemRect{
		X:      innerX + itemW*float64(index) + config.BattleStatusItemPadding/2,
		Y:      innerY,
		Width:  itemW - config.BattleStatusItemPadding,
		Height: innerH,
	}
}

// StateIconAnchor 返回第 index 名角色的状态图标锚点
func (m *BattleStatusModule) StateIconAnchor(index int) (float64, float64) {
	rect := m.ItemRect(index)
	return config.StateIconAnchorX(rect.X, rect.Width), config.StateIconAnchorY(rect.Y)
}

// Refresh 重新放置全部角色的状态图标
func (m *BattleStatusModule) Refresh() {
	for index, actorID := range m.actors {
		battler, ok := ecs.GetComponent[*components.BattlerComponent](m.entityManager, actorID)
		if !ok {
			continue
		}
		x, y := m.StateIconAnchor(index)
		entities.PlaceStateIconGrid(m.entityManager, m.registry, actorID, battler.ActorID, x, y, m.layout)
	}
}

// Registry 返回窗口的附加精灵注册表
func (m *BattleStatusModule) Registry() entities.SpriteRegistry {
	return m.registry
}

// Draw 绘制窗口、角色信息和状态图标
func (m *BattleStatusModule) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(config.BattleStatusWindowX), float32(config.BattleStatusWindowY),
		float32(config.BattleStatusWindowWidth), float32(config.BattleStatusWindowHeight),
		color.RGBA{R: 16, G: 24, B: 48, A: 220}, false)
	vector.StrokeRect(screen,
		float32(config.BattleStatusWindowX)+1, float32(config.BattleStatusWindowY)+1,
		float32(config.BattleStatusWindowWidth)-2, float32(config.BattleStatusWindowHeight)-2,
		2, color.RGBA{R: 200, G: 200, B: 220, A: 255}, false)

	for index, actorID := range m.actors {
		battler, ok := ecs.GetComponent[*components.BattlerComponent](m.entityManager, actorID)
		if !ok {
			continue
		}
		rect := m.ItemRect(index)
		ebitenutil.DebugPrintAt(screen, battler.Name, int(rect.X), int(rect.Y+rect.Height-48))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", battler.HP, battler.MaxHP), int(rect.X), int(rect.Y+rect.Height-28))
	}

	m.renderSystem.Draw(screen)
}

// Cleanup 销毁全部角色的状态图标精灵
func (m *BattleStatusModule) Cleanup() {
	for _, actorID := range m.actors {
		battler, ok := ecs.GetComponent[*components.BattlerComponent](m.entityManager, actorID)
		if !ok {
			continue
		}
		entities.DestroyStateIconGrid(m.entityManager, m.registry, battler.ActorID)
	}
	log.Printf("[BattleStatusModule] Cleaned up")
}
