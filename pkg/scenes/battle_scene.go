package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/ecs"
	"github.com/gonewx/stateicons/pkg/entities"
	"github.com/gonewx/stateicons/pkg/game"
	"github.com/gonewx/stateicons/pkg/modules"
	"github.com/gonewx/stateicons/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BattleScene 战斗场景
// 创建参战角色和状态窗口，每帧推进战斗事件与状态图标
type BattleScene struct {
	entityManager *ecs.EntityManager
	battle        *config.BattleDemoConfig
	layout        *config.StateIconLayout

	actors []ecs.EntityID // 按队伍顺序

	eventSystem     *systems.BattleEventSystem
	stateIconSystem *systems.StateIconSystem
	statusModule    *modules.BattleStatusModule

	paused   bool
	disposed bool
}

// NewBattleScene 加载战斗配置并创建战斗场景
func NewBattleScene(rm *game.ResourceManager, layout *config.StateIconLayout, battlePath string) (*BattleScene, error) {
	battle, err := config.LoadBattleDemo(battlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load battle: %w", err)
	}
	return NewBattleSceneFromConfig(battle, layout, rm.LoadIconSet()), nil
}

// NewBattleSceneFromConfig 用已加载的配置创建战斗场景
// iconSet 可为 nil（不绘制图标）
func NewBattleSceneFromConfig(battle *config.BattleDemoConfig, layout *config.StateIconLayout, iconSet *ebiten.Image) *BattleScene {
	em := ecs.NewEntityManager()

	actors := make([]ecs.EntityID, 0, len(battle.Actors))
	actorIndex := make(map[int]ecs.EntityID, len(battle.Actors))
	for _, def := range battle.Actors {
		id := entities.NewBattler(em, def, battle)
		actors = append(actors, id)
		actorIndex[def.ID] = id
	}
	if len(actors) > config.BattleStatusMaxColumns {
		log.Printf("[BattleScene] Warning: %d actors, only the first %d fit in the status window", len(actors), config.BattleStatusMaxColumns)
		actors = actors[:config.BattleStatusMaxColumns]
	}

	s := &BattleScene{
		entityManager:   em,
		battle:          battle,
		layout:          layout,
		actors:          actors,
		eventSystem:     systems.NewBattleEventSystem(em, battle, actorIndex),
		stateIconSystem: systems.NewStateIconSystem(em, layout),
		statusModule:    modules.NewBattleStatusModule(em, layout, iconSet, actors),
	}

	log.Printf("[BattleScene] Battle started: %d actors, %d events, grid %dx%d (%s/%s/%s), change span %d",
		len(actors), len(battle.Events), layout.RowMax, layout.ColumnMax,
		layout.RowAlign, layout.ColumnAlign, layout.IconsAlign, layout.ChangeSpan)
	return s
}

// Update 推进一帧
func (s *BattleScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	if !s.paused {
		s.eventSystem.Update(deltaTime)
	}
	s.stateIconSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制战斗画面
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 56, B: 72, A: 255})
	if s.disposed {
		return
	}

	status := "running"
	if s.paused {
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d (%s)  [Space] pause  [F11] fullscreen",
		s.eventSystem.CurrentTick(), status), 12, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("grid %dx%d  rows %s  columns %s  fill %s  change span %d",
		s.layout.RowMax, s.layout.ColumnMax, s.layout.RowAlign, s.layout.ColumnAlign, s.layout.IconsAlign, s.layout.ChangeSpan), 12, 32)

	s.statusModule.Draw(screen)
}

// TogglePause 暂停/继续战斗时间线（状态图标仍然翻页）
func (s *BattleScene) TogglePause() {
	s.paused = !s.paused
	log.Printf("[BattleScene] paused=%v", s.paused)
}

// IsPaused 返回时间线是否暂停
func (s *BattleScene) IsPaused() bool {
	return s.paused
}

// EntityManager 返回场景的实体管理器
func (s *BattleScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// StatusModule 返回状态窗口
func (s *BattleScene) StatusModule() *modules.BattleStatusModule {
	return s.statusModule
}

// Actors 返回按队伍顺序排列的角色实体
func (s *BattleScene) Actors() []ecs.EntityID {
	return s.actors
}

// Dispose 实现 game.Disposable：销毁状态窗口的全部精灵
func (s *BattleScene) Dispose() {
	if s.disposed {
		return
	}
	s.statusModule.Cleanup()
	s.entityManager.RemoveMarkedEntities()
	s.disposed = true
	log.Printf("[BattleScene] Disposed")
}
