package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按战斗配置路径创建战斗场景，避免循环依赖
type SceneFactory func(battlePath string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(Disposable); ok && sm.currentScene != scene {
		old.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadBattle 加载指定的战斗场景
// battlePath: 战斗配置路径，如 "data/battle_demo.yaml"
func (sm *SceneManager) LoadBattle(battlePath string) {
	log.Printf("[SceneManager] 加载战斗: %s", battlePath)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene, err := sm.sceneFactory(battlePath)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建战斗场景 %s: %v", battlePath, err)
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 成功切换到战斗: %s", battlePath)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
