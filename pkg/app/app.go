// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/game"
	"github.com/gonewx/stateicons/pkg/scenes"
	"github.com/gonewx/stateicons/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 默认配置路径
const (
	DefaultLayoutPath = "data/state_icons.yaml"
	DefaultBattlePath = "data/battle_demo.yaml"
	DefaultAppName    = "stateicons"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LayoutPath 状态图标布局文件，为空时使用 DefaultLayoutPath
	LayoutPath string
	// BattlePath 演示战斗文件，为空时使用 DefaultBattlePath
	BattlePath string
	// AppName gdata 存储使用的应用名，为空时使用 DefaultAppName
	AppName string
}

// pausable 可暂停的场景
type pausable interface {
	TogglePause()
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	layout                   *config.StateIconLayout
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	layoutPath := withDefault(cfg.LayoutPath, DefaultLayoutPath)
	battlePath := withDefault(cfg.BattlePath, DefaultBattlePath)
	appName := withDefault(cfg.AppName, DefaultAppName)

	layout, err := config.LoadStateIconLayout(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("布局配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载布局配置: %s", layoutPath)

	// 存储中的插件参数覆盖布局文件
	store, err := game.OpenParameterStore(appName)
	if err != nil {
		log.Printf("[App] Warning: %v (plugin parameters disabled)", err)
	}
	layout = store.ResolveLayout(layout)

	resourceManager := game.NewResourceManager()

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(path string) (game.Scene, error) {
		return scenes.NewBattleScene(resourceManager, layout, path)
	})

	// 启动场景创建失败时直接报错
	battleScene, err := scenes.NewBattleScene(resourceManager, layout, battlePath)
	if err != nil {
		return nil, fmt.Errorf("战斗场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(battleScene)
	log.Printf("[App] Starting battle: %s", battlePath)

	return &App{
		sceneManager: sceneManager,
		layout:       layout,
		verbose:      cfg.Verbose,
	}, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 暂停战斗时间线
	if utils.IsPauseToggled() {
		if scene, ok := a.sceneManager.GetCurrentScene().(pausable); ok {
			scene.TogglePause()
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 为黑色，缩放使用线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// StateIconLayout 返回最终生效的状态图标布局
func (a *App) StateIconLayout() *config.StateIconLayout {
	return a.layout
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
