package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/stateicons/pkg/app"
	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "显示详细日志")
	layoutFlag  = flag.String("layout", app.DefaultLayoutPath, "状态图标布局文件（嵌入资源路径）")
	battleFlag  = flag.String("battle", app.DefaultBattlePath, "演示战斗文件（嵌入资源路径）")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		LayoutPath: *layoutFlag,
		BattlePath: *battleFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("State Icons - 战斗状态图标排列")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
