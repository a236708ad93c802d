package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pinball/pkg/app"
	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/embedded"
	"github.com/decker502/pinball/pkg/game"
	"github.com/decker502/pinball/pkg/table"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	tableName := flag.String("table", "", fmt.Sprintf("弹球桌布局 (%s)，默认使用上次的选择", strings.Join(table.Names(), ", ")))
	sceneName := flag.String("scene", "", fmt.Sprintf("启动场景 (%s)，默认使用上次的选择", strings.Join(game.SceneNames(), ", ")))
	physicsPath := flag.String("physics", "", "物理参数 YAML 文件，默认使用内嵌的 data/physics.yaml")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Table:       *tableName,
		Scene:       *sceneName,
		PhysicsPath: *physicsPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Pinball")
	ebiten.SetTPS(config.TargetFPS)

	// Escape 和关闭窗口都会让 RunGame 正常返回
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] %v", err)
	}
}
