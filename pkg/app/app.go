// Package app 提供弹球程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/embedded"
	"github.com/decker502/pinball/pkg/game"
	"github.com/decker502/pinball/pkg/scenes"
	"github.com/decker502/pinball/pkg/table"
)

// AppName gdata 存储目录名
const AppName = "pinball"

// embeddedPhysicsPath 内嵌的默认物理参数文件
const embeddedPhysicsPath = "data/physics.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Table 弹球桌布局名称，为空则使用上次保存的设置
	Table string
	// Scene 启动场景（"pinball" 或 "boxes"），为空则使用上次保存的设置
	Scene string
	// PhysicsPath 物理参数 YAML 文件路径，为空则使用内嵌的 data/physics.yaml
	PhysicsPath string
}

// hotkeys 一帧内应用级别的按键
type hotkeys struct {
	quit             bool
	toggleScene      bool
	toggleFullscreen bool
	toggleFPS        bool
}

func readHotkeys() hotkeys {
	return hotkeys{
		quit:             inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		toggleScene:      inpututil.IsKeyJustPressed(ebiten.KeyTab),
		toggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		toggleFPS:        inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
}

// App 是弹球程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	physics         config.PhysicsConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	readHotkeys func() hotkeys
}

// NewApp 创建并初始化应用
//
// 使用内嵌物理参数时，调用此函数前必须先调用 embedded.Init()。
//
// 参数:
//   - cfg: 启动配置，非空字段覆盖保存的设置
//
// 返回:
//   - *App: 应用实例
//   - error: 参数无效或启动场景创建失败时返回错误
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	physicsCfg, err := loadPhysics(cfg.PhysicsPath)
	if err != nil {
		return nil, fmt.Errorf("物理参数加载失败: %w", err)
	}

	// gdata 打开失败时进入降级模式，设置只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	// 命令行指定的名称无效时直接报错，避免写入存档
	if cfg.Table != "" && !slices.Contains(table.Names(), cfg.Table) {
		return nil, fmt.Errorf("未知的弹球桌布局 %q (可用: %v)", cfg.Table, table.Names())
	}
	if cfg.Scene != "" && !slices.Contains(game.SceneNames(), cfg.Scene) {
		return nil, fmt.Errorf("未知的场景 %q (可用: %v)", cfg.Scene, game.SceneNames())
	}

	settings := settingsManager.GetSettings()
	if cfg.Table != "" {
		settingsManager.SetTable(cfg.Table)
	}
	if cfg.Scene != "" {
		settingsManager.SetScene(cfg.Scene)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.Factory(physicsCfg, settings.Table))
	if err := sceneManager.LoadScene(settings.Scene); err != nil {
		return nil, fmt.Errorf("启动场景创建失败: %w", err)
	}
	log.Printf("[App] Starting scene %q with table %q", settings.Scene, settings.Table)

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		physics:         physicsCfg,
		verbose:         cfg.Verbose,
		readHotkeys:     readHotkeys,
	}, nil
}

// loadPhysics 读取物理参数：指定路径优先，其次内嵌文件，最后使用默认值
func loadPhysics(path string) (config.PhysicsConfig, error) {
	if path != "" {
		return config.LoadPhysicsConfig(path)
	}
	if !embedded.Exists(embeddedPhysicsPath) {
		log.Printf("[App] %s not embedded, using default physics", embeddedPhysicsPath)
		return config.DefaultPhysicsConfig(), nil
	}
	data, err := embedded.ReadFile(embeddedPhysicsPath)
	if err != nil {
		return config.PhysicsConfig{}, err
	}
	return config.ParsePhysicsConfig(data)
}

// Update 更新游戏逻辑
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

	keys := a.readHotkeys()
	if keys.quit {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	if keys.toggleFullscreen {
		a.toggleFullscreen()
	}

	if keys.toggleFPS {
		settings := a.settingsManager.GetSettings()
		a.settingsManager.SetShowFPS(!settings.ShowFPS)
	}

	if keys.toggleScene {
		name, err := a.sceneManager.Toggle()
		if err != nil {
			log.Printf("[App] Failed to switch scene: %v", err)
		} else {
			a.settingsManager.SetScene(name)
		}
	}

	a.sceneManager.Update(config.StepDuration())
	return nil
}

// toggleFullscreen F11 切换全屏
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.settingsManager.GetSettings().ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 保存设置，在游戏循环结束后调用
func (a *App) Close() error {
	if err := a.settingsManager.Save(); err != nil {
		return fmt.Errorf("设置保存失败: %w", err)
	}
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Settings 返回当前设置
func (a *App) Settings() *game.GameSettings {
	return a.settingsManager.GetSettings()
}

// Physics 返回启动时加载的物理参数
func (a *App) Physics() config.PhysicsConfig {
	return a.physics
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
