package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/physics"
	"github.com/decker502/pinball/pkg/systems"
	"github.com/decker502/pinball/pkg/table"
	"github.com/decker502/pinball/pkg/utils"
)

// InputState 一帧内与弹球桌有关的输入
type InputState struct {
	FlipLeft        bool
	FlipRight       bool
	LoadLauncher    bool
	ReleaseLauncher bool
	NewBall         bool

	// Drop 为 true 时在 DropAt 投放一颗球
	Drop   bool
	DropAt table.Vec
}

// readInput 从 ebiten 读取本帧输入
func readInput() InputState {
	in := InputState{
		FlipLeft:        inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		FlipRight:       inpututil.IsKeyJustPressed(ebiten.KeyRight),
		LoadLauncher:    inpututil.IsKeyJustPressed(ebiten.KeyDown),
		ReleaseLauncher: inpututil.IsKeyJustReleased(ebiten.KeyDown),
		NewBall:         inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		in.Drop = true
		in.DropAt = table.Vec{X: float64(x), Y: float64(y)}
	}
	return in
}

// PinballScene 弹球桌场景
type PinballScene struct {
	tableName string
	layout    table.MapGenerator
	engine    *physics.Engine
	renderer  *systems.TableRenderSystem

	// readInput 可在测试中替换
	readInput func() InputState
}

// NewPinballScene 创建弹球桌场景
//
// 参数:
//   - cfg: 物理参数
//   - tableName: 布局名称，见 table.Names()
//
// 返回:
//   - *PinballScene: 场景实例
//   - error: 布局名称未知时返回错误
func NewPinballScene(cfg config.PhysicsConfig, tableName string) (*PinballScene, error) {
	layout, err := table.New(tableName, config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create pinball table: %w", err)
	}

	engine := physics.NewEngine(cfg, layout, float64(config.GameWindowWidth), float64(config.GameWindowHeight))
	log.Printf("[PinballScene] Table %q ready, ball spawn at (%.0f, %.0f)", tableName, engine.Spawn().X, engine.Spawn().Y)

	return &PinballScene{
		tableName: tableName,
		layout:    layout,
		engine:    engine,
		renderer:  systems.NewTableRenderSystem(layout, engine),
		readInput: readInput,
	}, nil
}

// Engine 返回场景使用的物理引擎
func (s *PinballScene) Engine() *physics.Engine {
	return s.engine
}

// TableName 返回布局名称
func (s *PinballScene) TableName() string {
	return s.tableName
}

// applyInput 把输入转换为引擎操作
func (s *PinballScene) applyInput(in InputState) {
	if in.FlipRight {
		s.engine.FlipRight()
	}
	if in.FlipLeft {
		s.engine.FlipLeft()
	}
	if in.LoadLauncher {
		s.engine.LoadLauncher()
	}
	if in.ReleaseLauncher {
		s.engine.ReleaseLauncher()
	}
	if in.NewBall {
		if !s.engine.NewBall() {
			log.Printf("[PinballScene] Ball already in play, ignoring new ball")
		}
	}
	if in.Drop {
		s.engine.NewBallAt(in.DropAt)
	}
}

// Update 处理输入并推进物理模拟
func (s *PinballScene) Update(deltaTime float64) {
	s.applyInput(s.readInput())
	s.engine.Step(deltaTime)
}

// Draw 绘制弹球桌
func (s *PinballScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}
