package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/pinball/pkg/collision"
	"github.com/decker502/pinball/pkg/components"
	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/ecs"
	"github.com/decker502/pinball/pkg/systems"
)

// BoxesScene 两个矩形的碰撞演示
//
// 红色矩形在屏幕内斜向运动并在边界反弹，蓝色矩形只做竖直往返。
// 两者重叠时红色矩形高亮，并按撞到的面反转速度。
type BoxesScene struct {
	em        *ecs.EntityManager
	collision *systems.BoxCollisionSystem
	renderer  *systems.BoxRenderSystem

	movingID ecs.EntityID
	staticID ecs.EntityID
}

// NewBoxesScene 创建矩形碰撞演示场景
//
// 参数:
//   - cfg: 物理参数，只使用其中的碰撞容差
//
// 返回:
//   - *BoxesScene: 场景实例
//   - error: 碰撞容差无效时返回错误
func NewBoxesScene(cfg config.PhysicsConfig) (*BoxesScene, error) {
	resolver, err := collision.NewResolver(cfg.CollisionConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create collision resolver: %w", err)
	}

	em := ecs.NewEntityManager()
	bounds := collision.Bounds{
		Width:  float64(config.GameWindowWidth),
		Height: float64(config.GameWindowHeight),
	}

	s := &BoxesScene{
		em:        em,
		collision: systems.NewBoxCollisionSystem(em, resolver, bounds),
		renderer:  systems.NewBoxRenderSystem(em),
	}

	// 静态矩形先创建，绘制时被运动矩形覆盖
	s.staticID = s.addBox(components.BoxStatic,
		config.StaticBoxStartX, config.StaticBoxStartY, 0, config.StaticBoxSpeedY,
		config.StaticBoxColor, config.StaticBoxColor)
	s.movingID = s.addBox(components.BoxMoving,
		config.MovingBoxStartX, config.MovingBoxStartY, config.MovingBoxSpeedX, config.MovingBoxSpeedY,
		config.MovingBoxColor, config.MovingBoxHitColor)

	return s, nil
}

func (s *BoxesScene) addBox(kind components.BoxKind, x, y, vx, vy float64, fill, highlight color.RGBA) ecs.EntityID {
	id := s.em.CreateEntity()
	ecs.AddComponent(s.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(s.em, id, &components.CollisionComponent{
		Width:  config.BoxSize,
		Height: config.BoxSize,
		Kind:   kind,
	})
	ecs.AddComponent(s.em, id, &components.ColorComponent{Fill: fill, Highlight: highlight})
	return id
}

// Update 推进一帧
func (s *BoxesScene) Update(deltaTime float64) {
	s.collision.Update(deltaTime)
}

// Draw 绘制两个矩形和最近一次的碰撞信息
func (s *BoxesScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BoxesBackgroundColor)
	s.renderer.Draw(screen)

	res := s.collision.LastResult()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("overlapping: %v  side: %s", res.Overlapping, res.Side),
		8, config.GameWindowHeight-20)
}
