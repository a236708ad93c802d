package systems

import (
	"log"

	"github.com/decker502/pinball/pkg/collision"
	"github.com/decker502/pinball/pkg/components"
	"github.com/decker502/pinball/pkg/ecs"
)

// BoxCollisionSystem 矩形演示的碰撞系统
// 每帧推进运动矩形和静态矩形，处理屏幕边界反弹，
// 再检测两者是否重叠并判定撞到的面
type BoxCollisionSystem struct {
	em       *ecs.EntityManager
	resolver *collision.Resolver
	bounds   collision.Bounds

	lastResult collision.TickResult
	hits       map[collision.Side]int
}

// NewBoxCollisionSystem 创建矩形碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - resolver: 碰撞面判定器
//   - bounds: 屏幕边界
//
// 返回:
//   - *BoxCollisionSystem: 系统实例
func NewBoxCollisionSystem(em *ecs.EntityManager, resolver *collision.Resolver, bounds collision.Bounds) *BoxCollisionSystem {
	return &BoxCollisionSystem{
		em:       em,
		resolver: resolver,
		bounds:   bounds,
		hits:     make(map[collision.Side]int),
	}
}

// boxEntity 一个矩形实体的组件引用
type boxEntity struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	vel *components.VelocityComponent
	col *components.CollisionComponent
}

// findBoxes 查找第一个运动矩形和第一个静态矩形
func (s *BoxCollisionSystem) findBoxes() (moving, static *boxEntity) {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CollisionComponent,
	](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		box := &boxEntity{id: id, pos: pos, vel: vel, col: col}

		switch col.Kind {
		case components.BoxMoving:
			if moving == nil {
				moving = box
			}
		case components.BoxStatic:
			if static == nil {
				static = box
			}
		}
	}
	return moving, static
}

// Update 推进一帧
//
// 参数:
//   - deltaTime: 本系统按帧推进，不使用
func (s *BoxCollisionSystem) Update(deltaTime float64) {
	moving, static := s.findBoxes()
	if moving == nil || static == nil {
		return
	}

	world := collision.NewWorld(
		collision.MovingRect{
			Rect: collision.Rect{X: moving.pos.X, Y: moving.pos.Y, Width: moving.col.Width, Height: moving.col.Height},
			VX:   moving.vel.VX,
			VY:   moving.vel.VY,
		},
		collision.StaticRect{
			Rect: collision.Rect{X: static.pos.X, Y: static.pos.Y, Width: static.col.Width, Height: static.col.Height},
			VY:   static.vel.VY,
		},
		s.bounds,
		s.resolver,
	)

	result := world.Tick()

	// 写回组件
	moving.pos.X, moving.pos.Y = world.Moving.X, world.Moving.Y
	moving.vel.VX, moving.vel.VY = world.Moving.VX, world.Moving.VY
	static.pos.Y = world.Static.Y
	static.vel.VY = world.Static.VY

	if clr, ok := ecs.GetComponent[*components.ColorComponent](s.em, moving.id); ok {
		clr.Overlapping = result.Overlapping
	}

	if result.Side != collision.SideNone {
		s.hits[result.Side]++
		log.Printf("[BoxCollisionSystem] Hit %s side of static box", result.Side)
	}
	s.lastResult = result
}

// LastResult 返回上一帧的碰撞结果
func (s *BoxCollisionSystem) LastResult() collision.TickResult {
	return s.lastResult
}

// HitCount 返回某个面累计被撞的次数
func (s *BoxCollisionSystem) HitCount(side collision.Side) int {
	return s.hits[side]
}
