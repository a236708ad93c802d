// Package physics 把弹球桌布局和动态物体交给 Chipmunk (jakecoffman/cp) 模拟
//
// 本包不实现任何刚体动力学：重力、接触解算、关节和弹簧全部由 cp.Space 负责。
// 这里只负责创建物体、按键时施加冲量，以及每帧推进模拟。
package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/table"
)

// flipperGroup 两个挡板属于同一碰撞组，互相不碰撞
const flipperGroup uint = 1

// ball 场景中的一颗球
type ball struct {
	body  *cp.Body
	shape *cp.Shape
}

// flipper 挡板刚体及其局部顶点（用于绘制）
type flipper struct {
	body     *cp.Body
	vertices []cp.Vector
}

// launcher 发射器：两块平板 + 阻尼弹簧
type launcher struct {
	top    *cp.Body
	lower  *cp.Body
	spring *cp.DampedSpring
	plate  []cp.Vector
}

// Engine 弹球物理引擎
// 单线程使用，只能在游戏循环中调用
type Engine struct {
	cfg          config.PhysicsConfig
	space        *cp.Space
	screenWidth  float64
	screenHeight float64

	spawn        table.Vec
	hasLauncher  bool
	leftFlipper  flipper
	rightFlipper flipper
	launcher     *launcher

	// launched 通过发射通道发出的球（同时最多一颗）
	launched *ball
	// dropped 鼠标点击投放的球（数量不限）
	dropped []*ball
}

// NewEngine 创建物理引擎并搭建整张弹球桌
//
// 参数:
//   - cfg: 物理参数
//   - gen: 弹球桌布局
//   - screenWidth, screenHeight: 屏幕尺寸，用于判断球是否出界
//
// 返回:
//   - *Engine: 引擎实例
func NewEngine(cfg config.PhysicsConfig, gen table.MapGenerator, screenWidth, screenHeight float64) *Engine {
	space := cp.NewSpace()
	space.SetGravity(toCP(cfg.Gravity))

	e := &Engine{
		cfg:          cfg,
		space:        space,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}

	e.buildTable(gen)
	e.createFlippers(gen.FlipperAnchors())

	if spawner, ok := gen.(table.BallSpawner); ok {
		e.spawn = spawner.BallSpawn()
		e.hasLauncher = true
		e.createLauncher()
	} else {
		// 没有发射通道的布局：球从顶部中间落下
		e.spawn = table.Vec{X: screenWidth / 2, Y: cfg.Ball.SpawnLift + cfg.Ball.Radius*2}
	}

	log.Printf("[Physics] Table ready: %d segments, %d polygons, %d round bumpers, launcher=%v",
		len(gen.Segments()), len(gen.Polygons()), len(gen.Balls()), e.hasLauncher)

	return e
}

// buildTable 把布局中的线段、多边形和圆形加入空间，全部是静态形状
func (e *Engine) buildTable(gen table.MapGenerator) {
	for _, seg := range gen.Segments() {
		shape := cp.NewSegment(e.space.StaticBody, toVector(seg.A), toVector(seg.B), e.cfg.Segment.Thickness)
		shape.SetFriction(e.cfg.Segment.Friction)
		shape.SetElasticity(e.cfg.Segment.Elasticity)
		e.space.AddShape(shape)
	}

	for _, poly := range gen.Polygons() {
		body := cp.NewStaticBody()
		body.SetPosition(toVector(poly.Position))
		verts := toVectors(poly.Vertices)
		shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		shape.SetElasticity(e.cfg.StaticPoly.Elasticity)
		shape.SetFriction(e.cfg.StaticPoly.Friction)
		e.space.AddBody(body)
		e.space.AddShape(shape)
	}

	for _, circle := range gen.Balls() {
		body := cp.NewStaticBody()
		body.SetPosition(toVector(circle.Center))
		shape := cp.NewCircle(body, circle.Radius, cp.Vector{})
		shape.SetElasticity(e.cfg.StaticBall.Elasticity)
		shape.SetFriction(e.cfg.StaticBall.Friction)
		e.space.AddBody(body)
		e.space.AddShape(shape)
	}
}

// createFlippers 创建左右挡板
// 右挡板位于 anchors[1] + AnchorOffset，左挡板位于 anchors[0] 的镜像偏移处
func (e *Engine) createFlippers(anchors [2]table.Vec) {
	offset := e.cfg.Flipper.AnchorOffset

	rightPos := anchors[1].Add(table.Vec{X: offset.X, Y: offset.Y})
	leftPos := anchors[0].Add(table.Vec{X: -offset.X, Y: offset.Y})

	e.rightFlipper = e.createFlipper(rightPos, toCPSlice(e.cfg.Flipper.Polygon))
	e.leftFlipper = e.createFlipper(leftPos, toCPSlice(e.cfg.MirroredFlipperPolygon()))
}

// createFlipper 创建一个挡板
//
// 挡板是动态刚体，用销关节固定在一个运动学刚体上，
// 再用阻尼旋转弹簧把它拉回静止角度。
func (e *Engine) createFlipper(pos table.Vec, verts []cp.Vector) flipper {
	fc := e.cfg.Flipper
	moment := cp.MomentForPoly(fc.Mass, len(verts), verts, cp.Vector{}, 0)

	body := cp.NewBody(fc.Mass, moment)
	body.SetPosition(toVector(pos))
	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	shape.SetElasticity(fc.Elasticity)
	shape.SetFriction(fc.Friction)
	shape.SetFilter(cp.NewShapeFilter(flipperGroup, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	e.space.AddBody(body)
	e.space.AddShape(shape)

	pivot := cp.NewKinematicBody()
	pivot.SetPosition(toVector(pos))
	e.space.AddBody(pivot)

	e.space.AddConstraint(cp.NewPinJoint(body, pivot, cp.Vector{}, cp.Vector{}))
	e.space.AddConstraint(cp.NewDampedRotarySpring(body, pivot, fc.RestAngle, fc.Stiffness, fc.Damping))

	return flipper{body: body, vertices: verts}
}

// createLauncher 在发球点下方创建发射器
func (e *Engine) createLauncher() {
	lc := e.cfg.Launcher
	w, h := lc.PlateWidth/2, lc.PlateHeight/2
	plate := []cp.Vector{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}

	top := e.addPlate(lc.TopMass, plate, table.Vec{X: e.spawn.X, Y: e.spawn.Y + lc.TopOffset})
	lower := e.addPlate(lc.LowerMass, plate, table.Vec{X: e.spawn.X, Y: e.spawn.Y + lc.LowerOffset})

	constraint := e.space.AddConstraint(cp.NewDampedSpring(top, lower, cp.Vector{}, cp.Vector{},
		lc.RestLength, lc.Stiffness, lc.Damping))

	e.launcher = &launcher{
		top:    top,
		lower:  lower,
		spring: constraint.Class.(*cp.DampedSpring),
		plate:  plate,
	}
}

func (e *Engine) addPlate(mass float64, verts []cp.Vector, pos table.Vec) *cp.Body {
	body := cp.NewBody(mass, cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0))
	body.SetPosition(toVector(pos))
	shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	e.space.AddBody(body)
	e.space.AddShape(shape)
	return body
}

// NewBall 在发射通道中放一颗球
//
// 同时只允许一颗发射的球；已有球时不做任何事。
//
// 返回:
//   - bool: 是否创建了新球
func (e *Engine) NewBall() bool {
	if e.HasBall() {
		return false
	}
	pos := table.Vec{X: e.spawn.X, Y: e.spawn.Y - e.cfg.Ball.SpawnLift}
	e.launched = e.addBall(pos)
	log.Printf("[Physics] New ball at (%.0f, %.0f)", pos.X, pos.Y)
	return true
}

// NewBallAt 在指定位置投放一颗球（鼠标点击），数量不限
func (e *Engine) NewBallAt(pos table.Vec) {
	e.dropped = append(e.dropped, e.addBall(pos))
}

func (e *Engine) addBall(pos table.Vec) *ball {
	bc := e.cfg.Ball
	body := cp.NewBody(bc.Mass, cp.MomentForCircle(bc.Mass, 0, bc.Radius, cp.Vector{}))
	body.SetPosition(toVector(pos))
	shape := cp.NewCircle(body, bc.Radius, cp.Vector{})
	shape.SetElasticity(bc.Elasticity)
	shape.SetFriction(bc.Friction)
	e.space.AddBody(body)
	e.space.AddShape(shape)
	return &ball{body: body, shape: shape}
}

func (e *Engine) removeBall(b *ball) {
	e.space.RemoveShape(b.shape)
	e.space.RemoveBody(b.body)
}

// HasBall 发射通道的球是否还在场上
func (e *Engine) HasBall() bool {
	return e.launched != nil
}

// BallCount 场上所有球的数量
func (e *Engine) BallCount() int {
	n := len(e.dropped)
	if e.launched != nil {
		n++
	}
	return n
}

// LoadLauncher 压缩发射器：弹簧刚度减半，上板在重力作用下下沉
func (e *Engine) LoadLauncher() {
	if e.launcher == nil {
		return
	}
	e.launcher.spring.Stiffness = e.launcher.spring.Stiffness / 2
	e.wakeLauncher()
}

// ReleaseLauncher 释放发射器：弹簧刚度恢复，把上板和球弹出去
func (e *Engine) ReleaseLauncher() {
	if e.launcher == nil {
		return
	}
	e.launcher.spring.Stiffness = e.cfg.Launcher.Stiffness
	e.wakeLauncher()
}

// LauncherStiffness 当前发射器弹簧刚度，没有发射器时返回 0
func (e *Engine) LauncherStiffness() float64 {
	if e.launcher == nil {
		return 0
	}
	return e.launcher.spring.Stiffness
}

// wakeLauncher 修改弹簧参数后唤醒两块平板，否则休眠的刚体不会响应
func (e *Engine) wakeLauncher() {
	e.launcher.top.Activate()
	e.launcher.lower.Activate()
}

// FlipRight 右挡板向上击打
func (e *Engine) FlipRight() {
	e.flip(e.rightFlipper, -e.cfg.Flipper.Impulse)
}

// FlipLeft 左挡板向上击打
func (e *Engine) FlipLeft() {
	e.flip(e.leftFlipper, e.cfg.Flipper.Impulse)
}

func (e *Engine) flip(f flipper, impulse float64) {
	f.body.ApplyImpulseAtLocalPoint(cp.Vector{X: 0, Y: impulse}, toCP(e.cfg.Flipper.ImpulsePoint))
}

// Step 推进一帧模拟
//
// 之后限制球速，并移除已经离开屏幕的球。
//
// 参数:
//   - dt: 步长（秒），通常为 1/60
func (e *Engine) Step(dt float64) {
	e.space.Step(dt)

	e.forEachBall(func(b *ball) {
		e.limitVelocity(b.body)
	})

	if e.launched != nil && e.outOfScreen(e.launched.body.Position()) {
		e.removeBall(e.launched)
		e.launched = nil
		log.Printf("[Physics] Ball left the table")
	}

	kept := e.dropped[:0]
	for _, b := range e.dropped {
		if e.outOfScreen(b.body.Position()) {
			e.removeBall(b)
			continue
		}
		kept = append(kept, b)
	}
	e.dropped = kept
}

// limitVelocity 把球速限制在 MaxSpeed 以内，避免高速穿透薄线段
func (e *Engine) limitVelocity(body *cp.Body) {
	v := body.Velocity()
	speed := math.Hypot(v.X, v.Y)
	maxSpeed := e.cfg.Ball.MaxSpeed
	if speed > maxSpeed {
		scale := maxSpeed / speed
		body.SetVelocityVector(cp.Vector{X: v.X * scale, Y: v.Y * scale})
	}
}

// outOfScreen 球心越过右边界或下边界即视为出界
func (e *Engine) outOfScreen(p cp.Vector) bool {
	return p.X > e.screenWidth || p.Y > e.screenHeight
}

func (e *Engine) forEachBall(fn func(b *ball)) {
	if e.launched != nil {
		fn(e.launched)
	}
	for _, b := range e.dropped {
		fn(b)
	}
}

// Config 返回引擎使用的物理参数
func (e *Engine) Config() config.PhysicsConfig {
	return e.cfg
}

// Spawn 返回发球点
func (e *Engine) Spawn() table.Vec {
	return e.spawn
}
