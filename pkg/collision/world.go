package collision

// Bounds 屏幕边界（像素）
type Bounds struct {
	Width  float64
	Height float64
}

// Advance 按速度推进两个矩形：运动矩形走 (VX, VY)，静态矩形只走 VY
func Advance(m *MovingRect, s *StaticRect) {
	m.X += m.VX
	m.Y += m.VY
	s.Y += s.VY
}

// BounceMoving 运动矩形碰到屏幕边界时反转对应速度分量
// 边缘刚好等于边界也算碰到
func BounceMoving(m *MovingRect, b Bounds) {
	if m.Right() >= b.Width || m.Left() <= 0 {
		m.VX = -m.VX
	}
	if m.Bottom() >= b.Height || m.Top() <= 0 {
		m.VY = -m.VY
	}
}

// BounceStatic 静态矩形碰到上下边界时反转竖直速度
func BounceStatic(s *StaticRect, b Bounds) {
	if s.Bottom() >= b.Height || s.Top() <= 0 {
		s.VY = -s.VY
	}
}

// BounceBorders 对两个矩形执行屏幕边界反弹，每帧无条件执行
func BounceBorders(m *MovingRect, s *StaticRect, b Bounds) {
	BounceMoving(m, b)
	BounceStatic(s, b)
}

// TickResult 一帧的碰撞结果
type TickResult struct {
	Overlapping bool
	Side        Side
}

// World 两个矩形的弹跳演示世界
// 单线程使用：整个状态只由游戏循环在 Update 中修改
type World struct {
	Moving   MovingRect
	Static   StaticRect
	Bounds   Bounds
	resolver *Resolver
}

// NewWorld 创建演示世界
func NewWorld(moving MovingRect, static StaticRect, bounds Bounds, resolver *Resolver) *World {
	return &World{
		Moving:   moving,
		Static:   static,
		Bounds:   bounds,
		resolver: resolver,
	}
}

// Tick 推进一帧：移动 → 边界反弹 → 重叠检测 → 碰撞面判定
func (w *World) Tick() TickResult {
	Advance(&w.Moving, &w.Static)
	BounceBorders(&w.Moving, &w.Static, w.Bounds)

	overlapping, side := w.resolver.Step(&w.Moving, w.Static)
	return TickResult{Overlapping: overlapping, Side: side}
}
