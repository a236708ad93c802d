package collision

import (
	"fmt"
	"math"
)

// DefaultTolerance 碰撞面判定的默认像素容差
const DefaultTolerance = 10.0

// Side 运动矩形撞到的静态矩形的面
type Side int

const (
	SideNone Side = iota
	SideBottom
	SideTop
	SideLeft
	SideRight
)

// String 返回碰撞面名称，用于日志
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Config 碰撞判定参数，构造后不可修改
type Config struct {
	// Tolerance 两条边的距离小于该值即视为接触（像素）
	// 检测到重叠时两个矩形已经互相穿透了一帧的位移，所以不能要求边严格重合。
	// 该值是经验值，且只在两个矩形尺寸相同时表现合理。
	Tolerance float64
}

// DefaultConfig 返回默认碰撞参数
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance}
}

// Resolver 碰撞面判定器
type Resolver struct {
	cfg Config
}

// NewResolver 创建碰撞面判定器
//
// 参数:
//   - cfg: 碰撞参数，Tolerance 必须大于 0
//
// 返回:
//   - *Resolver: 判定器实例
//   - error: 参数无效时返回错误
func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Tolerance <= 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return nil, fmt.Errorf("collision tolerance must be a positive finite number, got %v", cfg.Tolerance)
	}
	return &Resolver{cfg: cfg}, nil
}

// Config 返回判定器使用的参数副本
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve 判定运动矩形撞到了静态矩形的哪一面，并反转对应的速度分量
//
// 按顺序检查，第一个满足的条件生效（靠近角落时可能有两个条件同时在容差内）：
//  1. 静态矩形顶边与运动矩形底边相距 < 容差，且 VY > 0 → 反转 VY，返回 SideBottom
//  2. 静态矩形底边与运动矩形顶边相距 < 容差，且 VY < 0 → 反转 VY，返回 SideTop
//  3. 静态矩形右边与运动矩形左边相距 < 容差，且 VX < 0 → 反转 VX，返回 SideLeft
//  4. 静态矩形左边与运动矩形右边相距 < 容差，且 VX > 0 → 反转 VX，返回 SideRight
//
// 都不满足时不修改速度，返回 SideNone。这是启发式在角落附近的已知缺口，不是错误。
// 调用方应先用 Overlaps 确认两个矩形重叠。
func (r *Resolver) Resolve(m *MovingRect, s StaticRect) Side {
	tol := r.cfg.Tolerance

	switch {
	case math.Abs(s.Top()-m.Bottom()) < tol && m.VY > 0:
		m.VY = -m.VY
		return SideBottom
	case math.Abs(s.Bottom()-m.Top()) < tol && m.VY < 0:
		m.VY = -m.VY
		return SideTop
	case math.Abs(s.Right()-m.Left()) < tol && m.VX < 0:
		m.VX = -m.VX
		return SideLeft
	case math.Abs(s.Left()-m.Right()) < tol && m.VX > 0:
		m.VX = -m.VX
		return SideRight
	}
	return SideNone
}

// Step 重叠时执行碰撞面判定
//
// 返回:
//   - bool: 两个矩形是否重叠
//   - Side: 判定出的碰撞面，不重叠或未命中时为 SideNone
func (r *Resolver) Step(m *MovingRect, s StaticRect) (bool, Side) {
	if !Overlaps(m.Rect, s.Rect) {
		return false, SideNone
	}
	return true, r.Resolve(m, s)
}
