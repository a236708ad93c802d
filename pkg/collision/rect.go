// Package collision 实现轴对齐矩形（AABB）的重叠检测与碰撞面判定
//
// 本包只处理两个矩形的简单弹跳演示：一个运动矩形、一个只在竖直方向漂移的"静态"矩形。
// 弹球桌上的真实刚体碰撞由 physics 包委托给 Chipmunk 完成，不经过这里。
package collision

import "fmt"

// Rect 轴对齐矩形，(X, Y) 为左上角坐标
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect 创建矩形，宽高必须为正
func NewRect(x, y, width, height float64) (Rect, error) {
	r := Rect{X: x, Y: y, Width: width, Height: height}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("invalid rect size %.1fx%.1f: width and height must be > 0", width, height)
	}
	return r, nil
}

// Valid 检查宽高是否为正
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// MovingRect 带二维速度的矩形（像素/帧）
type MovingRect struct {
	Rect
	VX float64
	VY float64
}

// StaticRect 只有竖直速度的矩形
// 名为"静态"，但在演示中它仍会上下漂移并在上下边界反弹
type StaticRect struct {
	Rect
	VY float64
}

// Overlaps 检查两个矩形是否重叠
//
// 使用严格不等式：仅共享一条边（刚好接触）不算重叠。
// 结果与参数顺序无关。
func Overlaps(a, b Rect) bool {
	xOverlap := a.X < b.X+b.Width && a.X+a.Width > b.X
	yOverlap := a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
	return xOverlap && yOverlap
}
