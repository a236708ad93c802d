package components

import "image/color"

// ColorComponent 矩形的填充颜色
// Highlight 在与另一个矩形重叠时使用
type ColorComponent struct {
	Fill      color.RGBA
	Highlight color.RGBA
	// Overlapping 由碰撞系统每帧写入
	Overlapping bool
}

// Current 返回当前帧应使用的颜色
func (c *ColorComponent) Current() color.RGBA {
	if c.Overlapping {
		return c.Highlight
	}
	return c.Fill
}
