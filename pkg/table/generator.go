// Package table 定义弹球桌的静态布局
//
// 布局只是数据：线段、多边形缓冲器、圆形缓冲器、挡板锚点和发球点。
// 由 physics 包把这些数据变成 Chipmunk 中的静态形状。
package table

import (
	"fmt"
	"sort"
)

// Vec 二维坐标（屏幕坐标系，Y 向下）
type Vec struct {
	X, Y float64
}

// Add 向量相加
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Segment 静态线段
type Segment struct {
	A, B Vec
}

// Polygon 静态多边形，Vertices 为相对 Position 的局部顶点
type Polygon struct {
	Vertices []Vec
	Position Vec
}

// Circle 静态圆形缓冲器
type Circle struct {
	Radius float64
	Center Vec
}

// MapGenerator 弹球桌布局提供者
type MapGenerator interface {
	// Segments 返回所有静态线段（墙、漏斗）
	Segments() []Segment

	// Polygons 返回所有静态多边形缓冲器
	Polygons() []Polygon

	// Balls 返回所有静态圆形缓冲器
	Balls() []Circle

	// FlipperAnchors 返回挡板的网格锚点：[0] 左，[1] 右
	FlipperAnchors() [2]Vec
}

// BallSpawner 可选能力：提供发球点（发射器所在位置）
type BallSpawner interface {
	BallSpawn() Vec
}

// Factory 根据屏幕尺寸创建布局
type Factory func(screenWidth, screenHeight int) MapGenerator

var registry = map[string]Factory{
	"main":    func(w, h int) MapGenerator { return NewMainTable(w, h) },
	"classic": func(w, h int) MapGenerator { return NewClassicTable(w, h) },
}

// DefaultName 默认布局名称
const DefaultName = "main"

// New 按名称创建布局
//
// 参数:
//   - name: 布局名称（"main" 或 "classic"）
//   - screenWidth, screenHeight: 屏幕尺寸
//
// 返回:
//   - MapGenerator: 布局实例
//   - error: 名称未注册时返回错误
func New(name string, screenWidth, screenHeight int) (MapGenerator, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q (available: %v)", name, Names())
	}
	return factory(screenWidth, screenHeight), nil
}

// Names 返回所有已注册的布局名称（已排序）
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
