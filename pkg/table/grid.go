package table

import "github.com/decker502/pinball/pkg/config"

// 布局尺寸常量（像素）
const (
	// funnelIncline 上方侧墙向外倾斜的量，把球引向中间
	funnelIncline = 40.0

	// bumperSize 三角缓冲器的宽高
	bumperSize = 80.0

	// roundBumperRadius 中央圆形缓冲器半径
	roundBumperRadius = 60.0
)

// grid 网格布局的公共部分
//
// 屏幕被划分为 5x5 网格，所有元素位置都用 "列宽 * 列号"、"行高 * 行号" 计算，
// 列号/行号可以是小数。
type grid struct {
	screenWidth  float64
	screenHeight float64
	colWidth     float64
	rowHeight    float64
	marginBottom float64
}

func newGrid(screenWidth, screenHeight int) grid {
	colWidth, rowHeight := config.GridCell(screenWidth, screenHeight)
	return grid{
		screenWidth:  float64(screenWidth),
		screenHeight: float64(screenHeight),
		colWidth:     colWidth,
		rowHeight:    rowHeight,
		marginBottom: config.TableMarginBottom,
	}
}

// at 返回第 col 列、第 row 行的网格坐标
func (g grid) at(col, row float64) Vec {
	return Vec{X: g.colWidth * col, Y: g.rowHeight * row}
}

// funnel 把球引向挡板的漏斗：两条外倾侧墙 + 两条斜向挡板的线段
func (g grid) funnel() []Segment {
	bottom := g.screenHeight - g.marginBottom
	return []Segment{
		{A: Vec{X: g.colWidth*0.8 - funnelIncline, Y: g.rowHeight * 2}, B: g.at(1, 4)},
		{A: Vec{X: g.colWidth*4.2 + funnelIncline, Y: g.rowHeight * 2}, B: g.at(4, 4)},
		{A: g.at(1, 4), B: Vec{X: g.colWidth * 2, Y: bottom}},
		{A: g.at(4, 4), B: Vec{X: g.colWidth * 3, Y: bottom}},
	}
}

// borders 屏幕四周的墙，以及左右两侧的外层通道
//
// 右侧留出 0.3 列宽的发射通道，底边只封住通道下方。
func (g grid) borders() []Segment {
	w, h := g.screenWidth, g.screenHeight
	marginRight := g.colWidth * 0.3
	lane := w - marginRight

	return []Segment{
		// 上、左、右、下
		{A: Vec{X: 0, Y: 0}, B: Vec{X: w, Y: 0}},
		{A: Vec{X: 0, Y: 0}, B: g.at(0, 2)},
		{A: Vec{X: w, Y: 0}, B: Vec{X: w, Y: h}},
		{A: Vec{X: lane, Y: h}, B: Vec{X: w, Y: h}},
		// 左侧外层通道
		{A: g.at(0, 2), B: g.at(0.5, 4)},
		{A: g.at(0.5, 4), B: g.at(1.5, 5)},
		// 右侧发射通道内墙
		{A: Vec{X: lane, Y: g.rowHeight * 1.5}, B: Vec{X: lane, Y: h}},
		{A: Vec{X: lane, Y: g.rowHeight * 4}, B: Vec{X: w - g.colWidth*1.5, Y: h}},
	}
}

// sideBumpers 漏斗上方左右两个三角缓冲器，高度相同
func (g grid) sideBumpers() []Polygon {
	offset := bumperSize / 2
	y := g.rowHeight*4 - (bumperSize + offset)

	return []Polygon{
		{
			Vertices: []Vec{{X: 0, Y: 0}, {X: bumperSize, Y: bumperSize}, {X: 0, Y: bumperSize}},
			Position: Vec{X: g.colWidth + offset, Y: y},
		},
		{
			Vertices: []Vec{{X: 0, Y: bumperSize}, {X: bumperSize, Y: 0}, {X: bumperSize, Y: bumperSize}},
			Position: Vec{X: g.colWidth*4 - (bumperSize + offset), Y: y},
		},
	}
}

// roundBumpers 第 2.5 列、第 1 行的圆形缓冲器
func (g grid) roundBumpers() []Circle {
	return []Circle{
		{Radius: roundBumperRadius, Center: g.at(GridCenterColumn(), 1)},
	}
}

// flipperAnchors 挡板锚点：漏斗底部两端
func (g grid) flipperAnchors() [2]Vec {
	y := g.screenHeight - g.marginBottom
	return [2]Vec{
		{X: g.colWidth * 2, Y: y},
		{X: g.colWidth * 3, Y: y},
	}
}

// ballSpawn 发射通道中的发球点
func (g grid) ballSpawn() Vec {
	return Vec{X: g.screenWidth - g.colWidth*0.15, Y: g.rowHeight * 4}
}

// GridCenterColumn 返回网格中间列的列号（5 列时为 2.5）
func GridCenterColumn() float64 {
	return float64(config.GridColumns) / 2
}
