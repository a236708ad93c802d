package config

import "image/color"

// UI 配色
// 弹球桌各元素的颜色，以及矩形演示的配色

var (
	// BackgroundColor 弹球桌背景
	BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// SegmentColor 墙和漏斗线段
	SegmentColor = color.RGBA{R: 4, G: 41, B: 64, A: 255}

	// StaticPolyColor 三角缓冲器
	StaticPolyColor = color.RGBA{R: 214, G: 213, B: 142, A: 255}

	// StaticBallColor 圆形缓冲器
	StaticBallColor = color.RGBA{R: 214, G: 213, B: 142, A: 255}

	// FlipperColor 挡板
	FlipperColor = color.RGBA{R: 219, G: 242, B: 39, A: 255}

	// LauncherColor 发射器平板
	LauncherColor = color.RGBA{R: 170, G: 170, B: 170, A: 255}

	// BallColor 弹球，与发射器平板同色
	BallColor = color.RGBA{R: 170, G: 170, B: 170, A: 255}
)

var (
	// BoxesBackgroundColor 矩形演示背景
	BoxesBackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}

	// MovingBoxColor / MovingBoxHitColor 运动矩形及其重叠时的颜色
	MovingBoxColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	MovingBoxHitColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}

	// StaticBoxColor 静态矩形
	StaticBoxColor = color.RGBA{R: 0, G: 120, B: 255, A: 255}
)

// 矩形演示的初始状态
// 两个矩形尺寸相同，碰撞面判定的容差启发式只在这种情况下表现合理
const (
	BoxSize         = 100.0
	MovingBoxStartX = 0.0
	MovingBoxStartY = 0.0
	MovingBoxSpeedX = 5.0
	MovingBoxSpeedY = 4.0
	StaticBoxStartX = 350.0
	StaticBoxStartY = 250.0
	StaticBoxSpeedY = 2.0
)
