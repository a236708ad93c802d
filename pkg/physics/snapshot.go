package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/decker502/pinball/pkg/table"
)

// BodyKind 动态物体类型，决定绘制颜色
type BodyKind int

const (
	KindBall BodyKind = iota
	KindFlipper
	KindLauncherPlate
)

// BodySnapshot 一个动态物体在当前帧的世界坐标形状
// 球只有 Center/Radius，多边形物体只有 Vertices
type BodySnapshot struct {
	Kind     BodyKind
	Center   table.Vec
	Radius   float64
	Vertices []table.Vec
}

// Bodies 返回所有动态物体的快照，供渲染使用
func (e *Engine) Bodies() []BodySnapshot {
	snapshots := make([]BodySnapshot, 0, 4+e.BallCount())

	snapshots = append(snapshots,
		polygonSnapshot(KindFlipper, e.leftFlipper.body, e.leftFlipper.vertices),
		polygonSnapshot(KindFlipper, e.rightFlipper.body, e.rightFlipper.vertices),
	)

	if e.launcher != nil {
		snapshots = append(snapshots,
			polygonSnapshot(KindLauncherPlate, e.launcher.top, e.launcher.plate),
			polygonSnapshot(KindLauncherPlate, e.launcher.lower, e.launcher.plate),
		)
	}

	radius := e.cfg.Ball.Radius
	e.forEachBall(func(b *ball) {
		snapshots = append(snapshots, BodySnapshot{
			Kind:   KindBall,
			Center: fromVector(b.body.Position()),
			Radius: radius,
		})
	})

	return snapshots
}

// polygonSnapshot 把刚体局部顶点按位置和角度变换到世界坐标
func polygonSnapshot(kind BodyKind, body *cp.Body, local []cp.Vector) BodySnapshot {
	pos := body.Position()
	sin, cos := math.Sincos(body.Angle())

	world := make([]table.Vec, len(local))
	for i, v := range local {
		world[i] = table.Vec{
			X: pos.X + v.X*cos - v.Y*sin,
			Y: pos.Y + v.X*sin + v.Y*cos,
		}
	}

	return BodySnapshot{
		Kind:     kind,
		Center:   fromVector(pos),
		Vertices: world,
	}
}
