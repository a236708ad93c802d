package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/physics"
	"github.com/decker502/pinball/pkg/table"
)

// TableRenderSystem 绘制弹球桌：静态布局 + 物理引擎中的动态物体
//
// 只做调试级别的矢量绘制（线段、多边形轮廓、实心圆），没有贴图。
type TableRenderSystem struct {
	layout       table.MapGenerator
	engine       *physics.Engine
	segmentWidth float32
	outlineWidth float32
}

// NewTableRenderSystem 创建弹球桌渲染系统
//
// 参数:
//   - layout: 弹球桌布局（静态形状来源）
//   - engine: 物理引擎（动态物体来源）
//
// 返回:
//   - *TableRenderSystem: 系统实例
func NewTableRenderSystem(layout table.MapGenerator, engine *physics.Engine) *TableRenderSystem {
	return &TableRenderSystem{
		layout:       layout,
		engine:       engine,
		segmentWidth: float32(engine.Config().Segment.Thickness) * 2,
		outlineWidth: 2,
	}
}

// Draw 绘制整张弹球桌
func (s *TableRenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, seg := range s.layout.Segments() {
		vector.StrokeLine(screen,
			float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y),
			s.segmentWidth, config.SegmentColor, true)
	}

	for _, poly := range s.layout.Polygons() {
		world := make([]table.Vec, len(poly.Vertices))
		for i, v := range poly.Vertices {
			world[i] = poly.Position.Add(v)
		}
		s.strokePolygon(screen, world, config.StaticPolyColor)
	}

	for _, c := range s.layout.Balls() {
		vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius),
			config.StaticBallColor, true)
	}

	for _, body := range s.engine.Bodies() {
		switch body.Kind {
		case physics.KindBall:
			vector.DrawFilledCircle(screen, float32(body.Center.X), float32(body.Center.Y), float32(body.Radius),
				config.BallColor, true)
		case physics.KindFlipper:
			s.strokePolygon(screen, body.Vertices, config.FlipperColor)
		case physics.KindLauncherPlate:
			s.strokePolygon(screen, body.Vertices, config.LauncherColor)
		}
	}
}

// strokePolygon 绘制闭合多边形轮廓
func (s *TableRenderSystem) strokePolygon(screen *ebiten.Image, vertices []table.Vec, clr color.Color) {
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			s.outlineWidth, clr, true)
	}
}
