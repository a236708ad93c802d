package table

// MainTable 主弹球桌
// 在公共网格布局之外，右上角放一个把发射出来的球折向中间的缓冲器
type MainTable struct {
	grid
}

// NewMainTable 创建主弹球桌布局
func NewMainTable(screenWidth, screenHeight int) *MainTable {
	return &MainTable{grid: newGrid(screenWidth, screenHeight)}
}

func (t *MainTable) Segments() []Segment {
	segments := t.funnel()
	return append(segments, t.borders()...)
}

func (t *MainTable) Polygons() []Polygon {
	return append(t.sideBumpers(), t.launchDeflector())
}

func (t *MainTable) Balls() []Circle {
	return t.roundBumpers()
}

func (t *MainTable) FlipperAnchors() [2]Vec {
	return t.flipperAnchors()
}

func (t *MainTable) BallSpawn() Vec {
	return t.ballSpawn()
}

// launchDeflector 右上角的三角缓冲器
func (t *MainTable) launchDeflector() Polygon {
	return Polygon{
		Vertices: []Vec{{X: 0, Y: 0}, {X: bumperSize, Y: bumperSize}, {X: bumperSize, Y: 0}},
		Position: Vec{X: t.screenWidth - bumperSize, Y: 0},
	}
}
