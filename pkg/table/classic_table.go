package table

// ClassicTable 早期布局
// 没有右上角缓冲器，改用一条从第 4 列顶部斜向右侧的线段把球导回中间
type ClassicTable struct {
	grid
}

// NewClassicTable 创建早期弹球桌布局
func NewClassicTable(screenWidth, screenHeight int) *ClassicTable {
	return &ClassicTable{grid: newGrid(screenWidth, screenHeight)}
}

func (t *ClassicTable) Segments() []Segment {
	segments := t.funnel()
	segments = append(segments, t.borders()...)
	return append(segments, t.ballPath())
}

func (t *ClassicTable) Polygons() []Polygon {
	return t.sideBumpers()
}

func (t *ClassicTable) Balls() []Circle {
	return t.roundBumpers()
}

func (t *ClassicTable) FlipperAnchors() [2]Vec {
	return t.flipperAnchors()
}

func (t *ClassicTable) BallSpawn() Vec {
	return t.ballSpawn()
}

func (t *ClassicTable) ballPath() Segment {
	return Segment{A: t.at(4, 0), B: Vec{X: t.screenWidth, Y: t.rowHeight}}
}
