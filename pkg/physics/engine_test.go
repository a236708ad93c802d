package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/table"
)

const dt = 1.0 / 60.0

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(config.DefaultPhysicsConfig(), table.NewMainTable(800, 600), 800, 600)
}

// openTable 没有发射通道的最小布局
type openTable struct{}

func (openTable) Segments() []table.Segment {
	return []table.Segment{{A: table.Vec{X: 0, Y: 590}, B: table.Vec{X: 800, Y: 590}}}
}
func (openTable) Polygons() []table.Polygon { return nil }
func (openTable) Balls() []table.Circle     { return nil }
func (openTable) FlipperAnchors() [2]table.Vec {
	return [2]table.Vec{{X: 300, Y: 500}, {X: 500, Y: 500}}
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t)

	if e.HasBall() {
		t.Error("new engine should not have a ball")
	}
	if got := e.LauncherStiffness(); got != 1000 {
		t.Errorf("LauncherStiffness() = %v, want 1000", got)
	}
	if e.Spawn() != (table.Vec{X: 776, Y: 480}) {
		t.Errorf("Spawn() = %+v, want (776, 480)", e.Spawn())
	}

	// 两个挡板 + 两块发射平板
	if n := len(e.Bodies()); n != 4 {
		t.Errorf("len(Bodies()) = %d, want 4", n)
	}
}

func TestNewBallOnlyOnce(t *testing.T) {
	e := newTestEngine(t)

	if !e.NewBall() {
		t.Fatal("first NewBall() should create a ball")
	}
	if e.NewBall() {
		t.Error("second NewBall() should be ignored while a ball is in play")
	}
	if e.BallCount() != 1 {
		t.Errorf("BallCount() = %d, want 1", e.BallCount())
	}

	pos := e.launched.body.Position()
	if pos.X != 776 || pos.Y != 180 {
		t.Errorf("ball spawned at (%v, %v), want (776, 180)", pos.X, pos.Y)
	}
}

func TestNewBallAtIsUnlimited(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 3; i++ {
		e.NewBallAt(table.Vec{X: 300 + float64(i)*50, Y: 250})
	}
	if e.BallCount() != 3 {
		t.Errorf("BallCount() = %d, want 3", e.BallCount())
	}
	if e.HasBall() {
		t.Error("dropped balls should not count as the launched ball")
	}
}

func TestBallFallsUnderGravity(t *testing.T) {
	e := newTestEngine(t)
	e.NewBallAt(table.Vec{X: 400, Y: 250})
	b := e.dropped[0]

	for i := 0; i < 10; i++ {
		e.Step(dt)
	}

	if y := b.body.Position().Y; y <= 250 {
		t.Errorf("ball Y after 10 steps = %v, want > 250", y)
	}
}

func TestBallRemovedWhenOutOfScreen(t *testing.T) {
	e := newTestEngine(t)

	e.NewBallAt(table.Vec{X: 850, Y: 100})
	e.NewBall()
	e.launched.body.SetPosition(cp.Vector{X: 400, Y: 700})

	e.Step(dt)

	if e.HasBall() {
		t.Error("launched ball below the screen should be removed")
	}
	if e.BallCount() != 0 {
		t.Errorf("BallCount() = %d, want 0", e.BallCount())
	}

	// 出界后可以重新发球
	if !e.NewBall() {
		t.Error("NewBall() should succeed after the previous ball left the table")
	}
}

func TestLimitVelocity(t *testing.T) {
	e := newTestEngine(t)
	e.NewBallAt(table.Vec{X: 400, Y: 250})
	b := e.dropped[0]
	b.body.SetVelocityVector(cp.Vector{X: 5000, Y: 0})

	e.Step(dt)

	v := b.body.Velocity()
	speed := math.Hypot(v.X, v.Y)
	if speed > e.Config().Ball.MaxSpeed*(1+1e-9) {
		t.Errorf("speed after Step = %v, want <= %v", speed, e.Config().Ball.MaxSpeed)
	}
}

func TestLauncherLoadRelease(t *testing.T) {
	e := newTestEngine(t)

	e.LoadLauncher()
	if got := e.LauncherStiffness(); got != 500 {
		t.Errorf("after load stiffness = %v, want 500", got)
	}

	e.LoadLauncher()
	if got := e.LauncherStiffness(); got != 250 {
		t.Errorf("after second load stiffness = %v, want 250", got)
	}

	e.ReleaseLauncher()
	if got := e.LauncherStiffness(); got != 1000 {
		t.Errorf("after release stiffness = %v, want 1000", got)
	}
}

func TestFlipRotatesFlippers(t *testing.T) {
	e := newTestEngine(t)

	rightBefore := e.rightFlipper.body.Angle()
	leftBefore := e.leftFlipper.body.Angle()

	e.FlipRight()
	e.FlipLeft()
	e.Step(dt)

	if e.rightFlipper.body.Angle() == rightBefore {
		t.Error("right flipper did not rotate after FlipRight()")
	}
	if e.leftFlipper.body.Angle() == leftBefore {
		t.Error("left flipper did not rotate after FlipLeft()")
	}
}

func TestFlipperSnapshotAtRest(t *testing.T) {
	e := newTestEngine(t)
	bodies := e.Bodies()

	// 右挡板位于 (480-20, 540+5)，第一个局部顶点 (10, -10)
	right := bodies[1]
	if right.Kind != KindFlipper || len(right.Vertices) != 3 {
		t.Fatalf("bodies[1] = %+v, want a 3-vertex flipper", right)
	}
	if right.Vertices[0] != (table.Vec{X: 470, Y: 535}) {
		t.Errorf("right flipper vertex 0 = %+v, want (470, 535)", right.Vertices[0])
	}

	// 左挡板位于 (320+20, 545)，顶点取镜像 (-10, -10)
	left := bodies[0]
	if left.Vertices[0] != (table.Vec{X: 330, Y: 535}) {
		t.Errorf("left flipper vertex 0 = %+v, want (330, 535)", left.Vertices[0])
	}
}

func TestEngineWithoutLauncher(t *testing.T) {
	e := NewEngine(config.DefaultPhysicsConfig(), openTable{}, 800, 600)

	if e.LauncherStiffness() != 0 {
		t.Errorf("LauncherStiffness() = %v, want 0", e.LauncherStiffness())
	}
	e.LoadLauncher()
	e.ReleaseLauncher()

	if n := len(e.Bodies()); n != 2 {
		t.Errorf("len(Bodies()) = %d, want 2 flippers", n)
	}

	if !e.NewBall() {
		t.Fatal("NewBall() should work without a launcher")
	}
	if x := e.launched.body.Position().X; x != 400 {
		t.Errorf("ball X = %v, want 400 (screen center)", x)
	}
}
