package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/pinball/pkg/collision"
)

// Vec2 YAML 中的二维坐标/向量
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BallConfig 弹球参数
type BallConfig struct {
	Mass       float64 `yaml:"mass"`
	Radius     float64 `yaml:"radius"`
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`

	// MaxSpeed 速度上限（像素/秒），防止球速过快穿透薄的线段
	MaxSpeed float64 `yaml:"maxSpeed"`

	// SpawnLift 新球相对发射点向上的偏移
	SpawnLift float64 `yaml:"spawnLift"`
}

// FlipperConfig 挡板参数
type FlipperConfig struct {
	Mass       float64 `yaml:"mass"`
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`

	// Polygon 右挡板的局部顶点，左挡板取 X 镜像
	Polygon []Vec2 `yaml:"polygon"`

	// AnchorOffset 挡板转轴相对网格锚点的偏移（右挡板，左挡板 X 取反）
	AnchorOffset Vec2 `yaml:"anchorOffset"`

	// 阻尼旋转弹簧：把挡板拉回静止角度
	RestAngle float64 `yaml:"restAngle"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`

	// Impulse 按键时施加的冲量大小，作用点为 ImpulsePoint（局部坐标）
	Impulse      float64 `yaml:"impulse"`
	ImpulsePoint Vec2    `yaml:"impulsePoint"`
}

// LauncherConfig 发射器参数
// 发射器由上下两块平板和连接它们的阻尼弹簧组成
type LauncherConfig struct {
	RestLength  float64 `yaml:"restLength"`
	Stiffness   float64 `yaml:"stiffness"`
	Damping     float64 `yaml:"damping"`
	PlateWidth  float64 `yaml:"plateWidth"`
	PlateHeight float64 `yaml:"plateHeight"`
	TopMass     float64 `yaml:"topMass"`
	LowerMass   float64 `yaml:"lowerMass"`

	// TopOffset / LowerOffset 平板相对发射点的竖直偏移
	TopOffset   float64 `yaml:"topOffset"`
	LowerOffset float64 `yaml:"lowerOffset"`
}

// SurfaceConfig 静态形状的表面材质
type SurfaceConfig struct {
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`
}

// SegmentConfig 静态线段参数
type SegmentConfig struct {
	Thickness     float64 `yaml:"thickness"`
	SurfaceConfig `yaml:",inline"`
}

// PhysicsConfig 物理参数记录
//
// 以值传递给各构造函数，运行期间不修改。
//
// 配置文件位置: data/physics.yaml
type PhysicsConfig struct {
	Gravity    Vec2           `yaml:"gravity"`
	Ball       BallConfig     `yaml:"ball"`
	Flipper    FlipperConfig  `yaml:"flipper"`
	Launcher   LauncherConfig `yaml:"launcher"`
	Segment    SegmentConfig  `yaml:"segment"`
	StaticPoly SurfaceConfig  `yaml:"staticPoly"`
	StaticBall SurfaceConfig  `yaml:"staticBall"`
	Collision  BoxCollision   `yaml:"collision"`
}

// BoxCollision 矩形演示的碰撞参数
type BoxCollision struct {
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultPhysicsConfig 返回默认物理参数
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity: Vec2{X: 0, Y: 800},
		Ball: BallConfig{
			Mass:       1,
			Radius:     15,
			Elasticity: 1,
			Friction:   0.4,
			MaxSpeed:   1500,
			SpawnLift:  300,
		},
		Flipper: FlipperConfig{
			Mass:         1000,
			Elasticity:   0.4,
			Friction:     1,
			Polygon:      []Vec2{{X: 10, Y: -10}, {X: -50, Y: 0}, {X: 10, Y: 10}},
			AnchorOffset: Vec2{X: -20, Y: 5},
			RestAngle:    0.10,
			Stiffness:    20000000,
			Damping:      900000,
			Impulse:      50000,
			ImpulsePoint: Vec2{X: -150, Y: 0},
		},
		Launcher: LauncherConfig{
			RestLength:  300,
			Stiffness:   1000,
			Damping:     20,
			PlateWidth:  50,
			PlateHeight: 10,
			TopMass:     10,
			LowerMass:   100,
			TopOffset:   -250,
			LowerOffset: 100,
		},
		Segment: SegmentConfig{
			Thickness:     5,
			SurfaceConfig: SurfaceConfig{Elasticity: 0.5, Friction: 0.4},
		},
		StaticPoly: SurfaceConfig{Elasticity: 1, Friction: 0.2},
		StaticBall: SurfaceConfig{Elasticity: 1, Friction: 0.2},
		Collision:  BoxCollision{Tolerance: collision.DefaultTolerance},
	}
}

// LoadPhysicsConfig 加载物理配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/physics.yaml"）
//
// 返回:
//   - PhysicsConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPhysicsConfig(path string) (PhysicsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PhysicsConfig{}, fmt.Errorf("failed to read physics config: %w", err)
	}
	return ParsePhysicsConfig(data)
}

// ParsePhysicsConfig 从 YAML 数据解析物理配置（用于嵌入资源）
func ParsePhysicsConfig(data []byte) (PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PhysicsConfig{}, fmt.Errorf("failed to parse physics config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return PhysicsConfig{}, fmt.Errorf("invalid physics config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 质量、半径、平板尺寸必须为正
//   - 弹性系数在 [0, 1] 内，摩擦系数非负
//   - 挡板多边形至少 3 个顶点
//   - 碰撞容差大于 0
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c PhysicsConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"ball.mass", c.Ball.Mass},
		{"ball.radius", c.Ball.Radius},
		{"ball.maxSpeed", c.Ball.MaxSpeed},
		{"flipper.mass", c.Flipper.Mass},
		{"launcher.topMass", c.Launcher.TopMass},
		{"launcher.lowerMass", c.Launcher.LowerMass},
		{"launcher.plateWidth", c.Launcher.PlateWidth},
		{"launcher.plateHeight", c.Launcher.PlateHeight},
		{"launcher.stiffness", c.Launcher.Stiffness},
		{"segment.thickness", c.Segment.Thickness},
		{"collision.tolerance", c.Collision.Tolerance},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be > 0, got %v", p.name, p.value)
		}
	}

	surfaces := []struct {
		name string
		SurfaceConfig
	}{
		{"ball", SurfaceConfig{Elasticity: c.Ball.Elasticity, Friction: c.Ball.Friction}},
		{"flipper", SurfaceConfig{Elasticity: c.Flipper.Elasticity, Friction: c.Flipper.Friction}},
		{"segment", c.Segment.SurfaceConfig},
		{"staticPoly", c.StaticPoly},
		{"staticBall", c.StaticBall},
	}
	for _, s := range surfaces {
		if s.Elasticity < 0 || s.Elasticity > 1 {
			return fmt.Errorf("%s elasticity must be within [0, 1], got %v", s.name, s.Elasticity)
		}
		if s.Friction < 0 {
			return fmt.Errorf("%s friction must be >= 0, got %v", s.name, s.Friction)
		}
	}

	if len(c.Flipper.Polygon) < 3 {
		return fmt.Errorf("flipper polygon needs at least 3 vertices, got %d", len(c.Flipper.Polygon))
	}

	return nil
}

// MirroredFlipperPolygon 返回左挡板的顶点（右挡板顶点的 X 镜像）
func (c PhysicsConfig) MirroredFlipperPolygon() []Vec2 {
	mirrored := make([]Vec2, len(c.Flipper.Polygon))
	for i, v := range c.Flipper.Polygon {
		mirrored[i] = Vec2{X: -v.X, Y: v.Y}
	}
	return mirrored
}

// CollisionConfig 转换为矩形碰撞判定器的参数
func (c PhysicsConfig) CollisionConfig() collision.Config {
	return collision.Config{Tolerance: c.Collision.Tolerance}
}
