package components

// BoxKind 矩形演示中实体的角色
type BoxKind int

const (
	// BoxMoving 二维运动的矩形
	BoxMoving BoxKind = iota
	// BoxStatic 只在竖直方向漂移的矩形
	BoxStatic
)

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以实体位置（PositionComponent）为左上角
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
	Kind   BoxKind
}
