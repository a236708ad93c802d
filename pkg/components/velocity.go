package components

// VelocityComponent 实体速度（像素/帧）
// 静态矩形只使用 VY
type VelocityComponent struct {
	VX float64
	VY float64
}
