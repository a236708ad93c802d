package config

// 布局配置常量
// 本文件定义窗口尺寸和弹球桌的网格划分参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// TargetFPS 目标帧率，物理步长为 1/TargetFPS
	TargetFPS = 60

	// GridColumns 弹球桌网格列数
	// 桌面上的元素都通过 "列宽 * 列号" 定位
	GridColumns = 5

	// GridRows 弹球桌网格行数
	GridRows = 5

	// TableMarginBottom 漏斗底部到屏幕底边的留白（像素），挡板也放在这个高度
	TableMarginBottom = 60.0
)

// GridCell 根据屏幕尺寸计算网格的列宽和行高
//
// 使用整数除法：800/5=160, 600/5=120
//
// 参数：
//   - screenWidth, screenHeight: 屏幕尺寸（像素）
//
// 返回：
//   - colWidth: 列宽
//   - rowHeight: 行高
func GridCell(screenWidth, screenHeight int) (colWidth, rowHeight float64) {
	return float64(screenWidth / GridColumns), float64(screenHeight / GridRows)
}

// StepDuration 返回固定物理步长（秒）
func StepDuration() float64 {
	return 1.0 / float64(TargetFPS)
}
