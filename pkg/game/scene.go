package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	// ScenePinball 弹球桌
	ScenePinball = "pinball"
	// SceneBoxes 两个矩形的碰撞演示
	SceneBoxes = "boxes"
)

// SceneNames 返回所有可切换的场景名称，顺序即 Tab 切换顺序
func SceneNames() []string {
	return []string{ScenePinball, SceneBoxes}
}

// Scene represents a screen of the program (the pinball table or the box demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
