// Package scenes 实现可切换的两个场景：弹球桌和矩形碰撞演示
package scenes

import (
	"fmt"

	"github.com/decker502/pinball/pkg/config"
	"github.com/decker502/pinball/pkg/game"
)

// Scene is a type alias for game.Scene so callers of this package need not import game.
type Scene = game.Scene

// Factory 返回按名称创建场景的工厂函数，供 game.SceneManager 使用
//
// 参数:
//   - physicsCfg: 物理参数（弹球桌和矩形演示共用容差设置）
//   - tableName: 弹球桌布局名称
//
// 返回:
//   - game.SceneFactory: 工厂函数，未知名称返回错误
func Factory(physicsCfg config.PhysicsConfig, tableName string) game.SceneFactory {
	return func(name string) (game.Scene, error) {
		switch name {
		case game.ScenePinball:
			return NewPinballScene(physicsCfg, tableName)
		case game.SceneBoxes:
			return NewBoxesScene(physicsCfg)
		}
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
