package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory // 场景工厂函数，用于按名称创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 LoadScene 加载的当前场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// LoadScene 通过工厂函数创建并切换到指定名称的场景
//
// 参数：
//   - name: 场景名称，如 "pinball"、"boxes"
//
// 返回：
//   - error: 工厂未设置或创建失败时返回错误，当前场景保持不变
func (sm *SceneManager) LoadScene(name string) error {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(name)
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", name, err)
	}
	if newScene == nil {
		return fmt.Errorf("scene factory returned nil for %q", name)
	}

	sm.SwitchTo(newScene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %s", name)
	return nil
}

// Toggle 切换到 SceneNames 中的下一个场景
//
// 返回：
//   - string: 切换后的场景名称
//   - error: 创建下一个场景失败时返回错误
func (sm *SceneManager) Toggle() (string, error) {
	names := SceneNames()
	next := names[0]
	for i, name := range names {
		if name == sm.currentName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := sm.LoadScene(next); err != nil {
		return sm.currentName, err
	}
	return next, nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
