package game

import (
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/pinball/pkg/table"
)

// GameSettings 用户设置
// 命令行参数优先，未指定时使用上次退出时保存的值
type GameSettings struct {
	Table      string `yaml:"table"`      // 弹球桌布局名称
	Scene      string `yaml:"scene"`      // 启动场景
	Fullscreen bool   `yaml:"fullscreen"` // 启动时是否全屏
	ShowFPS    bool   `yaml:"showFPS"`    // 是否显示帧率
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Table:      table.DefaultName,
		Scene:      ScenePinball,
		Fullscreen: false,
		ShowFPS:    false,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		// 文件不存在，使用默认设置
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings GameSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loadedSettings.fillDefaults()
	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回：
//   - *GameSettings: 当前设置实例
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetTable 设置弹球桌布局名称
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
//
// 参数：
//   - name: 布局名称，如 "main"、"classic"
func (sm *SettingsManager) SetTable(name string) {
	sm.settings.Table = name
}

// SetScene 设置启动场景
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetScene(name string) {
	sm.settings.Scene = name
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
//
// 参数：
//   - enabled: 是否启用全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowFPS 设置是否显示帧率
func (sm *SettingsManager) SetShowFPS(enabled bool) {
	sm.settings.ShowFPS = enabled
}

// fillDefaults 旧版本存档缺少的字段，或已不存在的布局/场景名称，使用默认值
func (s *GameSettings) fillDefaults() {
	def := DefaultSettings()
	if !slices.Contains(table.Names(), s.Table) {
		if s.Table != "" {
			log.Printf("[SettingsManager] Saved table %q unknown, using %q", s.Table, def.Table)
		}
		s.Table = def.Table
	}
	if !slices.Contains(SceneNames(), s.Scene) {
		if s.Scene != "" {
			log.Printf("[SettingsManager] Saved scene %q unknown, using %q", s.Scene, def.Scene)
		}
		s.Scene = def.Scene
	}
}
