package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Table != "main" {
		t.Errorf("Table: got %q, want \"main\"", settings.Table)
	}
	if settings.Scene != ScenePinball {
		t.Errorf("Scene: got %q, want %q", settings.Scene, ScenePinball)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowFPS {
		t.Error("ShowFPS: got true, want false")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := openTestGdata(t, "test_pinball_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 验证初始化后使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.Table != "main" {
		t.Errorf("Initial Table: got %q, want \"main\"", settings.Table)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}
	if sm.GetSettings().Scene != ScenePinball {
		t.Errorf("Degraded mode Scene: got %q, want %q", sm.GetSettings().Scene, ScenePinball)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_pinball_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetTable("classic")
	sm1.SetScene(SceneBoxes)
	sm1.SetFullscreen(true)
	sm1.SetShowFPS(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	want := GameSettings{Table: "classic", Scene: SceneBoxes, Fullscreen: true, ShowFPS: true}
	if got := *sm2.GetSettings(); got != want {
		t.Errorf("Loaded settings: got %+v, want %+v", got, want)
	}
}

// TestLoadFillsMissingFields 测试旧存档缺少字段时补齐默认值
func TestLoadFillsMissingFields(t *testing.T) {
	gdataManager := openTestGdata(t, "test_pinball_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()

	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if settings.Table != "main" || settings.Scene != ScenePinball {
		t.Errorf("missing fields not defaulted: %+v", settings)
	}
}

// TestLoadUnknownNames 测试存档中的布局/场景名称已不存在时回退到默认值
func TestLoadUnknownNames(t *testing.T) {
	gdataManager := openTestGdata(t, "test_pinball_settings_unknown")

	data := []byte("table: bogus\nscene: menu\nshowFPS: true\n")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	settings := sm.GetSettings()

	if settings.Table != "main" {
		t.Errorf("Table: got %q, want \"main\"", settings.Table)
	}
	if settings.Scene != ScenePinball {
		t.Errorf("Scene: got %q, want %q", settings.Scene, ScenePinball)
	}
	if !settings.ShowFPS {
		t.Error("ShowFPS: got false, want true (valid fields are kept)")
	}
}

// TestLoadCorruptedSettings 测试存档损坏时回退到默认设置
func TestLoadCorruptedSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_pinball_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("table: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	// 创建时只记录警告，不返回错误
	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupted settings should fall back to defaults, got %+v", sm.GetSettings())
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() on corrupted data should return an error")
	}
}

// TestSetters 测试各个 Set 方法
func TestSetters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(sm *SettingsManager)
		check func(s *GameSettings) bool
	}{
		{"table", func(sm *SettingsManager) { sm.SetTable("classic") }, func(s *GameSettings) bool { return s.Table == "classic" }},
		{"scene", func(sm *SettingsManager) { sm.SetScene(SceneBoxes) }, func(s *GameSettings) bool { return s.Scene == SceneBoxes }},
		{"fullscreen", func(sm *SettingsManager) { sm.SetFullscreen(true) }, func(s *GameSettings) bool { return s.Fullscreen }},
		{"showFPS", func(sm *SettingsManager) { sm.SetShowFPS(true) }, func(s *GameSettings) bool { return s.ShowFPS }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := NewSettingsManager(nil)
			tt.apply(sm)
			if !tt.check(sm.GetSettings()) {
				t.Errorf("setting %s not applied: %+v", tt.name, sm.GetSettings())
			}
		})
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetTable("classic")

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}

	// 应该恢复为默认值
	if sm.GetSettings().Table != "main" {
		t.Errorf("After Load() in degraded mode, Table: got %q, want \"main\"", sm.GetSettings().Table)
	}
}
