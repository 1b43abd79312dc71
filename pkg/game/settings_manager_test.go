package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowStats {
		t.Error("ShowStats: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_fireworks_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.ToggleStats()

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowStats {
		t.Error("Loaded ShowStats: got false, want true")
	}
}

// TestSettingsPartialFile 缺少的字段使用默认值
func TestSettingsPartialFile(t *testing.T) {
	gdataManager := openTestStorage(t, "test_fireworks_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen 应从文件读取为 true")
	}
	if !settings.SoundEnabled || settings.SoundVolume != 0.8 {
		t.Errorf("缺少的字段应保留默认值: %+v", settings)
	}
}

// TestSettingsCorruptFile 文件损坏时使用默认设置
func TestSettingsCorruptFile(t *testing.T) {
	gdataManager := openTestStorage(t, "test_fireworks_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("损坏的文件应返回错误")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("加载失败后应使用默认设置: %+v", sm.GetSettings())
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestToggles 测试开关切换
func TestToggles(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("ToggleSound() 第一次应关闭音效")
	}
	if !sm.ToggleSound() {
		t.Error("ToggleSound() 第二次应打开音效")
	}
	if !sm.ToggleStats() {
		t.Error("ToggleStats() 第一次应显示统计")
	}
	if sm.ToggleStats() {
		t.Error("ToggleStats() 第二次应隐藏统计")
	}
}
