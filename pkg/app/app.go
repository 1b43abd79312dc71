// Package app 提供烟花演示的应用包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/scenes"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 设置存储使用的应用名
const AppName = "fireworks"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 烟花配置文件路径，为空使用 config.DefaultConfigPath
	ConfigPath string
	// Watch 监听配置文件变化并热重载
	Watch bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg        config.Config
	configPath string

	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	watcher         *config.Watcher

	verbose                  bool
	pendingWindowSizeReset   bool  // 延迟设置窗口大小标志
	windowSizeResetCountdown int   // 延迟帧数
	drawErr                  error // Draw 中捕获的错误，下一次 Update 返回
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 返回的错误都是初始化故障，调用方应在进入帧循环前退出。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	fwConfig, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	settingsManager, err := game.NewSettingsManager(game.OpenStorage(AppName))
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	a := &App{
		cfg:             fwConfig,
		configPath:      configPath,
		sceneManager:    game.NewSceneManager(),
		settingsManager: settingsManager,
		audioManager:    game.NewAudioManager(game.NewAudioContext(), settingsManager),
		verbose:         cfg.Verbose,
	}
	log.Printf("[App] AudioManager initialized")

	a.sceneManager.SetSceneFactory(a.buildScene)
	if err := a.sceneManager.Reload(); err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	if cfg.Watch {
		a.watcher = startWatcher(configPath, fwConfig.Resources)
	}

	a.applyWindowConfig()
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// 桌面端隐藏系统光标，由场景绘制准星；触屏设备没有光标
	if !utils.IsMobile() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	return a, nil
}

// buildScene 按当前配置重新加载资源并创建场景
func (a *App) buildScene() (game.Scene, error) {
	rm := game.NewResourceManager()
	if err := rm.LoadResourceConfig(a.cfg.Resources); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	scene, err := scenes.NewCelebrationScene(a.cfg, rm, scenes.Options{
		Sound:    a.audioManager,
		Settings: a.settingsManager,
	})
	if err != nil {
		rm.Dispose()
		return nil, err
	}
	return scene, nil
}

// startWatcher 监听配置所在目录；目录不在磁盘上（只用嵌入资源）时不监听
func startWatcher(paths ...string) *config.Watcher {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("[App] Hot reload disabled: no config directory on disk")
		return nil
	}

	w, err := config.NewWatcher(dirs...)
	if err != nil {
		log.Printf("[App] Hot reload disabled: %v", err)
		return nil
	}
	log.Printf("[App] Watching %v", dirs)
	return w
}

func (a *App) applyWindowConfig() {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetTPS(a.cfg.Window.FPS)
}

// Update 更新逻辑
// 每个 tick 调用一次；场景中的 panic 被转换为错误返回，RunGame 随即结束
func (a *App) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = frameFault("update", r)
		}
	}()

	if a.drawErr != nil {
		return a.drawErr
	}

	a.handleWindowKeys()
	a.handleSettingKeys()
	a.reloadIfChanged()

	scene := a.currentScene()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && scene != nil {
		scene.Quit()
	}
	if scene != nil && scene.Done() {
		log.Printf("[App] Quit requested")
		return ebiten.Termination
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// handleWindowKeys F11 切换全屏
func (a *App) handleWindowKeys() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
}

// handleSettingKeys M 静音，Tab 统计叠加层
func (a *App) handleSettingKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		if !enabled {
			a.audioManager.StopAll()
		}
		if scene := a.currentScene(); scene != nil {
			scene.ShowToast(soundToast(enabled))
		}
		log.Printf("[App] Sound enabled: %v", enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		log.Printf("[App] Stats overlay: %v", a.settingsManager.ToggleStats())
	}
}

func soundToast(enabled bool) string {
	if enabled {
		return "Sound on"
	}
	return "Sound off"
}

// reloadIfChanged 配置文件变化后重新加载配置并重建场景
// 新配置无效时保留当前场景
func (a *App) reloadIfChanged() {
	if a.watcher == nil {
		return
	}
	changed := a.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Printf("[App] Config changed: %v", changed)

	next, err := config.LoadConfig(a.configPath)
	if err != nil {
		log.Printf("[App] Reload skipped: %v", err)
		return
	}

	prev := a.cfg
	a.cfg = next
	if err := a.sceneManager.Reload(); err != nil {
		a.cfg = prev
		log.Printf("[App] Reload failed: %v", err)
		return
	}
	a.applyWindowConfig()
}

func (a *App) currentScene() *scenes.CelebrationScene {
	scene, _ := a.sceneManager.GetCurrentScene().(*scenes.CelebrationScene)
	return scene
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			a.drawErr = frameFault("draw", r)
		}
	}()
	a.sceneManager.Draw(screen)
}

// frameFault 将帧内 panic 转换为错误
func frameFault(phase string, r any) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	log.Printf("[App] Frame fault during %s: %v\n%s", phase, err, debug.Stack())
	return fmt.Errorf("frame fault during %s: %w", phase, err)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Close 释放资源并保存设置
// 无论帧循环如何结束都应调用
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
	}
	a.audioManager.StopAll()
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save settings: %w", err))
	}
	return errors.Join(errs...)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
