package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/director"
	"github.com/decker502/fireworks/pkg/game"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/render/ebitenrender"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// toastDurationMs 提示文字显示时长
const toastDurationMs = 1500

// Options 场景的可选依赖
type Options struct {
	// Sound 音效输出，可为 nil
	Sound director.SoundPlayer
	// Settings 设置管理器，可为 nil（此时不显示统计）
	Settings *game.SettingsManager
	// Clock 时钟，为 nil 时使用 MonotonicClock
	Clock game.Clock
}

// CelebrationScene 烟花庆祝场景
//
// 把 Director 接到 Ebitengine 上：每个 tick 读取指针输入并转换为事件，
// 用单调时钟推进动画，绘制时把 ebiten 屏幕包装成 render.Surface。
type CelebrationScene struct {
	resourceManager *game.ResourceManager
	director        *director.Director
	surface         *ebitenrender.Surface
	clock           game.Clock
	settings        *game.SettingsManager
	pointer         utils.PointerTracker

	medium     render.Font
	toast      string
	toastUntil int64
}

// NewCelebrationScene 加载资源并创建场景
// 资源清单中没有后备的缺失资源会导致返回错误
func NewCelebrationScene(cfg config.Config, rm *game.ResourceManager, opts Options) (*CelebrationScene, error) {
	background, err := rm.LoadImageByID("background")
	if err != nil {
		return nil, fmt.Errorf("failed to load background: %w", err)
	}
	cursor, err := rm.LoadImageByID("cursor")
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}

	fonts := make(map[string]*ebitenrender.Face, 3)
	for _, id := range []string{"title", "medium", "small"} {
		face, err := rm.LoadFontByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load font %s: %w", id, err)
		}
		fonts[id] = face
	}

	fallback, err := rm.DefaultFace(fonts["small"].Size())
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = game.NewMonotonicClock()
	}

	assets := director.Assets{
		Background: background,
		Cursor:     cursor,
		Title:      fonts["title"],
		Small:      fonts["small"],
	}
	var dirOpts []director.Option
	if opts.Sound != nil {
		dirOpts = append(dirOpts, director.WithSound(opts.Sound))
	}

	log.Printf("[CelebrationScene] Created %dx%d", cfg.Window.Width, cfg.Window.Height)
	return &CelebrationScene{
		resourceManager: rm,
		director:        director.New(cfg, assets, dirOpts...),
		surface:         ebitenrender.New(nil, fallback),
		clock:           clock,
		settings:        opts.Settings,
		medium:          fonts["medium"],
	}, nil
}

// Update 读取输入并推进一帧
func (s *CelebrationScene) Update(deltaTime float64) {
	for _, ev := range eventsFor(s.pointer.Poll()) {
		s.director.HandleEvent(ev)
	}
	s.director.Update(s.clock.NowMs())
}

// eventsFor 将一帧的指针状态转换为事件
// 移动在点击之前，这样光标和点击位置一致
func eventsFor(state utils.InputState) []director.Event {
	var events []director.Event
	x, y := float64(state.X), float64(state.Y)
	if state.Moved {
		events = append(events, director.MoveEvent(x, y))
	}
	if state.JustPressed {
		events = append(events, director.ClickEvent(x, y))
	}
	return events
}

// Draw 绘制整帧
func (s *CelebrationScene) Draw(screen *ebiten.Image) {
	s.surface.Bind(screen)
	s.director.Draw(s.surface)

	if s.toastVisible(s.clock.NowMs()) {
		w, h := s.surface.Size()
		s.surface.DrawText(s.toast, float64(w)/2, float64(h)/4, s.medium, config.White)
	}

	if s.settings != nil && s.settings.GetSettings().ShowStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f\n%s", ebiten.ActualFPS(), s.director.Stats()))
	}
}

// ShowToast 在屏幕上方短暂显示一行提示
func (s *CelebrationScene) ShowToast(msg string) {
	s.toast = msg
	s.toastUntil = s.clock.NowMs() + toastDurationMs
}

func (s *CelebrationScene) toastVisible(nowMs int64) bool {
	return s.toast != "" && nowMs < s.toastUntil
}

// Quit 请求退出
func (s *CelebrationScene) Quit() {
	s.director.HandleEvent(director.QuitEvent())
}

// Done 是否已请求退出
func (s *CelebrationScene) Done() bool {
	return s.director.Quit()
}

// Stats 当前实体统计
func (s *CelebrationScene) Stats() director.Stats {
	return s.director.Stats()
}

// Dispose 实现 game.Disposable，释放场景独占的图片
func (s *CelebrationScene) Dispose() {
	s.resourceManager.Dispose()
	log.Printf("[CelebrationScene] Disposed")
}
