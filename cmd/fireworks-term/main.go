// Command fireworks-term 在终端中运行烟花演示
//
// 动画核心与桌面版完全相同，只是绘制到 tcell 单元格上：
// 鼠标移动光标，点击发射烟花，Esc / q / Ctrl-C 退出。
//
// Usage:
//
//	go run ./cmd/fireworks-term [--config assets/config/fireworks.yaml] [--mute] [--log fireworks.log]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/director"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/sfx"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "烟花配置文件路径（默认使用内置配置）")
	muteFlag   = flag.Bool("mute", false, "关闭音效")
	volumeFlag = flag.Float64("volume", 0.8, "音效音量 0~1")
	logFlag    = flag.String("log", "", "日志文件路径（终端被占用，默认不输出日志）")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	closeLog, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var opts []director.Option
	if !*muteFlag {
		player := sfx.NewSpeakerPlayer(*volumeFlag)
		if err := player.Initialize(); err != nil {
			log.Printf("[Term] Audio unavailable: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, director.WithSound(player))
		}
	}

	if err := loop(screen, cfg, opts); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loadConfig 未指定路径时尝试默认路径，磁盘上没有则使用内置默认值
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	cfg, err := config.LoadConfig(config.DefaultConfigPath)
	if err != nil {
		log.Printf("[Term] Using built-in defaults: %v", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// terminalAssets 终端没有贴图，背景不绘制，光标用一个字符表示
func terminalAssets(cfg config.Config) director.Assets {
	return director.Assets{
		Background: render.Sprite{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Cursor:     render.Sprite{Width: 2, Height: 2, Glyph: '+'},
		Title:      render.FontRef{ID: "title", Points: 74},
		Small:      render.FontRef{ID: "small", Points: 36},
	}
}

// loop 帧循环：事件在读取 goroutine 中收集，帧 goroutine 上统一处理
func loop(screen tcell.Screen, cfg config.Config, opts []director.Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Term] Frame fault: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("frame fault: %v", r)
		}
	}()

	d := director.New(cfg, terminalAssets(cfg), opts...)
	surface := render.NewTerminalSurface(screen, cfg.Window.Width, cfg.Window.Height)
	var translator inputTranslator

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Window.FPS))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("terminal event source closed")
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			for _, e := range translator.translate(ev, surface) {
				d.HandleEvent(e)
			}
			if d.Quit() {
				return nil
			}

		case <-ticker.C:
			screen.Clear()
			d.Frame(time.Since(start).Milliseconds(), surface)
			screen.Show()
		}
	}
}
