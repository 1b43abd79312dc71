// Package main provides a headless simulator for checking burst and
// retention settings without opening a window.
//
// It replays a click script against the animation director with a fixed
// frame clock and prints entity counts, so config changes can be compared
// frame by frame.
//
// Usage:
//
//	go run ./cmd/fireworks-sim [flags]
//
// Flags:
//
//	--config <path>     Fireworks config (default: built-in defaults)
//	--clicks <script>   Click script "frame:x,y;frame:x,y" (default: one click at the centre on frame 0)
//	--frames <n>        Number of frames to simulate (default 300)
//	--every <n>         Print stats every n frames (default 30)
//	--seed <n>          Random seed (default 1)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/director"
	"github.com/decker502/fireworks/pkg/render"
)

var (
	configFlag  = flag.String("config", "", "Fireworks config path")
	clicksFlag  = flag.String("clicks", "", "Click script, e.g. \"0:400,200;30:100,100\"")
	framesFlag  = flag.Int("frames", 300, "Number of frames to simulate")
	everyFlag   = flag.Int("every", 30, "Print stats every n frames")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// scriptedClick 在指定帧发生的点击
type scriptedClick struct {
	Frame int
	X, Y  float64
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = config.LoadConfig(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Seed = *seedFlag

	clicks, err := parseClicks(*clicksFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --clicks: %v\n", err)
		os.Exit(1)
	}
	if len(clicks) == 0 {
		cx, cy := cfg.Center()
		clicks = []scriptedClick{{Frame: 0, X: cx, Y: cy}}
	}

	simulate(os.Stdout, cfg, clicks, *framesFlag, *everyFlag)
}

// parseClicks 解析 "frame:x,y;frame:x,y" 格式的点击脚本
func parseClicks(script string) ([]scriptedClick, error) {
	var clicks []scriptedClick
	for _, entry := range strings.Split(script, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		frameStr, pos, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q: missing frame", entry)
		}
		xStr, yStr, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("entry %q: position must be x,y", entry)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameStr))
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("entry %q: invalid frame", entry)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xStr), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: invalid x: %w", entry, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(yStr), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: invalid y: %w", entry, err)
		}
		clicks = append(clicks, scriptedClick{Frame: frame, X: x, Y: y})
	}
	sort.SliceStable(clicks, func(i, j int) bool { return clicks[i].Frame < clicks[j].Frame })
	return clicks, nil
}

// simulate 以固定帧间隔运行 Director 并打印统计
// 返回最后一帧的统计
func simulate(w io.Writer, cfg config.Config, clicks []scriptedClick, frames, every int) director.Stats {
	d := director.New(cfg, director.Assets{
		Title: render.FontRef{ID: "title", Points: 74},
		Small: render.FontRef{ID: "small", Points: 36},
	})
	rec := render.NewRecorder(cfg.Window.Width, cfg.Window.Height)
	frameMs := int64(1000 / cfg.Window.FPS)

	fmt.Fprintf(w, "%6s %6s %11s %10s %8s %10s %7s\n",
		"frame", "clicks", "projectiles", "particles", "ripples", "glyphsets", "draws")

	next := 0
	var stats director.Stats
	for frame := 0; frame < frames; frame++ {
		for next < len(clicks) && clicks[next].Frame == frame {
			d.HandleEvent(director.ClickEvent(clicks[next].X, clicks[next].Y))
			next++
		}

		rec.Reset()
		d.Frame(int64(frame)*frameMs, rec)
		stats = d.Stats()

		if every > 0 && (frame%every == 0 || frame == frames-1) {
			fmt.Fprintf(w, "%6d %6d %11d %10d %8d %10d %7d\n",
				frame, stats.Clicks, stats.Projectiles, stats.LiveParticles, stats.Ripples, stats.GlyphSets, len(rec.Ops))
		}
	}
	return stats
}
