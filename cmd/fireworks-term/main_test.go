package main

import (
	"testing"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/director"
	"github.com/gdamore/tcell/v2"
)

// cellMapper 每个单元格 10x20 逻辑像素
type cellMapper struct{}

func (cellMapper) PointerToLogical(col, row int) (float64, float64) {
	return float64(col)*10 + 5, float64(row)*20 + 10
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantQuit bool
	}{
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"其他字母", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr inputTranslator
			got := tr.translate(tt.ev, cellMapper{})
			quit := len(got) == 1 && got[0].Kind == director.EventQuit
			if quit != tt.wantQuit {
				t.Errorf("translate() = %v, wantQuit %v", got, tt.wantQuit)
			}
		})
	}
}

// TestTranslateMouse 按住不放只产生一次点击
func TestTranslateMouse(t *testing.T) {
	var tr inputTranslator

	got := tr.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), cellMapper{})
	if len(got) != 1 || got[0] != director.MoveEvent(35, 90) {
		t.Fatalf("移动 = %v", got)
	}

	got = tr.translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), cellMapper{})
	if len(got) != 2 || got[1] != director.ClickEvent(35, 90) {
		t.Fatalf("按下 = %v, 期望移动加点击", got)
	}

	got = tr.translate(tcell.NewEventMouse(4, 4, tcell.Button1, tcell.ModNone), cellMapper{})
	if len(got) != 1 {
		t.Errorf("拖动 = %v, 不应再次点击", got)
	}

	tr.translate(tcell.NewEventMouse(4, 4, tcell.ButtonNone, tcell.ModNone), cellMapper{})
	got = tr.translate(tcell.NewEventMouse(4, 4, tcell.Button1, tcell.ModNone), cellMapper{})
	if len(got) != 2 {
		t.Errorf("松开后再次按下 = %v, 期望产生点击", got)
	}
}

func TestTerminalAssets(t *testing.T) {
	cfg := config.DefaultConfig()
	a := terminalAssets(cfg)
	if b := a.Background.Bounds(); b.Dx() != cfg.Window.Width || b.Dy() != cfg.Window.Height {
		t.Errorf("背景尺寸 = %v", b)
	}
	if a.Title.Size() != 74 || a.Small.Size() != 36 {
		t.Error("字号错误")
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Window != config.DefaultConfig().Window {
		t.Error("磁盘上没有配置时应使用默认值")
	}
	if _, err := loadConfig("missing.yaml"); err == nil {
		t.Error("显式指定的配置不存在时应返回错误")
	}
}
