package ebitenrender

import (
	"bytes"
	"testing"

	"github.com/decker502/fireworks/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFace(t *testing.T) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("加载字体失败: %v", err)
	}
	f := &Face{ID: "small", Face: &text.GoTextFace{Source: source, Size: 36}}

	var font render.Font = f
	if font.Name() != "small" || font.Size() != 36 {
		t.Errorf("Face = %s/%v, 期望 small/36", font.Name(), font.Size())
	}
	if (&Face{ID: "empty"}).Size() != 0 {
		t.Error("没有字体数据时 Size() 应为 0")
	}
}

func TestSurfaceFaceFallback(t *testing.T) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("加载字体失败: %v", err)
	}
	fallback := &text.GoTextFace{Source: source, Size: 20}
	own := &text.GoTextFace{Source: source, Size: 40}

	s := New(ebiten.NewImage(8, 8), fallback)
	if got := s.faceFor(&Face{ID: "title", Face: own}); got != own {
		t.Error("*Face 应使用自身字体")
	}
	if got := s.faceFor(render.FontRef{ID: "title", Points: 74}); got != fallback {
		t.Error("其他字体句柄应使用后备字体")
	}
	if got := s.faceFor(nil); got != fallback {
		t.Error("nil 字体应使用后备字体")
	}
}

func TestSurfaceSize(t *testing.T) {
	s := New(ebiten.NewImage(800, 600), nil)
	w, h := s.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, 期望 800x600", w, h)
	}

	s.Bind(ebiten.NewImage(320, 240))
	w, h = s.Size()
	if w != 320 || h != 240 {
		t.Errorf("Bind 后 Size() = %dx%d, 期望 320x240", w, h)
	}
}
