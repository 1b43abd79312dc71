// Package ebitenrender 在 Ebitengine 图像上实现 render.Surface
package ebitenrender

import (
	"image/color"

	"github.com/decker502/fireworks/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Face 带资源ID的字体，实现 render.Font
type Face struct {
	ID   string
	Face *text.GoTextFace
}

// Name 实现 render.Font
func (f *Face) Name() string { return f.ID }

// Size 实现 render.Font
func (f *Face) Size() float64 {
	if f.Face == nil {
		return 0
	}
	return f.Face.Size
}

// Surface 绘制到 *ebiten.Image
//
// 每帧调用 Bind 切换目标图像，DrawOptions 在帧间复用。
type Surface struct {
	dst      *ebiten.Image
	fallback *text.GoTextFace
	textOpts text.DrawOptions
	imgOpts  ebiten.DrawImageOptions
}

var _ render.Surface = (*Surface)(nil)

// New 创建绘制表面
// fallback 在传入的字体不是 *Face 时使用，可以为 nil（此时跳过文本绘制）
func New(dst *ebiten.Image, fallback *text.GoTextFace) *Surface {
	return &Surface{dst: dst, fallback: fallback}
}

// Bind 切换绘制目标
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

// DrawDisc 实现 render.Surface
func (s *Surface) DrawDisc(cx, cy, radius float64, c color.NRGBA) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}

// DrawCircleOutline 实现 render.Surface
func (s *Surface) DrawCircleOutline(cx, cy, radius, stroke float64, c color.NRGBA) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(radius), float32(stroke), c, true)
}

// DrawText 实现 render.Surface，文本以 (cx, cy) 为中心
func (s *Surface) DrawText(str string, cx, cy float64, font render.Font, c color.NRGBA) {
	face := s.faceFor(font)
	if face == nil || c.A == 0 {
		return
	}

	s.textOpts = text.DrawOptions{}
	s.textOpts.GeoM.Translate(cx, cy)
	s.textOpts.PrimaryAlign = text.AlignCenter
	s.textOpts.SecondaryAlign = text.AlignCenter
	s.textOpts.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, &s.textOpts)
}

// DrawImage 实现 render.Surface
// 只绘制 *ebiten.Image，其他图片句柄被忽略
func (s *Surface) DrawImage(img render.Image, x, y float64) {
	src, ok := img.(*ebiten.Image)
	if !ok || src == nil {
		return
	}
	s.imgOpts.GeoM.Reset()
	s.imgOpts.GeoM.Translate(x, y)
	s.dst.DrawImage(src, &s.imgOpts)
}

// Size 实现 render.Surface
func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) faceFor(font render.Font) *text.GoTextFace {
	if f, ok := font.(*Face); ok && f.Face != nil {
		return f.Face
	}
	return s.fallback
}
