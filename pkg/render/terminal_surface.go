package render

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// CellScreen 终端表面需要的 tcell.Screen 子集
type CellScreen interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// 终端中使用的字符
const (
	discRune    = '●'
	sparkRune   = '•'
	outlineRune = '·'
)

// TerminalSurface 把逻辑像素坐标缩放到终端单元格
//
// 实心圆按单元格中心是否落在圆内光栅化，至少占一个单元格；
// 圆环沿圆周采样；文本按字符逐个写入；图片只绘制 Sprite 的标记字符。
// 透明度通过把颜色向黑色混合来模拟。
type TerminalSurface struct {
	screen CellScreen
	width  int
	height int
}

var _ Surface = (*TerminalSurface)(nil)

// NewTerminalSurface 创建逻辑尺寸为 width x height 的终端表面
func NewTerminalSurface(screen CellScreen, width, height int) *TerminalSurface {
	return &TerminalSurface{screen: screen, width: width, height: height}
}

// Size 实现 Surface，返回逻辑画布尺寸
func (t *TerminalSurface) Size() (int, int) {
	return t.width, t.height
}

// scale 返回每个单元格对应的逻辑像素宽高
func (t *TerminalSurface) scale() (sx, sy float64) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return float64(t.width) / float64(cols), float64(t.height) / float64(rows)
}

// CellAt 返回逻辑坐标所在的单元格
func (t *TerminalSurface) CellAt(x, y float64) (col, row int) {
	sx, sy := t.scale()
	if sx == 0 || sy == 0 {
		return -1, -1
	}
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}

// PointerToLogical 把单元格坐标（鼠标事件）转换为该单元格中心的逻辑坐标
func (t *TerminalSurface) PointerToLogical(col, row int) (x, y float64) {
	sx, sy := t.scale()
	return (float64(col) + 0.5) * sx, (float64(row) + 0.5) * sy
}

func (t *TerminalSurface) set(col, row int, r rune, c color.NRGBA) {
	cols, rows := t.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	t.screen.SetContent(col, row, r, nil, styleFor(c))
}

// styleFor 按透明度把颜色向黑色混合
func styleFor(c color.NRGBA) tcell.Style {
	a := int32(c.A)
	fg := tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
	return tcell.StyleDefault.Foreground(fg)
}

// DrawDisc 实现 Surface
func (t *TerminalSurface) DrawDisc(cx, cy, radius float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	sx, sy := t.scale()
	if sx == 0 || sy == 0 {
		return
	}

	r := sparkRune
	if radius >= 5 {
		r = discRune
	}

	minCol, minRow := t.CellAt(cx-radius, cy-radius)
	maxCol, maxRow := t.CellAt(cx+radius, cy+radius)
	plotted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			px := (float64(col) + 0.5) * sx
			py := (float64(row) + 0.5) * sy
			if math.Hypot(px-cx, py-cy) <= radius {
				t.set(col, row, r, c)
				plotted = true
			}
		}
	}
	if !plotted {
		col, row := t.CellAt(cx, cy)
		t.set(col, row, r, c)
	}
}

// DrawCircleOutline 实现 Surface
func (t *TerminalSurface) DrawCircleOutline(cx, cy, radius, stroke float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	// 周长上每两个逻辑像素采样一次
	steps := int(math.Max(8, 2*math.Pi*radius/2))
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		col, row := t.CellAt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		t.set(col, row, outlineRune, c)
	}
}

// DrawText 实现 Surface，文本以 (cx, cy) 所在单元格为中心
func (t *TerminalSurface) DrawText(s string, cx, cy float64, font Font, c color.NRGBA) {
	if c.A == 0 || s == "" {
		return
	}
	col, row := t.CellAt(cx, cy)
	col -= utf8.RuneCountInString(s) / 2
	for _, r := range s {
		if r != ' ' {
			t.set(col, row, r, c)
		}
		col++
	}
}

// DrawImage 实现 Surface
// 只绘制带标记字符的 Sprite，标记位于图片中心
func (t *TerminalSurface) DrawImage(img Image, x, y float64) {
	sprite, ok := img.(Sprite)
	if !ok || sprite.Glyph == 0 {
		return
	}
	col, row := t.CellAt(x+float64(sprite.Width)/2, y+float64(sprite.Height)/2)
	t.set(col, row, sprite.Glyph, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}
