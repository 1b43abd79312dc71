// Package render 定义动画核心与宿主绘制层之间的最小接口
//
// 动画核心（entities、director）只通过 Surface 绘制，不直接依赖任何窗口库。
// 桌面端由 ebitenrender.Surface 实现，终端端由 TerminalSurface 实现，
// 测试使用 Recorder 记录绘制调用。
package render

import (
	"image"
	"image/color"
)

// Font 字体句柄（由宿主加载，动画核心只借用引用）
type Font interface {
	// Name 返回字体资源ID（如 "title"、"small"）
	Name() string
	// Size 返回字号（点）
	Size() float64
}

// Image 图片句柄
// *ebiten.Image 天然满足该接口
type Image interface {
	Bounds() image.Rectangle
}

// Surface 可绘制表面
//
// 所有坐标均为逻辑像素坐标；颜色使用非预乘的 NRGBA，透明度放在 A 通道。
type Surface interface {
	// DrawDisc 以 (cx, cy) 为圆心绘制实心圆
	DrawDisc(cx, cy, radius float64, c color.NRGBA)

	// DrawCircleOutline 以 (cx, cy) 为圆心绘制圆环（描边宽度 stroke）
	DrawCircleOutline(cx, cy, radius, stroke float64, c color.NRGBA)

	// DrawText 以 (cx, cy) 为中心绘制文本
	DrawText(s string, cx, cy float64, font Font, c color.NRGBA)

	// DrawImage 以 (x, y) 为左上角绘制图片
	DrawImage(img Image, x, y float64)

	// Size 返回逻辑画布尺寸
	Size() (width, height int)
}

// Sprite 无像素数据的图片句柄，只携带尺寸
// 用于没有真实贴图的后端（终端）和测试
type Sprite struct {
	Width  int
	Height int
	// Glyph 终端后端绘制该图片时使用的字符，0 表示不绘制
	Glyph rune
}

// Bounds 实现 Image 接口
func (s Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// FontRef 只有名称和字号的字体句柄
type FontRef struct {
	ID     string
	Points float64
}

// Name 实现 Font 接口
func (f FontRef) Name() string { return f.ID }

// Size 实现 Font 接口
func (f FontRef) Size() float64 { return f.Points }
