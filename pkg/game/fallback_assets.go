package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// crosshairSize 后备光标的边长
const crosshairSize = 32

// generateFallbackImage 生成缺失图片的替代品
func generateFallbackImage(kind string, width, height int) (image.Image, error) {
	switch kind {
	case FallbackGradient:
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("gradient fallback needs a size, got %dx%d", width, height)
		}
		return nightSky(width, height), nil
	case FallbackCrosshair:
		return crosshair(crosshairSize), nil
	default:
		return nil, fmt.Errorf("unknown image fallback %q", kind)
	}
}

// fallbackFont 返回后备字体数据
func fallbackFont(kind string) ([]byte, error) {
	if kind != FallbackGoRegular {
		return nil, fmt.Errorf("unknown font fallback %q", kind)
	}
	return goregular.TTF, nil
}

// nightSky 自上而下从深蓝过渡到午夜蓝
func nightSky(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	top := colornames.Black
	bottom := colornames.Midnightblue
	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// crosshair 红色圆环加十字准星，中心透明
func crosshair(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c - 1
	inner := c - 3
	red := colornames.Red

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			onRing := d <= outer && d >= inner
			onCross := (math.Abs(dx) < 1 || math.Abs(dy) < 1) && d <= outer && d > 3
			if onRing || onCross {
				img.SetNRGBA(x, y, color.NRGBA{R: red.R, G: red.G, B: red.B, A: 255})
			}
		}
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
