package utils

import "math"

// Fade Functions (淡出函数)
//
// 透明度统一使用 0~255 的浮点值表示，绘制时再转换为 uint8。
// 进度值 t ∈ [0, 1]，超出范围的输入会被钳制。

// MaxAlpha 完全不透明时的透明度
const MaxAlpha = 255.0

// FadeAlpha 线性淡出
// 公式：f(t) = max(255 - t*255, 0)
// t <= 0 返回 255，t >= 1 返回 0
func FadeAlpha(t float64) float64 {
	if t <= 0 {
		return MaxAlpha
	}
	return math.Max(MaxAlpha-t*MaxAlpha, 0)
}

// AlphaToUint8 将 0~255 的浮点透明度转换为 uint8（四舍五入）
func AlphaToUint8(alpha float64) uint8 {
	return uint8(math.Round(Clamp(alpha, 0, MaxAlpha)))
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
