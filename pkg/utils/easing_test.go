package utils

import (
	"math"
	"testing"
)

// TestFadeAlpha 测试线性淡出函数
func TestFadeAlpha(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 255.0},
		{"中点", 0.5, 127.5},
		{"终点", 1.0, 0.0},
		{"四分之一", 0.25, 191.25},
		{"超出终点", 1.5, 0.0},
		{"负进度", -0.2, 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FadeAlpha(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("FadeAlpha(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestAlphaToUint8 测试透明度转换（四舍五入 + 钳制）
func TestAlphaToUint8(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{0, 0},
		{127.5, 128},
		{127.4, 127},
		{255, 255},
		{300, 255},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := AlphaToUint8(tt.input); got != tt.expected {
			t.Errorf("AlphaToUint8(%v) = %d, 期望 %d", tt.input, got, tt.expected)
		}
	}
}

// TestClamp 测试钳制函数
func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5, 0, 1) = %v, 期望 1", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1, 0, 1) = %v, 期望 0", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp(0.3, 0, 1) = %v, 期望 0.3", got)
	}
}
