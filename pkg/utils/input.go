// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置相对上一帧是否变化
	Moved bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// PointerTracker 逐帧跟踪指针，报告移动和点击
// 第一帧总是报告一次移动，使光标跟上真实指针位置
type PointerTracker struct {
	lastX, lastY int
	seen         bool
}

// Poll 读取当前帧的鼠标和触摸状态（每帧调用一次）
func (t *PointerTracker) Poll() InputState {
	pressed, x, y := IsPointerJustPressed()
	if pressed {
		return t.observe(x, y, true, IsTouchDevice())
	}
	x, y = GetPointerPosition()
	return t.observe(x, y, false, IsTouchDevice())
}

// observe 记录指针位置并生成输入状态
func (t *PointerTracker) observe(x, y int, pressed, touching bool) InputState {
	state := InputState{
		JustPressed: pressed,
		X:           x,
		Y:           y,
		IsTouching:  touching,
		Moved:       !t.seen || x != t.lastX || y != t.lastY,
	}
	t.lastX, t.lastY = x, y
	t.seen = true
	return state
}

// Reset 清除跟踪状态
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsTouchDevice 检测当前是否有活动的触摸
func IsTouchDevice() bool {
	return len(ebiten.AppendTouchIDs(nil)) > 0
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
