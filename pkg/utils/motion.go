package utils

import (
	"math"

	"github.com/jakecoffman/cp"
)

// 运动工具（Vector Motion Utilities）
//
// 所有坐标均为屏幕像素坐标，Y 轴向下。
// 函数均为纯函数，不持有任何状态。

// Vec 构造一个二维向量
func Vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

// Angle 返回从 from 指向 to 的方向角（弧度），等价于 atan2(dy, dx)
func Angle(from, to cp.Vector) float64 {
	return to.Sub(from).ToAngle()
}

// Distance 返回两点之间的欧氏距离
func Distance(from, to cp.Vector) float64 {
	return from.Distance(to)
}

// Direction 返回从 from 指向 to 的单位向量以及归一化前的长度
// 两点重合时返回零向量和长度 0
func Direction(from, to cp.Vector) (cp.Vector, float64) {
	delta := to.Sub(from)
	length := delta.Length()
	if length == 0 {
		return cp.Vector{}, 0
	}
	return delta.Mult(1 / length), length
}

// Advance 沿给定角度前进 step 像素
func Advance(pos cp.Vector, angle, step float64) cp.Vector {
	return cp.Vector{
		X: pos.X + step*math.Cos(angle),
		Y: pos.Y + step*math.Sin(angle),
	}
}

// MoveToward 沿 from→to 方向前进 step 像素（不会检查是否越过终点）
func MoveToward(from, to cp.Vector, step float64) cp.Vector {
	dir, length := Direction(from, to)
	if length == 0 {
		return from
	}
	return from.Add(dir.Mult(step))
}
