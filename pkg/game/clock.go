package game

import "time"

// Clock 单调毫秒时钟，飞行字符的淡出基于它计算
type Clock interface {
	NowMs() int64
}

// MonotonicClock 从创建时刻开始计时
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock 创建时钟
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs 返回自创建以来经过的毫秒数
func (c *MonotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock 手动推进的时钟，用于测试和固定步长回放
type ManualClock struct {
	Ms int64
}

// NowMs 实现 Clock
func (c *ManualClock) NowMs() int64 { return c.Ms }

// Advance 推进指定毫秒
func (c *ManualClock) Advance(ms int64) { c.Ms += ms }
