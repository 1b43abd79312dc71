package game

import (
	"testing"
	"time"
)

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()
	first := c.NowMs()
	if first < 0 {
		t.Fatalf("NowMs() = %d, 不应为负", first)
	}

	time.Sleep(5 * time.Millisecond)
	second := c.NowMs()
	if second < first+5 {
		t.Errorf("NowMs() = %d, 期望至少 %d", second, first+5)
	}
}

func TestManualClock(t *testing.T) {
	var c Clock = &ManualClock{}
	if c.NowMs() != 0 {
		t.Error("初始时间应为 0")
	}
	c.(*ManualClock).Advance(16)
	c.(*ManualClock).Advance(16)
	if got := c.NowMs(); got != 32 {
		t.Errorf("NowMs() = %d, 期望 32", got)
	}
}
