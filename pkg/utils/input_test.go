package utils

import "testing"

func TestPointerTrackerObserve(t *testing.T) {
	var tr PointerTracker

	tests := []struct {
		name      string
		x, y      int
		pressed   bool
		wantMoved bool
	}{
		{"第一帧总是移动", 400, 300, false, true},
		{"位置不变", 400, 300, false, false},
		{"移动", 410, 300, false, true},
		{"原地点击", 410, 300, true, false},
		{"移动并点击", 20, 30, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tr.observe(tt.x, tt.y, tt.pressed, false)
			if s.Moved != tt.wantMoved {
				t.Errorf("Moved = %v, 期望 %v", s.Moved, tt.wantMoved)
			}
			if s.JustPressed != tt.pressed || s.X != tt.x || s.Y != tt.y {
				t.Errorf("状态 = %+v", s)
			}
		})
	}
}

func TestPointerTrackerReset(t *testing.T) {
	var tr PointerTracker
	tr.observe(5, 5, false, false)
	tr.Reset()
	if s := tr.observe(5, 5, false, true); !s.Moved || !s.IsTouching {
		t.Errorf("Reset 后第一帧应报告移动, got %+v", s)
	}
}
