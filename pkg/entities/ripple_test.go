package entities

import (
	"testing"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/utils"
)

// TestRipple_ReachesMaxAfter25Updates (100,100) 处的涟漪 25 次更新后半径为 50
func TestRipple_ReachesMaxAfter25Updates(t *testing.T) {
	r := NewRipple(utils.Vec(100, 100), config.DefaultConfig().Ripple)

	prev := r.Radius()
	for i := 1; i <= 25; i++ {
		r.Update(0)
		if r.Radius()-prev != 2 {
			t.Fatalf("第 %d 次更新半径增加 %v, 期望 2", i, r.Radius()-prev)
		}
		prev = r.Radius()
	}

	if r.Radius() != 50 {
		t.Fatalf("Radius = %v, 期望 50", r.Radius())
	}
	if r.Alpha() != 0 {
		t.Errorf("Alpha = %v, 期望 0", r.Alpha())
	}
	if !r.Done() {
		t.Error("达到最大半径后应结束")
	}

	rec := render.NewRecorder(800, 600)
	r.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("达到最大半径后不应绘制, 实际 %d 次", len(rec.Ops))
	}
}

func TestRipple_FrozenAtMax(t *testing.T) {
	r := NewRipple(utils.Vec(0, 0), config.DefaultConfig().Ripple)
	for i := 0; i < 100; i++ {
		before := r.Radius()
		r.Update(0)
		if r.Radius() < before {
			t.Fatalf("半径不应减小: %v -> %v", before, r.Radius())
		}
		if r.Radius() > 50 {
			t.Fatalf("半径 %v 超过最大值", r.Radius())
		}
	}
}

func TestRipple_Draw(t *testing.T) {
	r := NewRipple(utils.Vec(100, 100), config.DefaultConfig().Ripple)
	r.Update(0)

	rec := render.NewRecorder(800, 600)
	r.Draw(rec)

	if len(rec.Ops) != 1 {
		t.Fatalf("绘制次数 = %d, 期望 1", len(rec.Ops))
	}
	op := rec.Ops[0]
	if op.Kind != render.OpCircleOutline {
		t.Fatalf("绘制类型 = %s, 期望 circle", op.Kind)
	}
	if op.X != 100 || op.Y != 100 || op.Radius != 2 || op.Stroke != 2 {
		t.Errorf("绘制参数错误: %+v", op)
	}
	// 255 - 2/50*255 = 244.8
	if op.Color.A != 245 {
		t.Errorf("透明度 = %d, 期望 245", op.Color.A)
	}
	if op.Color.R != 255 || op.Color.G != 255 || op.Color.B != 255 {
		t.Errorf("颜色应为白色: %v", op.Color)
	}
}
