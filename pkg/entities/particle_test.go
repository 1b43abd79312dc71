package entities

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
)

var testRed = color.NRGBA{R: 255, A: 255}

func TestNewParticle_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	burst := config.DefaultConfig().Burst

	for i := 0; i < 500; i++ {
		p := NewParticle(10, 20, testRed, burst, rng)
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Fatalf("角度 %v 超出 [0, 2π)", p.Angle)
		}
		if p.Speed < 2 || p.Speed > 5 {
			t.Fatalf("速度 %v 超出 [2, 5]", p.Speed)
		}
		if p.Radius < 2 || p.Radius > 4 {
			t.Fatalf("半径 %d 超出 [2, 4]", p.Radius)
		}
		if p.Life < 20 || p.Life > 50 {
			t.Fatalf("寿命 %d 超出 [20, 50]", p.Life)
		}
		if p.Gravity != 0.1 {
			t.Fatalf("重力 = %v, 期望 0.1", p.Gravity)
		}
	}
}

func TestParticle_Update(t *testing.T) {
	p := &Particle{X: 0, Y: 0, Angle: 0, Speed: 4, Radius: 2, Life: 3, Gravity: 0.1, Drag: 0.95}

	p.Update()

	if p.Life != 2 {
		t.Errorf("Life = %d, 期望 2", p.Life)
	}
	if math.Abs(p.X-4) > 1e-9 {
		t.Errorf("X = %v, 期望 4", p.X)
	}
	if math.Abs(p.Y-0.1) > 1e-9 {
		t.Errorf("Y = %v, 期望 0.1（仅重力）", p.Y)
	}
	if math.Abs(p.Speed-3.8) > 1e-9 {
		t.Errorf("Speed = %v, 期望 3.8", p.Speed)
	}
}

func TestParticle_LifeStrictlyDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := NewParticle(0, 0, testRed, config.DefaultConfig().Burst, rng)

	prev := p.Life
	for i := 0; i < 80; i++ {
		p.Update()
		if p.Life != prev-1 {
			t.Fatalf("第 %d 次更新后 Life = %d, 期望 %d", i+1, p.Life, prev-1)
		}
		prev = p.Life
	}
}

func TestParticle_Draw(t *testing.T) {
	tests := []struct {
		name    string
		life    int
		wantOps int
	}{
		{"存活时绘制", 1, 1},
		{"寿命为零不绘制", 0, 0},
		{"寿命为负不绘制", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render.NewRecorder(800, 600)
			p := &Particle{X: 10.9, Y: -3.7, Color: testRed, Radius: 3, Life: tt.life}
			p.Draw(rec)

			if len(rec.Ops) != tt.wantOps {
				t.Fatalf("绘制次数 = %d, 期望 %d", len(rec.Ops), tt.wantOps)
			}
			if tt.wantOps == 0 {
				return
			}
			op := rec.Ops[0]
			// 向零取整
			if op.X != 10 || op.Y != -3 {
				t.Errorf("绘制位置 = (%v, %v), 期望 (10, -3)", op.X, op.Y)
			}
			if op.Radius != 3 || op.Color != testRed {
				t.Errorf("绘制参数错误: %+v", op)
			}
		})
	}
}
