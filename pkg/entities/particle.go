package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
)

// Particle 爆炸产生的单个火花
//
// 每次 Update 寿命减一、按当前角度和速度移动、叠加重力并衰减速度。
// 寿命耗尽后不再绘制，但仍保留在所属烟花中，直到烟花本身被移除。
type Particle struct {
	X, Y    float64
	Color   color.NRGBA
	Angle   float64 // 运动方向（弧度）
	Speed   float64
	Radius  int
	Life    int
	Gravity float64
	Drag    float64 // 每帧速度乘数
}

// NewParticle 在 (x, y) 按爆炸参数随机生成一个粒子
func NewParticle(x, y float64, c color.NRGBA, burst config.BurstConfig, rng *rand.Rand) *Particle {
	return &Particle{
		X:       x,
		Y:       y,
		Color:   c,
		Angle:   rng.Float64() * 2 * math.Pi,
		Speed:   burst.Speed.Float(rng),
		Radius:  burst.Radius.Int(rng),
		Life:    burst.Life.Int(rng),
		Gravity: burst.Gravity,
		Drag:    burst.Drag,
	}
}

// Update 推进一帧
func (p *Particle) Update() {
	p.Life--
	p.X += p.Speed * math.Cos(p.Angle)
	p.Y += p.Speed*math.Sin(p.Angle) + p.Gravity
	p.Speed *= p.Drag
}

// Draw 寿命未耗尽时在取整后的位置绘制实心圆
func (p *Particle) Draw(s render.Surface) {
	if !p.Alive() {
		return
	}
	s.DrawDisc(math.Trunc(p.X), math.Trunc(p.Y), float64(p.Radius), p.Color)
}

// Alive 粒子是否仍可见
func (p *Particle) Alive() bool {
	return p.Life > 0
}
