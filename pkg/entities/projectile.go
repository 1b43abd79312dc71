package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/jakecoffman/cp"
)

// Projectile 烟花弹
//
// 从发射点沿固定角度直线飞向目标点，剩余距离第一次小于速度时爆炸，
// 爆炸只发生一次，之后只更新和绘制自己的粒子。
type Projectile struct {
	start  cp.Vector
	pos    cp.Vector
	target cp.Vector
	angle  float64
	speed  float64
	radius float64
	color  color.NRGBA

	exploded  bool
	particles []*Particle

	burst config.BurstConfig
	rng   *rand.Rand
}

// NewProjectile 创建飞向 target 的烟花弹，飞行角度在此处一次性确定
func NewProjectile(start, target cp.Vector, c color.NRGBA, proj config.ProjectileConfig, burst config.BurstConfig, rng *rand.Rand) *Projectile {
	return &Projectile{
		start:  start,
		pos:    start,
		target: target,
		angle:  utils.Angle(start, target),
		speed:  proj.Speed,
		radius: proj.Radius,
		color:  c,
		burst:  burst,
		rng:    rng,
	}
}

// Update 推进一帧
// 烟花按帧运动，不使用时钟参数
func (p *Projectile) Update(_ int64) {
	if p.exploded {
		for _, pt := range p.particles {
			pt.Update()
		}
		return
	}

	if utils.Distance(p.pos, p.target) < p.speed {
		p.explode()
		return
	}
	p.pos = utils.Advance(p.pos, p.angle, p.speed)
}

func (p *Projectile) explode() {
	p.exploded = true
	p.particles = make([]*Particle, 0, p.burst.Count)
	for i := 0; i < p.burst.Count; i++ {
		p.particles = append(p.particles, NewParticle(p.pos.X, p.pos.Y, p.color, p.burst, p.rng))
	}
}

// Draw 爆炸前绘制弹体，爆炸后绘制全部粒子
func (p *Projectile) Draw(s render.Surface) {
	if !p.exploded {
		s.DrawDisc(math.Trunc(p.pos.X), math.Trunc(p.pos.Y), p.radius, p.color)
		return
	}
	for _, pt := range p.particles {
		pt.Draw(s)
	}
}

// Exploded 是否已经爆炸
func (p *Projectile) Exploded() bool { return p.exploded }

// Particles 爆炸产生的粒子（爆炸前为空）
func (p *Projectile) Particles() []*Particle { return p.particles }

// Position 当前位置
func (p *Projectile) Position() cp.Vector { return p.pos }

// Start 发射点
func (p *Projectile) Start() cp.Vector { return p.start }

// Target 目标点
func (p *Projectile) Target() cp.Vector { return p.target }

// Color 烟花颜色
func (p *Projectile) Color() color.NRGBA { return p.color }

// LiveParticles 仍可见的粒子数
func (p *Projectile) LiveParticles() int {
	n := 0
	for _, pt := range p.particles {
		if pt.Alive() {
			n++
		}
	}
	return n
}

// Done 已爆炸且所有粒子寿命耗尽
func (p *Projectile) Done() bool {
	return p.exploded && p.LiveParticles() == 0
}
