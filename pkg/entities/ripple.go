package entities

import (
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/jakecoffman/cp"
)

// Ripple 点击处向外扩散并逐渐透明的圆环
type Ripple struct {
	pos       cp.Vector
	radius    float64
	maxRadius float64
	growth    float64
	stroke    float64
	alpha     float64
}

// NewRipple 在 pos 创建半径为 0 的涟漪
func NewRipple(pos cp.Vector, cfg config.RippleConfig) *Ripple {
	return &Ripple{
		pos:       pos,
		maxRadius: cfg.MaxRadius,
		growth:    cfg.Growth,
		stroke:    cfg.Stroke,
		alpha:     utils.MaxAlpha,
	}
}

// Update 半径未达到最大值时增长并重新计算透明度，之后保持不变
func (r *Ripple) Update(_ int64) {
	if r.radius >= r.maxRadius {
		return
	}
	r.radius += r.growth
	r.alpha = utils.FadeAlpha(r.radius / r.maxRadius)
}

// Draw 半径未达到最大值时绘制白色圆环
func (r *Ripple) Draw(s render.Surface) {
	if r.Done() {
		return
	}
	c := config.White
	c.A = utils.AlphaToUint8(r.alpha)
	s.DrawCircleOutline(r.pos.X, r.pos.Y, r.radius, r.stroke, c)
}

// Radius 当前半径
func (r *Ripple) Radius() float64 { return r.radius }

// Alpha 当前透明度（0~255）
func (r *Ripple) Alpha() float64 { return r.alpha }

// Position 锚点
func (r *Ripple) Position() cp.Vector { return r.pos }

// Done 已扩散到最大半径
func (r *Ripple) Done() bool {
	return r.radius >= r.maxRadius
}
