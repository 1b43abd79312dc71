package entities

import (
	"image/color"
	"math"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/utils"
	"github.com/jakecoffman/cp"
)

// FlyingGlyph 飞向终点后按时钟淡出的单个字符
//
// 运动按帧推进；淡出按传入的毫秒时钟计算，与帧率无关。
type FlyingGlyph struct {
	char  rune
	pos   cp.Vector
	start cp.Vector
	end   cp.Vector
	font  render.Font
	color color.NRGBA

	speed  float64
	fadeMs int64

	reached   bool
	alpha     float64
	fadeStart int64
	fading    bool
}

// NewFlyingGlyph 创建从 start 飞向 end 的字符
// font 和颜色由调用方持有，这里只借用
func NewFlyingGlyph(ch rune, start, end cp.Vector, font render.Font, c color.NRGBA, cfg config.GlyphConfig) *FlyingGlyph {
	return &FlyingGlyph{
		char:   ch,
		pos:    start,
		start:  start,
		end:    end,
		font:   font,
		color:  c,
		speed:  cfg.Speed,
		fadeMs: cfg.FadeMs,
		alpha:  utils.MaxAlpha,
	}
}

// Update 推进一帧
//
// 未到达：剩余距离小于速度时吸附到终点并记录淡出开始时间，否则沿方向前进 speed。
// 已到达：按 nowMs 与淡出开始时间的差值线性降低透明度，超过淡出时长后为 0。
func (g *FlyingGlyph) Update(nowMs int64) {
	if !g.reached {
		dir, length := utils.Direction(g.pos, g.end)
		if length < g.speed {
			g.pos = g.end
			g.reached = true
			g.fadeStart = nowMs
			g.fading = true
			return
		}
		g.pos = g.pos.Add(dir.Mult(g.speed))
		return
	}

	if !g.fading {
		return
	}
	elapsed := nowMs - g.fadeStart
	alpha := 0.0
	if elapsed < g.fadeMs {
		alpha = utils.FadeAlpha(float64(elapsed) / float64(g.fadeMs))
	}
	// 透明度只降不升，时钟回拨也不会重新显现
	g.alpha = math.Min(g.alpha, alpha)
}

// Draw 以当前位置为中心绘制字符
func (g *FlyingGlyph) Draw(s render.Surface) {
	c := g.color
	c.A = utils.AlphaToUint8(g.alpha)
	s.DrawText(string(g.char), g.pos.X, g.pos.Y, g.font, c)
}

// Char 字符
func (g *FlyingGlyph) Char() rune { return g.char }

// Position 当前位置
func (g *FlyingGlyph) Position() cp.Vector { return g.pos }

// Start 起点
func (g *FlyingGlyph) Start() cp.Vector { return g.start }

// End 终点
func (g *FlyingGlyph) End() cp.Vector { return g.end }

// Reached 是否已到达终点
func (g *FlyingGlyph) Reached() bool { return g.reached }

// Alpha 当前透明度（0~255）
func (g *FlyingGlyph) Alpha() float64 { return g.alpha }

// Faded 是否已完全透明
func (g *FlyingGlyph) Faded() bool { return g.alpha == 0 }
