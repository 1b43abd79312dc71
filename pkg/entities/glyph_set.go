package entities

import "github.com/decker502/fireworks/pkg/render"

// GlyphSet 一次点击生成的一组飞行字符
//
// 整组一起创建，所有字符完全透明后整组移除。
type GlyphSet struct {
	glyphs []*FlyingGlyph
}

// NewGlyphSet 按顺序组合字符
func NewGlyphSet(glyphs ...*FlyingGlyph) *GlyphSet {
	return &GlyphSet{glyphs: glyphs}
}

// Update 依次更新每个字符
func (s *GlyphSet) Update(nowMs int64) {
	for _, g := range s.glyphs {
		g.Update(nowMs)
	}
}

// Draw 依次绘制每个字符
func (s *GlyphSet) Draw(surface render.Surface) {
	for _, g := range s.glyphs {
		g.Draw(surface)
	}
}

// Glyphs 组内字符（按消息顺序）
func (s *GlyphSet) Glyphs() []*FlyingGlyph { return s.glyphs }

// Len 字符数
func (s *GlyphSet) Len() int { return len(s.glyphs) }

// Faded 所有字符都已完全透明时返回 true，空组视为已淡出
func (s *GlyphSet) Faded() bool {
	for _, g := range s.glyphs {
		if !g.Faded() {
			return false
		}
	}
	return true
}

// Done 与 Faded 相同，供实体池清理使用
func (s *GlyphSet) Done() bool { return s.Faded() }
