// Package director 驱动烟花演示的逐帧循环
//
// Director 持有烟花、涟漪和飞行字符组三个实体池，处理输入事件，
// 按固定图层顺序更新、绘制并清理实体。它是这些集合唯一的修改者，
// 所有方法都必须在同一个 goroutine（帧循环）中调用。
package director

import (
	"log"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/entities"
	"github.com/decker502/fireworks/pkg/pool"
	"github.com/decker502/fireworks/pkg/render"
	"github.com/decker502/fireworks/pkg/utils"
)

// Assets 宿主加载的只读资源
// Background 和 Cursor 为 nil 时跳过绘制
type Assets struct {
	Background render.Image
	Cursor     render.Image
	Title      render.Font
	Small      render.Font
}

// SoundPlayer 可选的音效输出
type SoundPlayer interface {
	// PlayLaunch 点击发射烟花时调用
	PlayLaunch()
	// PlayBang 烟花爆炸时调用
	PlayBang()
}

// Stats 当前实体数量统计
type Stats struct {
	Projectiles   int
	LiveParticles int
	Ripples       int
	GlyphSets     int
	Glyphs        int
	Clicks        int
}

// Option 构造选项
type Option func(*Director)

// WithRand 使用指定的随机源（测试中用于得到确定结果）
func WithRand(rng *rand.Rand) Option {
	return func(d *Director) { d.rng = rng }
}

// WithSound 设置音效输出
func WithSound(s SoundPlayer) Option {
	return func(d *Director) { d.sound = s }
}

// Director 动画导演
type Director struct {
	cfg    config.Config
	assets Assets
	rng    *rand.Rand
	sound  SoundPlayer

	projectiles *pool.Pool[*entities.Projectile]
	ripples     *pool.Pool[*entities.Ripple]
	glyphSets   *pool.Pool[*entities.GlyphSet]

	cursorX, cursorY float64
	quit             bool
	clicks           int
}

// New 创建 Director
// 光标初始位于屏幕中心
func New(cfg config.Config, assets Assets, opts ...Option) *Director {
	retention := PolicyFor(cfg.Retention)
	d := &Director{
		cfg:         cfg,
		assets:      assets,
		projectiles: pool.New[*entities.Projectile](retention),
		ripples:     pool.New[*entities.Ripple](retention),
		// 字符组始终在完全淡出后移除
		glyphSets: pool.New[*entities.GlyphSet](pool.DropExpired()),
	}
	d.cursorX, d.cursorY = cfg.Center()

	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		d.rng = rand.New(rand.NewSource(seed))
	}

	log.Printf("[Director] Created: %dx%d, retention=%s", cfg.Window.Width, cfg.Window.Height, cfg.Retention)
	return d
}

// PolicyFor 将配置中的清理策略转换为实体池策略
func PolicyFor(r config.Retention) pool.Policy {
	switch r.Mode {
	case config.RetainLive:
		return pool.DropExpired()
	case config.RetainCapped:
		return pool.CapOldest(r.Cap)
	default:
		return pool.KeepAll
	}
}

// HandleEvent 处理一个输入事件
// 点击位置不做范围检查，屏幕外的点击同样会生成实体
func (d *Director) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventPointerMove:
		d.cursorX, d.cursorY = ev.X, ev.Y
	case EventClick:
		d.spawn(ev.X, ev.Y)
	case EventQuit:
		d.quit = true
	}
}

// spawn 点击生成：一枚烟花、一个涟漪和一组飞行字符
func (d *Director) spawn(x, y float64) {
	d.clicks++
	target := utils.Vec(x, y)

	lx, ly := d.cfg.LaunchPoint()
	color := config.Palette[d.rng.Intn(len(config.Palette))]
	d.projectiles.Add(entities.NewProjectile(utils.Vec(lx, ly), target, color, d.cfg.Projectile, d.cfg.Burst, d.rng))

	d.ripples.Add(entities.NewRipple(target, d.cfg.Ripple))

	d.glyphSets.Add(d.layoutMessage(config.Message))

	if d.sound != nil {
		d.sound.PlayLaunch()
	}
	log.Printf("[Director] Click at (%.0f, %.0f): projectiles=%d ripples=%d glyphSets=%d",
		x, y, d.projectiles.Len(), d.ripples.Len(), d.glyphSets.Len())
}

// layoutMessage 为消息的每个字符创建飞行字符
//
// 所有字符从屏幕中心下方的同一点出发，终点排成一行：
// 第 i 个字符的终点 X = 中心X - 字符数*HalfAdvance + i*Pitch
func (d *Director) layoutMessage(message string) *entities.GlyphSet {
	cx, cy := d.cfg.Center()
	g := d.cfg.Glyph

	start := utils.Vec(cx, cy+g.StartOffsetY)
	endY := cy + g.EndOffsetY
	n := float64(utf8.RuneCountInString(message))

	glyphs := make([]*entities.FlyingGlyph, 0, int(n))
	i := 0
	for _, ch := range message {
		endX := cx - n*g.HalfAdvance + float64(i)*g.Pitch
		glyphs = append(glyphs, entities.NewFlyingGlyph(ch, start, utils.Vec(endX, endY), d.assets.Small, config.Gold, g))
		i++
	}
	return entities.NewGlyphSet(glyphs...)
}

// Update 推进一帧
//
// 按创建顺序更新烟花、涟漪和字符组，然后移除完全淡出的字符组，
// 最后对烟花和涟漪应用配置的清理策略（默认不清理）。
func (d *Director) Update(nowMs int64) {
	d.projectiles.Each(func(p *entities.Projectile) {
		wasExploded := p.Exploded()
		p.Update(nowMs)
		if !wasExploded && p.Exploded() && d.sound != nil {
			d.sound.PlayBang()
		}
	})
	d.ripples.UpdateAll(nowMs)
	d.glyphSets.UpdateAll(nowMs)

	d.glyphSets.Prune()
	d.projectiles.Prune()
	d.ripples.Prune()
}

// Draw 按图层顺序绘制整帧
//
// 背景、标题、烟花、涟漪、底部文字、飞行字符、光标。
func (d *Director) Draw(s render.Surface) {
	if d.assets.Background != nil {
		s.DrawImage(d.assets.Background, 0, 0)
	}

	cx, cy := d.cfg.Center()
	w, h := float64(d.cfg.Window.Width), float64(d.cfg.Window.Height)
	s.DrawText(config.TitleLine, cx, cy-50, d.assets.Title, config.Gold)
	s.DrawText(config.YearLine, cx, cy+20, d.assets.Title, config.Gold)

	d.projectiles.DrawAll(s)
	d.ripples.DrawAll(s)

	s.DrawText(config.Footer, w/2, h-50, d.assets.Small, config.Gold)

	d.glyphSets.DrawAll(s)

	if d.assets.Cursor != nil {
		b := d.assets.Cursor.Bounds()
		s.DrawImage(d.assets.Cursor, d.cursorX-float64(b.Dx()/2), d.cursorY-float64(b.Dy()/2))
	}
}

// Frame 完整的一帧：先更新再绘制
func (d *Director) Frame(nowMs int64, s render.Surface) {
	d.Update(nowMs)
	d.Draw(s)
}

// Quit 是否收到过退出事件
func (d *Director) Quit() bool {
	return d.quit
}

// Cursor 最近一次指针位置
func (d *Director) Cursor() (x, y float64) {
	return d.cursorX, d.cursorY
}

// Config 当前使用的配置
func (d *Director) Config() config.Config {
	return d.cfg
}

// Projectiles 按创建顺序返回所有烟花
func (d *Director) Projectiles() []*entities.Projectile {
	out := make([]*entities.Projectile, 0, d.projectiles.Len())
	d.projectiles.Each(func(p *entities.Projectile) { out = append(out, p) })
	return out
}

// Ripples 按创建顺序返回所有涟漪
func (d *Director) Ripples() []*entities.Ripple {
	out := make([]*entities.Ripple, 0, d.ripples.Len())
	d.ripples.Each(func(r *entities.Ripple) { out = append(out, r) })
	return out
}

// GlyphSets 按创建顺序返回所有字符组
func (d *Director) GlyphSets() []*entities.GlyphSet {
	out := make([]*entities.GlyphSet, 0, d.glyphSets.Len())
	d.glyphSets.Each(func(s *entities.GlyphSet) { out = append(out, s) })
	return out
}

// Stats 返回当前实体数量
func (d *Director) Stats() Stats {
	st := Stats{
		Projectiles: d.projectiles.Len(),
		Ripples:     d.ripples.Len(),
		GlyphSets:   d.glyphSets.Len(),
		Clicks:      d.clicks,
	}
	d.projectiles.Each(func(p *entities.Projectile) {
		st.LiveParticles += p.LiveParticles()
	})
	d.glyphSets.Each(func(s *entities.GlyphSet) {
		st.Glyphs += s.Len()
	})
	return st
}
