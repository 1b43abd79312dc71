package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/fireworks/internal/particle"
	"github.com/decker502/fireworks/pkg/embedded"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径（嵌入资源中也存在同名文件）
const DefaultConfigPath = "assets/config/fireworks.yaml"

// 固定文案和颜色，不从配置文件读取
const (
	// Message 每次点击生成的飞行字符消息
	Message = "From Chandra's family"
	// TitleLine 主标题第一行
	TitleLine = "Happy New Year"
	// YearLine 主标题第二行
	YearLine = "2025"
	// Footer 底部祝福语
	Footer = "Wishing You a Wonderful Year Ahead!"
)

var (
	// Gold 标题、底部文字和飞行字符的颜色
	Gold = color.NRGBA{R: 255, G: 215, B: 0, A: 255}

	// White 涟漪颜色（透明度由涟漪自身计算）
	White = nrgba(colornames.White)

	// Palette 烟花随机颜色表
	Palette = []color.NRGBA{
		nrgba(colornames.Red),
		nrgba(colornames.Yellow),
		nrgba(colornames.Blue),
		nrgba(colornames.Lime),
		nrgba(colornames.Purple),
		nrgba(colornames.Orange),
		nrgba(colornames.White),
	}
)

// colornames 中都是不透明色，直接转换即可
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Config 烟花演示配置
//
// 构造完成后不再修改，按值传给 Director。
// 配置文件位置: assets/config/fireworks.yaml
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Burst      BurstConfig      `yaml:"burst"`
	Ripple     RippleConfig     `yaml:"ripple"`
	Glyph      GlyphConfig      `yaml:"glyph"`

	// Retention 烟花和涟漪集合的清理策略
	Retention Retention `yaml:"retention"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// Resources 资源清单路径
	Resources string `yaml:"resources"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// ProjectileConfig 烟花弹飞行参数
type ProjectileConfig struct {
	// Speed 每帧飞行距离（像素）
	Speed float64 `yaml:"speed"`
	// Radius 未爆炸时的绘制半径
	Radius float64 `yaml:"radius"`
}

// BurstConfig 爆炸粒子参数
//
// 数值字段支持固定值（"0.1"）和范围（"[2 5]"）两种写法。
type BurstConfig struct {
	Count   int            `yaml:"count"`
	Speed   particle.Range `yaml:"speed"`
	Radius  particle.Range `yaml:"radius"`
	Life    particle.Range `yaml:"life"`
	Gravity float64        `yaml:"gravity"`
	// Drag 每帧速度衰减系数
	Drag float64 `yaml:"drag"`
}

// RippleConfig 涟漪参数
type RippleConfig struct {
	MaxRadius float64 `yaml:"maxRadius"`
	Growth    float64 `yaml:"growth"`
	Stroke    float64 `yaml:"stroke"`
}

// GlyphConfig 飞行字符参数
type GlyphConfig struct {
	Speed float64 `yaml:"speed"`
	// Pitch 相邻字符终点的水平间距
	Pitch float64 `yaml:"pitch"`
	// HalfAdvance 计算整行起始X时每个字符占用的半宽
	HalfAdvance float64 `yaml:"halfAdvance"`
	// FadeMs 到达终点后的淡出时长（毫秒）
	FadeMs int64 `yaml:"fadeMs"`
	// StartOffsetY 起点相对屏幕中心的Y偏移
	StartOffsetY float64 `yaml:"startOffsetY"`
	// EndOffsetY 终点行相对屏幕中心的Y偏移
	EndOffsetY float64 `yaml:"endOffsetY"`
}

// RetentionMode 集合清理模式
type RetentionMode string

const (
	// RetainAll 从不清理（默认）
	RetainAll RetentionMode = "keep-all"
	// RetainLive 清理已结束的实体
	RetainLive RetentionMode = "drop-expired"
	// RetainCapped 清理已结束的实体，并只保留最新的 Cap 个
	RetainCapped RetentionMode = "cap"
)

// Retention 清理策略，YAML 写法: "keep-all"、"drop-expired" 或 "cap:200"
type Retention struct {
	Mode RetentionMode
	Cap  int
}

// ParseRetention 解析清理策略字符串
func ParseRetention(s string) (Retention, error) {
	s = strings.TrimSpace(s)
	switch RetentionMode(s) {
	case "", RetainAll:
		return Retention{Mode: RetainAll}, nil
	case RetainLive:
		return Retention{Mode: RetainLive}, nil
	}

	if rest, ok := strings.CutPrefix(s, string(RetainCapped)+":"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return Retention{}, fmt.Errorf("invalid retention cap %q: %w", s, err)
		}
		if n <= 0 {
			return Retention{}, fmt.Errorf("retention cap must be positive, got %d", n)
		}
		return Retention{Mode: RetainCapped, Cap: n}, nil
	}
	return Retention{}, fmt.Errorf("unknown retention policy %q", s)
}

// String 返回 YAML 写法
func (r Retention) String() string {
	if r.Mode == RetainCapped {
		return fmt.Sprintf("%s:%d", r.Mode, r.Cap)
	}
	if r.Mode == "" {
		return string(RetainAll)
	}
	return string(r.Mode)
}

// UnmarshalYAML 解析标量写法
func (r *Retention) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: retention must be a scalar", node.Line)
	}
	parsed, err := ParseRetention(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML 输出标量写法
func (r Retention) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// DefaultConfig 返回默认配置（800x600，60 FPS，不清理烟花和涟漪）
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Happy New Year 2025",
			FPS:    60,
		},
		Projectile: ProjectileConfig{
			Speed:  10,
			Radius: 5,
		},
		Burst: BurstConfig{
			Count:   50,
			Speed:   particle.Between(2, 5),
			Radius:  particle.Between(2, 4),
			Life:    particle.Between(20, 50),
			Gravity: 0.1,
			Drag:    0.95,
		},
		Ripple: RippleConfig{
			MaxRadius: 50,
			Growth:    2,
			Stroke:    2,
		},
		Glyph: GlyphConfig{
			Speed:        5,
			Pitch:        26,
			HalfAdvance:  12,
			FadeMs:       2000,
			StartOffsetY: 200,
			EndOffsetY:   100,
		},
		Retention: Retention{Mode: RetainAll},
		Resources: "assets/config/resources.yaml",
	}
}

// LoadConfig 加载烟花配置
//
// 文件中未出现的字段保留默认值。磁盘文件优先，不存在时读取嵌入资源。
//
// 参数:
//   - path: 配置文件路径（如 "assets/config/fireworks.yaml"）
//
// 返回:
//   - Config: 合并后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadConfig(path string) (Config, error) {
	data, err := embedded.ReadAsset(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read fireworks config: %w", err)
	}
	return LoadConfigBytes(data)
}

// LoadConfigBytes 从内存中的 YAML 数据加载配置
func LoadConfigBytes(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse fireworks config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid fireworks config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile speed must be positive, got %.2f", c.Projectile.Speed)
	}
	if c.Burst.Count < 0 {
		return fmt.Errorf("burst count must not be negative, got %d", c.Burst.Count)
	}
	if c.Burst.Speed.Min < 0 {
		return fmt.Errorf("burst speed must not be negative, got %s", c.Burst.Speed)
	}
	if c.Burst.Radius.Min < 0 {
		return fmt.Errorf("burst radius must not be negative, got %s", c.Burst.Radius)
	}
	if c.Burst.Drag <= 0 || c.Burst.Drag > 1 {
		return fmt.Errorf("burst drag must be in (0, 1], got %.2f", c.Burst.Drag)
	}
	if c.Ripple.MaxRadius <= 0 || c.Ripple.Growth <= 0 {
		return fmt.Errorf("ripple maxRadius and growth must be positive, got %.1f/%.1f",
			c.Ripple.MaxRadius, c.Ripple.Growth)
	}
	if c.Glyph.Speed <= 0 {
		return fmt.Errorf("glyph speed must be positive, got %.2f", c.Glyph.Speed)
	}
	if c.Glyph.FadeMs <= 0 {
		return fmt.Errorf("glyph fadeMs must be positive, got %d", c.Glyph.FadeMs)
	}
	return nil
}

// LaunchPoint 烟花发射点（屏幕底部中央）
func (c Config) LaunchPoint() (x, y float64) {
	return float64(c.Window.Width / 2), float64(c.Window.Height)
}

// Center 屏幕中心（整数除法，与像素网格对齐）
func (c Config) Center() (x, y float64) {
	return float64(c.Window.Width / 2), float64(c.Window.Height / 2)
}
