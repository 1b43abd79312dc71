package director

import "fmt"

// EventKind 输入事件类型
type EventKind int

const (
	// EventPointerMove 指针移动
	EventPointerMove EventKind = iota
	// EventClick 点击（按下）
	EventClick
	// EventQuit 退出请求
	EventQuit
)

// Event 宿主每帧送入的输入事件
type Event struct {
	Kind EventKind
	X, Y float64
}

// MoveEvent 构造指针移动事件
func MoveEvent(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// ClickEvent 构造点击事件
func ClickEvent(x, y float64) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// QuitEvent 构造退出事件
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func (e Event) String() string {
	switch e.Kind {
	case EventPointerMove:
		return fmt.Sprintf("move(%.0f, %.0f)", e.X, e.Y)
	case EventClick:
		return fmt.Sprintf("click(%.0f, %.0f)", e.X, e.Y)
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// String 调试叠加层显示的多行统计文本
func (s Stats) String() string {
	return fmt.Sprintf("clicks: %d\nprojectiles: %d\nparticles: %d\nripples: %d\nglyph sets: %d (%d glyphs)",
		s.Clicks, s.Projectiles, s.LiveParticles, s.Ripples, s.GlyphSets, s.Glyphs)
}
