package main

import (
	"github.com/decker502/fireworks/pkg/director"
	"github.com/gdamore/tcell/v2"
)

// logicalMapper 把终端单元格坐标转换为逻辑像素坐标
type logicalMapper interface {
	PointerToLogical(col, row int) (x, y float64)
}

// inputTranslator 把 tcell 事件转换为动画事件
// tcell 只报告按键状态，点击在左键从松开变为按下时产生
type inputTranslator struct {
	buttonDown bool
}

func (t *inputTranslator) translate(ev tcell.Event, m logicalMapper) []director.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []director.Event{director.QuitEvent()}
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return []director.Event{director.QuitEvent()}
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := m.PointerToLogical(col, row)
		events := []director.Event{director.MoveEvent(x, y)}

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.buttonDown {
			events = append(events, director.ClickEvent(x, y))
		}
		t.buttonDown = down
		return events
	}
	return nil
}
