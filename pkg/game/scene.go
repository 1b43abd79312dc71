package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen scene (the fireworks display).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - 配置热重载后被新场景替换
//   - 程序退出
type Disposable interface {
	Dispose()
}
