package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据当前配置构建场景，配置热重载时再次调用
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重建场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Reload to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is disposed if it implements Disposable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	disposeScene(sm.currentScene)
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 通过工厂函数重建场景
// 构建失败时保留当前场景并返回错误
func (sm *SceneManager) Reload() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	if newScene == nil {
		return fmt.Errorf("scene factory returned nil")
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 场景已重建")
	return nil
}

// Close 释放当前场景
func (sm *SceneManager) Close() {
	disposeScene(sm.currentScene)
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func disposeScene(scene Scene) {
	if d, ok := scene.(Disposable); ok {
		d.Dispose()
	}
}
