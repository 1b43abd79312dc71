package game

import (
	"log"

	"github.com/decker502/fireworks/pkg/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundLaunch = "launch" // 发射（上升的哨音）
	SoundBang   = "bang"   // 爆炸
)

// bangVariants 预渲染的爆炸音效数量，轮流播放避免听起来完全一样
const bangVariants = 4

// AudioManager 音频管理器
// 职责：
//   - 预渲染合成音效（pkg/sfx）为 PCM 数据
//   - 从 SettingsManager 读取开关和音量
//   - 实现 director.SoundPlayer，供动画导演在发射和爆炸时调用
//
// context 为 nil 时（无音频设备或测试环境）所有播放调用都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil
	clips           map[string][]byte
	bangClips       [][]byte
	bangIndex       int
	active          []*audio.Player // 正在播放的播放器
}

// NewAudioContext 返回进程内唯一的音频上下文
func NewAudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(int(sfx.SampleRate))
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文（可为 nil）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		clips:           make(map[string][]byte),
	}

	am.clips[SoundLaunch] = sfx.Render(sfx.Launch(sfx.SampleRate))
	for i := 0; i < bangVariants; i++ {
		am.bangClips = append(am.bangClips, sfx.Render(sfx.Bang(sfx.SampleRate, int64(i+1))))
	}
	am.clips[SoundBang] = am.bangClips[0]
	return am
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后释放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled() {
		return false
	}

	clip := am.clip(soundID)
	if clip == nil {
		log.Printf("[AudioManager] Warning: unknown sound %s", soundID)
		return false
	}
	if am.context == nil {
		return false
	}

	am.reap()

	player := am.context.NewPlayerFromBytes(clip)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.active = append(am.active, player)
	return true
}

// PlayLaunch 实现 director.SoundPlayer
func (am *AudioManager) PlayLaunch() {
	am.PlaySound(SoundLaunch)
}

// PlayBang 实现 director.SoundPlayer
func (am *AudioManager) PlayBang() {
	am.PlaySound(SoundBang)
}

// ActiveCount 返回仍在播放的音效数量
func (am *AudioManager) ActiveCount() int {
	am.reap()
	return len(am.active)
}

// StopAll 停止并释放所有正在播放的音效
func (am *AudioManager) StopAll() {
	for _, p := range am.active {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close player: %v", err)
		}
	}
	am.active = am.active[:0]
}

// clip 返回音效数据，爆炸音效轮流使用预渲染的变体
func (am *AudioManager) clip(soundID string) []byte {
	if soundID == SoundBang && len(am.bangClips) > 0 {
		c := am.bangClips[am.bangIndex%len(am.bangClips)]
		am.bangIndex++
		return c
	}
	return am.clips[soundID]
}

// reap 释放已播放完毕的播放器
func (am *AudioManager) reap() {
	live := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	for i := len(live); i < len(am.active); i++ {
		am.active[i] = nil
	}
	am.active = live
}

func (am *AudioManager) enabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundVolume 获取音效音量（0.0 - 1.0）
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
