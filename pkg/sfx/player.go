package sfx

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer 通过系统扬声器播放音效（终端后端使用）
//
// 未初始化或初始化失败时所有播放调用都是空操作。
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	bangs       int64
}

// NewSpeakerPlayer 创建播放器，volume 取值 0~1
func NewSpeakerPlayer(volume float64) *SpeakerPlayer {
	return &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize 初始化扬声器
// 没有音频设备时返回错误，调用方可以忽略并继续运行
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[SFX] Speaker initialized at %d Hz", SampleRate)
	return nil
}

// SetMuted 静音开关
func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// PlayLaunch 实现 director.SoundPlayer
func (p *SpeakerPlayer) PlayLaunch() {
	p.play(Launch(SampleRate))
}

// PlayBang 实现 director.SoundPlayer
func (p *SpeakerPlayer) PlayBang() {
	p.mu.Lock()
	p.bangs++
	seed := p.bangs
	p.mu.Unlock()
	p.play(Bang(SampleRate, seed))
}

func (p *SpeakerPlayer) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || p.volume <= 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(WithVolume(s, p.volume))
	speaker.Unlock()
}

// Close 停止播放并释放扬声器
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// WithVolume 按线性音量（0~1）缩放音效
func WithVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Silent: true}
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(volume),
	}
}
