// Package sfx 程序化生成烟花音效
//
// 音效由 beep.Streamer 实时合成，不依赖任何音频文件：
// 发射是一段上扬的哨音，爆炸是指数衰减的噪声加低频轰鸣。
// 桌面端把音效预先渲染成 PCM 交给 Ebitengine 播放，
// 终端端通过 beep/speaker 直接播放。
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 所有音效使用的采样率（与 Ebitengine 音频上下文一致）
const SampleRate = beep.SampleRate(48000)

const (
	launchDuration = 450 * time.Millisecond
	bangDuration   = 900 * time.Millisecond
)

// LaunchGenerator 生成频率上扬的哨音
type LaunchGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewLaunchGenerator 创建发射哨音生成器
func NewLaunchGenerator(sr beep.SampleRate) *LaunchGenerator {
	return &LaunchGenerator{sr: sr, total: sr.N(launchDuration)}
}

func (g *LaunchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)

		// 600Hz 上扬到 1800Hz，相位累加避免频率变化时爆音
		freq := 600 + 1200*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// 快速起音，末尾淡出
		envelope := math.Min(progress/0.05, 1) * (1 - progress)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaunchGenerator) Err() error {
	return nil
}

// BangGenerator 生成爆炸声：白噪声和低频轰鸣，指数衰减
type BangGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *rand.Rand
}

// NewBangGenerator 创建爆炸声生成器
func NewBangGenerator(sr beep.SampleRate, seed int64) *BangGenerator {
	return &BangGenerator{sr: sr, rng: rand.New(rand.NewSource(seed))}
}

func (g *BangGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := 0.5 * envelope * (0.6*noise + rumble)

		// 左右声道噪声略有不同，听起来更开阔
		samples[i][0] = sample
		samples[i][1] = 0.5 * envelope * (0.6*(g.rng.Float64()*2-1) + rumble)
		g.pos++
	}
	return len(samples), true
}

func (g *BangGenerator) Err() error {
	return nil
}

// Launch 返回一段完整的发射音效
func Launch(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(launchDuration), NewLaunchGenerator(sr))
}

// Bang 返回一段完整的爆炸音效
func Bang(sr beep.SampleRate, seed int64) beep.Streamer {
	return beep.Take(sr.N(bangDuration), NewBangGenerator(sr, seed))
}
