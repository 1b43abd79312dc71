package sfx

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// Render 把有限长度的音效渲染为 16 位小端立体声 PCM
// 输出格式与 Ebitengine audio.NewPlayerFromBytes 的要求一致
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
