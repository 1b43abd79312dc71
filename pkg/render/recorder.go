package render

import "image/color"

// OpKind 绘制操作类型
type OpKind int

const (
	OpDisc OpKind = iota
	OpCircleOutline
	OpText
	OpImage
)

// String 返回操作类型名称（用于测试失败信息）
func (k OpKind) String() string {
	switch k {
	case OpDisc:
		return "disc"
	case OpCircleOutline:
		return "circle"
	case OpText:
		return "text"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op 一次绘制调用的记录
type Op struct {
	Kind   OpKind
	X, Y   float64
	Radius float64
	Stroke float64
	Text   string
	Font   Font
	Image  Image
	Color  color.NRGBA
}

// Recorder 记录所有绘制调用而不产生任何像素
// 用于在没有窗口的环境下验证绘制顺序和参数
type Recorder struct {
	Width  int
	Height int
	Ops    []Op
}

// NewRecorder 创建指定尺寸的记录表面
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) DrawDisc(cx, cy, radius float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpDisc, X: cx, Y: cy, Radius: radius, Color: c})
}

func (r *Recorder) DrawCircleOutline(cx, cy, radius, stroke float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircleOutline, X: cx, Y: cy, Radius: radius, Stroke: stroke, Color: c})
}

func (r *Recorder) DrawText(s string, cx, cy float64, font Font, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: cx, Y: cy, Text: s, Font: font, Color: c})
}

func (r *Recorder) DrawImage(img Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, Image: img})
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Reset 清空已记录的操作
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count 返回指定类型操作的数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts 按绘制顺序返回所有文本
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
