package server

import "minisnake/game"

// DrawOp 一条绘制指令，浏览器端按顺序在 canvas 上执行
type DrawOp struct {
	Op     string  `json:"op"` // clear / square / sprite / text / stroke
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Color  string  `json:"color,omitempty"`
	Sprite string  `json:"sprite,omitempty"`
	Text   string  `json:"text,omitempty"`
	Font   string  `json:"font,omitempty"`
	Align  string  `json:"align,omitempty"`
}

// Frame 出站帧消息
type Frame struct {
	Type string   `json:"type"`
	Ops  []DrawOp `json:"ops"`
}

// FrameRenderer 把一次 Draw 记录为指令列表，Present 时交给 sink
// 只在会话的 Tick 协程中使用
type FrameRenderer struct {
	ops  []DrawOp
	sink func(ops []DrawOp)
}

func NewFrameRenderer(sink func(ops []DrawOp)) *FrameRenderer {
	return &FrameRenderer{sink: sink}
}

func (f *FrameRenderer) ClearArea(w, h float64) {
	f.ops = append(f.ops, DrawOp{Op: "clear", W: w, H: h})
}

func (f *FrameRenderer) FillSquare(c game.Color, cx, cy, size float64) {
	f.ops = append(f.ops, DrawOp{Op: "square", Color: string(c), X: cx, Y: cy, Size: size})
}

func (f *FrameRenderer) DrawSprite(sp game.Sprite, cx, cy, size float64) {
	f.ops = append(f.ops, DrawOp{Op: "sprite", Sprite: sp.String(), X: cx, Y: cy, Size: size})
}

func (f *FrameRenderer) DrawText(text string, x, y float64, font game.Font, align game.Align) {
	f.ops = append(f.ops, DrawOp{Op: "text", Text: text, X: x, Y: y, Font: font.String(), Align: align.String()})
}

func (f *FrameRenderer) StrokeRect(x, y, w, h float64) {
	f.ops = append(f.ops, DrawOp{Op: "stroke", X: x, Y: y, W: w, H: h})
}

// Present 每个 Tick 调用一次，本帧没有绘制时 ops 为空
func (f *FrameRenderer) Present() {
	ops := f.ops
	f.ops = nil
	if f.sink != nil {
		f.sink(ops)
	}
}
