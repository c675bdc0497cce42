package game

import "fmt"

// Color 十六进制颜色，如 "#37BA2E"
type Color string

const (
	ColorPart     Color = "#37BA2E"
	ColorHead     Color = "#1D8815"
	ColorLifeTime Color = "#FF0000"
)

// Sprite 位图句柄，由各渲染端自行决定如何呈现
type Sprite int

const (
	SpriteLogo Sprite = iota
	SpriteApple
	SpriteBomb
)

func (s Sprite) String() string {
	switch s {
	case SpriteLogo:
		return "snake"
	case SpriteApple:
		return "apple"
	case SpriteBomb:
		return "bomb"
	}
	return fmt.Sprintf("sprite(%d)", int(s))
}

// Align 文本水平对齐
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Font 字号（像素）与字体族
type Font struct {
	Size   int
	Family string
}

// String CSS 字体写法，如 "30px Verdana"
func (f Font) String() string {
	return fmt.Sprintf("%dpx %s", f.Size, f.Family)
}

var (
	FontTitle = Font{Size: 30, Family: "Verdana"}
	FontBody  = Font{Size: 16, Family: "Verdana"}
	FontInfo  = Font{Size: 14, Family: "Verdana"}
)

// Renderer 绘制端：画布、终端或窗口
// 坐标均为像素；FillSquare / DrawSprite 以 (cx, cy) 为中心
type Renderer interface {
	ClearArea(width, height float64)
	FillSquare(color Color, cx, cy, size float64)
	DrawSprite(sprite Sprite, cx, cy, size float64)
	DrawText(text string, x, y float64, font Font, align Align)
	StrokeRect(x, y, width, height float64)
}

// Presenter 可选能力：每次绘制结束后调用，用于刷新屏幕或推送帧
type Presenter interface {
	Present()
}
