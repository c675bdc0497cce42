package desktop

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"minisnake/game"
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorFrame      = color.RGBA{0, 0, 0, 255}
	ColorText       = color.RGBA{0, 0, 0, 255}
	ColorApple      = color.RGBA{224, 48, 30, 255}
	ColorLeaf       = color.RGBA{55, 186, 46, 255}
	ColorBomb       = color.RGBA{40, 40, 45, 255}
	ColorFuse       = color.RGBA{255, 170, 0, 255}
)

// Renderer 在一帧的 ebiten 屏幕上执行绘制指令
type Renderer struct {
	dst  *ebiten.Image
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Target 设置本帧的目标图像
func (r *Renderer) Target(dst *ebiten.Image) { r.dst = dst }

func (r *Renderer) ClearArea(width, height float64) {
	r.dst.Fill(ColorBackground)
}

func (r *Renderer) FillSquare(c game.Color, cx, cy, size float64) {
	x, y, s := float32(cx-size/2), float32(cy-size/2), float32(size)
	vector.DrawFilledRect(r.dst, x, y, s, s, ParseHex(c), false)
	vector.StrokeRect(r.dst, x, y, s, s, 1, ColorFrame, false)
}

func (r *Renderer) DrawSprite(sp game.Sprite, cx, cy, size float64) {
	x, y, s := float32(cx), float32(cy), float32(size)
	switch sp {
	case game.SpriteApple:
		vector.DrawFilledCircle(r.dst, x, y+s*0.05, s*0.45, ColorApple, true)
		vector.DrawFilledRect(r.dst, x, y-s*0.5, s*0.25, s*0.2, ColorLeaf, true)
	case game.SpriteBomb:
		vector.DrawFilledCircle(r.dst, x, y+s*0.05, s*0.42, ColorBomb, true)
		vector.StrokeLine(r.dst, x+s*0.2, y-s*0.25, x+s*0.4, y-s*0.45, 2, ColorFuse, true)
	case game.SpriteLogo:
		r.drawLogo(x, y, s)
	}
}

// drawLogo 一条弯曲的蛇：身体方块沿正弦排开，最后一块是头
func (r *Renderer) drawLogo(cx, cy, size float32) {
	const segments = 9
	step := size / segments
	head := ParseHex(game.ColorHead)
	body := ParseHex(game.ColorPart)
	for i := 0; i < segments; i++ {
		x := cx - size/2 + step*float32(i)
		y := cy + float32(math.Sin(float64(i)*0.9))*size*0.15
		c := body
		if i == segments-1 {
			c = head
		}
		vector.DrawFilledRect(r.dst, x, y-step/2, step*0.9, step*0.9, c, false)
	}
}

// DrawText y 为基线，与 canvas 的 fillText 一致
func (r *Renderer) DrawText(s string, x, y float64, f game.Font, align game.Align) {
	width := font.MeasureString(r.face, s).Ceil()
	text.Draw(r.dst, s, r.face, TextOrigin(int(x), width, align), int(y), ColorText)
}

func (r *Renderer) StrokeRect(x, y, width, height float64) {
	vector.StrokeRect(r.dst, float32(x), float32(y), float32(width), float32(height), 1, ColorFrame, false)
}

// TextOrigin 根据对齐方式求文字左端
func TextOrigin(x, width int, align game.Align) int {
	switch align {
	case game.AlignCenter:
		return x - width/2
	case game.AlignRight:
		return x - width
	}
	return x
}

// ParseHex 解析 "#RRGGBB"，格式不对时返回黑色
func ParseHex(c game.Color) color.RGBA {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{0, 0, 0, 255}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
