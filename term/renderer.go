package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"minisnake/game"
)

// ColumnsPerCell 一个格子在终端里占两列，使格子看起来接近正方形
const ColumnsPerCell = 2

// eps 吸收浮点误差，保证格子中心映射到同一列
const eps = 1e-6

var (
	appleStyle = tcell.StyleDefault.Foreground(tcell.GetColor("#E0301E"))
	bombStyle  = tcell.StyleDefault.Foreground(tcell.GetColor("#A0A0A0")).Bold(true)
	logoStyle  = tcell.StyleDefault.Foreground(tcell.GetColor(string(game.ColorPart))).Bold(true)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle = textStyle.Bold(true)
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// logoArt 欢迎画面的标志
var logoArt = []string{
	` ____              _        `,
	`/ ___| _ __   __ _| | _____ `,
	`\___ \| '_ \ / _' | |/ / _ \`,
	` ___) | | | | (_| |   <  __/`,
	`|____/|_| |_|\__,_|_|\_\___|`,
}

// Renderer 把像素坐标映射到终端字符格：横向每格两列，纵向每格一行
type Renderer struct {
	screen tcell.Screen
	cellPx float64 // 一个游戏格子的像素边长
}

func NewRenderer(screen tcell.Screen, cellPx float64) *Renderer {
	return &Renderer{screen: screen, cellPx: cellPx}
}

// col 像素 x 所在的终端列（半格精度）
func (r *Renderer) col(x float64) int {
	return int(math.Floor(x*ColumnsPerCell/r.cellPx + eps))
}

// row 像素 y 所在的终端行
func (r *Renderer) row(y float64) int {
	return int(math.Floor(y/r.cellPx + eps))
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) ClearArea(width, height float64) {
	r.screen.Clear()
}

func (r *Renderer) FillSquare(c game.Color, cx, cy, size float64) {
	style := tcell.StyleDefault.Foreground(tcell.GetColor(string(c)))
	y := r.row(cy)
	// 小方块（苹果剩余时间）只占一列
	if size < r.cellPx/2 {
		r.put(r.col(cx), y, '▪', style)
		return
	}
	x0 := r.col(cx - size/2)
	n := max(1, int(math.Round(size*ColumnsPerCell/r.cellPx)))
	for i := 0; i < n; i++ {
		r.put(x0+i, y, '█', style)
	}
}

func (r *Renderer) DrawSprite(sp game.Sprite, cx, cy, size float64) {
	switch sp {
	case game.SpriteApple:
		r.put(r.col(cx-size/2), r.row(cy), '●', appleStyle)
	case game.SpriteBomb:
		r.put(r.col(cx-size/2), r.row(cy), '✱', bombStyle)
	case game.SpriteLogo:
		top := r.row(cy) - len(logoArt)/2
		for i, line := range logoArt {
			r.text(line, r.col(cx), top+i, game.AlignCenter, logoStyle)
		}
	}
}

// DrawText y 为基线，文字落在基线上方的那一行
func (r *Renderer) DrawText(text string, x, y float64, font game.Font, align game.Align) {
	style := textStyle
	if font.Size >= game.FontTitle.Size {
		style = titleStyle
	}
	r.text(text, r.col(x), r.row(y-1), align, style)
}

func (r *Renderer) text(s string, x, y int, align game.Align, style tcell.Style) {
	switch align {
	case game.AlignCenter:
		x -= runewidth.StringWidth(s) / 2
	case game.AlignRight:
		x -= runewidth.StringWidth(s)
	}
	for _, ch := range s {
		r.put(x, y, ch, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
}

// StrokeRect 边框画在区域外侧一圈
func (r *Renderer) StrokeRect(x, y, width, height float64) {
	left, right := r.col(x)-1, r.col(x+width)
	top, bottom := r.row(y)-1, r.row(y+height)
	for c := left + 1; c < right; c++ {
		r.put(c, top, '─', frameStyle)
		r.put(c, bottom, '─', frameStyle)
	}
	for rr := top + 1; rr < bottom; rr++ {
		r.put(left, rr, '│', frameStyle)
		r.put(right, rr, '│', frameStyle)
	}
	r.put(left, top, '┌', frameStyle)
	r.put(right, top, '┐', frameStyle)
	r.put(left, bottom, '└', frameStyle)
	r.put(right, bottom, '┘', frameStyle)
}

// Present 把本帧刷新到终端
func (r *Renderer) Present() {
	r.screen.Show()
}
