package game

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
)

// ErrBoardFull 没有任何空闲格子可以放置新实体
var ErrBoardFull = errors.New("game: no free cell left on board")

// placementAttemptsPerCell 随机采样上限 = 格子数 * 该系数，超过后改为顺序扫描
const placementAttemptsPerCell = 4

// Bounds 游戏区域在画布中的像素边界
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Grid 由配置和画布尺寸推导出的几何信息，初始化后不变
type Grid struct {
	Bounds   Bounds
	CellSize float64
	Width    float64 // 游戏区域宽度 = Right - Left
	Height   float64 // 游戏区域高度 = Bottom - Top
	Columns  int
	Rows     int
}

// NewGrid 将游戏区域居中放在 canvasW x canvasH 的画布上
func NewGrid(cfg Config, canvasW, canvasH float64) Grid {
	gw, gh := cfg.GameWidth, cfg.GameHeight()
	b := Bounds{
		Left:   canvasW/2 - gw/2,
		Right:  canvasW/2 + gw/2,
		Top:    canvasH/2 - gh/2,
		Bottom: canvasH/2 + gh/2,
	}
	return Grid{
		Bounds:   b,
		CellSize: cfg.CellSize(),
		Width:    b.Right - b.Left,
		Height:   b.Bottom - b.Top,
		Columns:  cfg.HorizontalCells,
		Rows:     cfg.VerticalCells,
	}
}

// PartAt 返回第 (col, row) 格的实体，坐标为格子中心
func (g Grid) PartAt(col, row int) Part {
	return Part{
		X:    g.Bounds.Left + g.CellSize/2 + g.CellSize*float64(col),
		Y:    g.Bounds.Top + g.CellSize/2 + g.CellSize*float64(row),
		Size: g.CellSize,
	}
}

// RandomPart 随机格子，不采样最右一列和最下一行
func (g Grid) RandomPart(rng *rand.Rand) Part {
	return g.PartAt(rng.Intn(g.Columns-1), rng.Intn(g.Rows-1))
}

// PlaceFree 拒绝采样：随机取点直到不与 occupied 中任何实体重合
// 随机次数有上限，超过后顺序扫描所有候选格子；全部被占用则返回 ErrBoardFull
func (g Grid) PlaceFree(rng *rand.Rand, occupied []Part) (Part, error) {
	attempts := g.Columns * g.Rows * placementAttemptsPerCell
	for i := 0; i < attempts; i++ {
		p := g.RandomPart(rng)
		if !CollidesWithAny(p, occupied) {
			return p, nil
		}
	}
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Columns-1; col++ {
			p := g.PartAt(col, row)
			if !CollidesWithAny(p, occupied) {
				return p, nil
			}
		}
	}
	return Part{}, ErrBoardFull
}

// Snap 对齐到最近的格子中心，消除逐步累加和环绕带来的浮点误差
// 格子边长不是整数（如 700/30）时，碰撞判断依赖这一步
func (g Grid) Snap(p Part) Part {
	col := int(math.Round((p.X - g.Bounds.Left - g.CellSize/2) / g.CellSize))
	row := int(math.Round((p.Y - g.Bounds.Top - g.CellSize/2) / g.CellSize))
	snapped := g.PartAt(col, row)
	snapped.LifeTime = p.LifeTime
	return snapped
}

// Wrap 环面边界：越过一侧边界时从对侧出现
// 每步只移动一格，每个轴最多修正一次即可
func (g Grid) Wrap(p Part) Part {
	if p.X < g.Bounds.Left {
		p.X += g.Width
	}
	if p.X > g.Bounds.Right {
		p.X -= g.Width
	}
	if p.Y < g.Bounds.Top {
		p.Y += g.Height
	}
	if p.Y > g.Bounds.Bottom {
		p.Y -= g.Height
	}
	return p
}
