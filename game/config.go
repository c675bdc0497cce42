package game

import "fmt"

// Config 会话配置，创建会话时确定，之后不再变化
type Config struct {
	GameWidth       float64 `json:"gameWidth"`       // 游戏区域像素宽度
	HorizontalCells int     `json:"horizontalCells"` // 横向格子数
	VerticalCells   int     `json:"verticalCells"`   // 纵向格子数
	TicksPerSecond  int     `json:"ticksPerSecond"`  // 驱动频率
	Debug           bool    `json:"debug"`
}

// DefaultConfig 默认配置：700px 宽，50x30 格，100 TPS
func DefaultConfig() Config {
	return Config{
		GameWidth:       700,
		HorizontalCells: 50,
		VerticalCells:   30,
		TicksPerSecond:  100,
	}
}

// CellSize 单个格子的像素边长
func (c Config) CellSize() float64 {
	return c.GameWidth / float64(c.HorizontalCells)
}

// GameHeight 游戏区域像素高度
func (c Config) GameHeight() float64 {
	return c.CellSize() * float64(c.VerticalCells)
}

// Validate 检查配置是否可用
func (c Config) Validate() error {
	if c.GameWidth <= 0 {
		return fmt.Errorf("game width must be positive, got %v", c.GameWidth)
	}
	// 随机落点不采样最外侧一行/列，至少留出 2x2 个候选格
	if c.HorizontalCells < 3 || c.VerticalCells < 3 {
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", c.HorizontalCells, c.VerticalCells)
	}
	if c.TicksPerSecond <= 0 || c.TicksPerSecond > 1000 {
		return fmt.Errorf("ticks per second out of range (1..1000): %d", c.TicksPerSecond)
	}
	return nil
}
