package game

import (
	"fmt"
	"math"
)

const (
	baseDivisor    = 20 // 0 分时每 20 个 Tick 走一步
	appleInterval  = 90 // 每 90 个有效步尝试生成苹果
	appleLifeTime  = 75
	hazardInterval = 70 // 每 70 个有效步放一颗炸弹
	pickupReward   = 1
	appleReward    = 4
)

// StepDivisor 速度曲线：floor(20 - score/2)，最小为 1
// 分数越高除数越小，蛇越快
func StepDivisor(score int) int {
	d := int(math.Floor(baseDivisor - float64(score)/2))
	if d < 1 {
		return 1
	}
	return d
}

// Round 一局游戏的全部世界状态与逐 Tick 模拟
type Round struct {
	snake      *Snake
	part       Part  // 收集物，始终存在
	apple      *Part // 限时奖励，可能为空
	hazards    []Part
	directions DirectionQueue

	requests int // 原始 Tick 计数
	steps    int // 有效步计数
}

func NewRound() *Round {
	return &Round{}
}

// Start 随机放置蛇和收集物，清空上一局残留
func (r *Round) Start(s *Session) error {
	g := s.Grid()
	r.snake = NewSnake(g.RandomPart(s.rng))
	part, err := g.PlaceFree(s.rng, r.snake.parts)
	if err != nil {
		return fmt.Errorf("place collectible: %w", err)
	}
	r.part = part
	r.apple = nil
	r.hazards = nil
	r.directions.Clear()
	r.requests, r.steps = 0, 0
	r.emit(s, EventRoundStart)
	return nil
}

// Queue 记录一个方向请求，在之后的有效步中依次消费
func (r *Round) Queue(d Direction) {
	r.directions.Push(d)
}

func (r *Round) Snake() *Snake { return r.snake }
func (r *Round) Collectible() Part { return r.part }
func (r *Round) Steps() int { return r.steps }
func (r *Round) Requests() int { return r.requests }

// Apple 当前苹果，不存在时 ok 为 false
func (r *Round) Apple() (p Part, ok bool) {
	if r.apple == nil {
		return Part{}, false
	}
	return *r.apple, true
}

func (r *Round) Hazards() []Part {
	out := make([]Part, len(r.hazards))
	copy(out, r.hazards)
	return out
}

// Update 每个原始 Tick 调用一次；按速度曲线决定是否执行有效步
// dead 表示蛇撞到自己或炸弹
func (r *Round) Update(s *Session) (dead bool, err error) {
	r.requests++
	if r.requests%StepDivisor(s.Score()) != 0 {
		return false, nil
	}
	return r.step(s)
}

func (r *Round) step(s *Session) (dead bool, err error) {
	g := s.Grid()
	r.steps++

	r.snake.UpdateDirection(&r.directions)
	r.snake.UpdateParts()
	r.snake.setHead(g.Snap(r.snake.Head()))

	if Collides(r.snake.Head(), r.part) {
		// 先放置新的收集物再长出一节：刚空出的蛇尾格也是候选位置
		part, err := g.PlaceFree(s.rng, r.occupied())
		if err != nil {
			return false, fmt.Errorf("relocate collectible: %w", err)
		}
		r.part = part
		r.snake.AddPart()
		s.AddScore(pickupReward)
		r.emit(s, EventPickup)
	}

	if r.apple != nil {
		r.apple.LifeTime--
		if r.apple.LifeTime <= 0 {
			r.apple = nil
			r.emit(s, EventAppleExpired)
		} else if Collides(r.snake.Head(), *r.apple) {
			r.apple = nil
			s.AddScore(appleReward)
			r.emit(s, EventAppleEaten)
		}
	} else if r.steps%appleInterval == 0 {
		apple, err := g.PlaceFree(s.rng, r.occupied())
		if err != nil {
			return false, fmt.Errorf("spawn apple: %w", err)
		}
		apple.LifeTime = appleLifeTime
		r.apple = &apple
		r.emit(s, EventAppleSpawned)
	}

	if r.steps%hazardInterval == 0 {
		bomb, err := g.PlaceFree(s.rng, r.occupied())
		if err != nil {
			return false, fmt.Errorf("spawn hazard: %w", err)
		}
		r.hazards = append(r.hazards, bomb)
		r.emit(s, EventHazardSpawned)
	}

	r.snake.setHead(g.Snap(g.Wrap(r.snake.Head())))

	head := r.snake.Head()
	if CollidesWithAny(head, r.snake.Body()) || CollidesWithAny(head, r.hazards) {
		r.emit(s, EventDeath)
		return true, nil
	}
	return false, nil
}

// occupied 所有当前占用格子的实体
func (r *Round) occupied() []Part {
	objs := make([]Part, 0, len(r.snake.parts)+len(r.hazards)+2)
	objs = append(objs, r.snake.parts...)
	objs = append(objs, r.hazards...)
	objs = append(objs, r.part)
	if r.apple != nil {
		objs = append(objs, *r.apple)
	}
	return objs
}

func (r *Round) emit(s *Session, kind EventKind) {
	s.emit(Event{Kind: kind, Score: s.Score(), Step: r.steps})
}

// Draw 绘制游戏区域、分数与图例
func (r *Round) Draw(s *Session, rd Renderer) {
	g := s.Grid()
	b := g.Bounds
	size := g.CellSize
	w, h := s.CanvasSize()

	rd.ClearArea(w, h)
	rd.StrokeRect(b.Left, b.Top, g.Width, g.Height)

	rd.FillSquare(ColorPart, r.part.X, r.part.Y, r.part.Size)

	if r.apple != nil {
		rd.DrawSprite(SpriteApple, r.apple.X, r.apple.Y, r.apple.Size)

		// 剩余时间：苹果图标 + 每 4 步一个小红块
		iconX := b.Left + size/2
		iconY := b.Top - size
		rd.DrawSprite(SpriteApple, iconX, iconY, size)
		counterX := iconX + size
		for i := 0; float64(i) < float64(r.apple.LifeTime)/4; i++ {
			rd.FillSquare(ColorLifeTime, counterX+float64(i*8), iconY, 6)
		}
	}

	for _, bomb := range r.hazards {
		rd.DrawSprite(SpriteBomb, bomb.X, bomb.Y, bomb.Size)
	}

	for i, p := range r.snake.parts {
		c := ColorPart
		if i == 0 {
			c = ColorHead
		}
		rd.FillSquare(c, p.X, p.Y, p.Size)
	}

	rd.DrawText(fmt.Sprintf("Score: %d", s.Score()), b.Right, b.Top-12, FontInfo, AlignRight)

	r.drawLegend(rd, g)

	if s.Config().Debug {
		info := fmt.Sprintf("ticks=%d steps=%d divisor=%d queued=%d len=%d",
			r.requests, r.steps, StepDivisor(s.Score()), r.directions.Len(), r.snake.Len())
		rd.DrawText(info, b.Left, b.Bottom+size*3+12, FontInfo, AlignLeft)
	}
}

func (r *Round) drawLegend(rd Renderer, g Grid) {
	const margin = 5
	size := g.CellSize
	textY := g.Bounds.Bottom + 12 + size
	iconY := g.Bounds.Bottom + size*1.5
	x := g.Bounds.Left + size/2

	rd.FillSquare(ColorPart, x, iconY, size)
	x += size + margin
	rd.DrawText("Snake part (+1)", x, textY, FontInfo, AlignLeft)

	x += 140 + margin
	rd.DrawSprite(SpriteApple, x, iconY, size)
	x += size + margin
	rd.DrawText("Apple (+4)", x, textY, FontInfo, AlignLeft)

	x += 100 + margin
	rd.DrawSprite(SpriteBomb, x, iconY, size)
	x += size + margin
	rd.DrawText("Bomb (will kill you)", x, textY, FontInfo, AlignLeft)
}
