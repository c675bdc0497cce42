package game

import "fmt"

// Welcome 欢迎画面：只绘制一次，空格开始游戏
type Welcome struct {
	drawn bool
}

func NewWelcome() *Welcome { return &Welcome{} }

func (w *Welcome) Name() string { return "welcome" }

func (w *Welcome) Draw(s *Session, r Renderer) {
	if w.drawn {
		return
	}
	cw, ch := s.CanvasSize()
	r.ClearArea(cw, ch)

	logo := min(cw, ch) * 0.5
	r.DrawSprite(SpriteLogo, cw/2, ch*0.4, logo)
	r.DrawText("Snake", cw/2, ch*0.75, FontTitle, AlignCenter)
	r.DrawText("Hit the space bar to start the game.", cw/2, ch*0.83, FontBody, AlignCenter)
	w.drawn = true
}

func (w *Welcome) KeyDown(s *Session, key Key) {
	if key == KeySpace {
		s.ResetScore()
		s.MoveToState(NewRoundScreen())
	}
}

// RoundScreen 进行中的一局，包装 Round 控制器
type RoundScreen struct {
	round  *Round
	failed error // Enter 失败时记录，下一次 Update 结束本局
}

func NewRoundScreen() *RoundScreen {
	return &RoundScreen{round: NewRound()}
}

func (rs *RoundScreen) Name() string { return "round" }

// Round 暴露控制器，便于宿主和测试观察状态
func (rs *RoundScreen) Round() *Round { return rs.round }

func (rs *RoundScreen) Enter(s *Session) {
	if err := rs.round.Start(s); err != nil {
		rs.failed = err
		return
	}
	s.log.Debugw("round started", "head", rs.round.snake.Head())
}

func (rs *RoundScreen) KeyUp(s *Session, key Key) {
	if rs.failed != nil {
		return
	}
	if d, ok := key.Direction(); ok {
		rs.round.Queue(d)
	}
}

func (rs *RoundScreen) Update(s *Session) {
	if rs.failed != nil {
		s.log.Errorw("round could not start", "error", rs.failed)
		s.MoveToState(NewGameOver())
		return
	}
	dead, err := rs.round.Update(s)
	if err != nil {
		// 棋盘已满：结束本局，不再无限重试
		s.log.Errorw("round aborted", "error", err, "score", s.Score(), "steps", rs.round.Steps())
		s.MoveToState(NewGameOver())
		return
	}
	if dead {
		s.log.Infow("snake died", "score", s.Score(), "steps", rs.round.Steps(), "length", rs.round.snake.Len())
		s.MoveToState(NewGameOver())
	}
}

func (rs *RoundScreen) Draw(s *Session, r Renderer) {
	if rs.failed != nil {
		return
	}
	rs.round.Draw(s, r)
}

// GameOver 结束画面：显示最终得分，空格返回欢迎画面
type GameOver struct{}

func NewGameOver() *GameOver { return &GameOver{} }

func (g *GameOver) Name() string { return "gameover" }

func (g *GameOver) Draw(s *Session, r Renderer) {
	cw, ch := s.CanvasSize()
	r.ClearArea(cw, ch)
	r.DrawText("Game Over!", cw/2, ch/2-40, FontTitle, AlignCenter)
	r.DrawText(fmt.Sprintf("Your score is: %d", s.Score()), cw/2, ch/2, FontBody, AlignCenter)
	r.DrawText("Hit the space bar to go back.", cw/2, ch/2+40, FontBody, AlignCenter)
}

func (g *GameOver) KeyDown(s *Session, key Key) {
	if key == KeySpace {
		s.ResetScore()
		s.MoveToState(NewWelcome())
	}
}
