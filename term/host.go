package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"minisnake/game"
)

// Host 终端宿主：tcell 屏幕 + 会话驱动 + 按键循环
type Host struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *Renderer
	log      *zap.SugaredLogger
}

// NewHost screen 需已 Init；session 需已 Initialise
func NewHost(screen tcell.Screen, session *game.Session, log *zap.SugaredLogger) *Host {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Host{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen, session.Grid().CellSize),
		log:      log,
	}
}

func (h *Host) Renderer() *Renderer { return h.renderer }

// Run 启动会话并处理终端事件，直到退出键或 ctx 结束
func (h *Host) Run(ctx context.Context) error {
	if err := h.session.Start(h.renderer); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer h.session.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handle(ev) {
				h.log.Infow("quit requested", "score", h.session.Snapshot().Score)
				return nil
			}
		}
	}
}

// handle 返回 true 表示退出
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// handleKey 终端没有抬起事件，每次按键同时发送按下与抬起
func (h *Host) handleKey(k tcell.Key, ch rune) bool {
	if k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && (ch == 'q' || ch == 'Q')) {
		return true
	}
	key, ok := translate(k, ch)
	if !ok {
		return false
	}
	h.session.KeyDown(key)
	h.session.KeyUp(key)
	return false
}

func translate(k tcell.Key, ch rune) (game.Key, bool) {
	switch k {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyRune:
		if ch == ' ' {
			return game.KeySpace, true
		}
	}
	return 0, false
}

// CanvasSize 为终端选一块画布：四周各留出边框、分数和图例的位置
func CanvasSize(cfg game.Config) (w, h float64) {
	cell := cfg.CellSize()
	return cfg.GameWidth + 2*cell, cfg.GameHeight() + 8*cell
}

// TerminalSize 画布需要的终端列数与行数
func TerminalSize(cfg game.Config) (cols, rows int) {
	return (cfg.HorizontalCells + 2) * ColumnsPerCell, cfg.VerticalCells + 8
}
