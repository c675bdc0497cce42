package game

import (
	"fmt"
	"sync"
	"testing"
)

const (
	testCanvasW = 800
	testCanvasH = 600
)

func newTestSession(t *testing.T, cfg Config, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Initialise(testCanvasW, testCanvasH)
	return s
}

// newRoundSession 直接进入一局，返回会话和控制器
func newRoundSession(t *testing.T, opts ...Option) (*Session, *Round) {
	t.Helper()
	s := newTestSession(t, DefaultConfig(), opts...)
	rs := NewRoundScreen()
	s.MoveToState(rs)
	if rs.failed != nil {
		t.Fatalf("round failed to start: %v", rs.failed)
	}
	return s, rs.Round()
}

// placeSnake 以给定格子序列（蛇头在前）替换当前的蛇
func placeSnake(s *Session, r *Round, dir Direction, cells ...[2]int) {
	g := s.Grid()
	parts := make([]Part, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, g.PartAt(c[0], c[1]))
	}
	r.snake = &Snake{parts: parts, direction: dir, partSize: g.CellSize, tail: parts[len(parts)-1]}
}

type recordingRenderer struct {
	mu        sync.Mutex
	ops       []string
	presents  int
	presented chan struct{}
}

func (r *recordingRenderer) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) ClearArea(w, h float64) { r.add("clear %.0f %.0f", w, h) }

func (r *recordingRenderer) FillSquare(c Color, x, y, size float64) {
	r.add("square %s %.1f %.1f %.1f", c, x, y, size)
}

func (r *recordingRenderer) DrawSprite(sp Sprite, x, y, size float64) {
	r.add("sprite %s %.1f %.1f %.1f", sp, x, y, size)
}

func (r *recordingRenderer) DrawText(text string, x, y float64, f Font, a Align) {
	r.add("text %q %.1f %.1f %s %s", text, x, y, f, a)
}

func (r *recordingRenderer) StrokeRect(x, y, w, h float64) {
	r.add("stroke %.1f %.1f %.1f %.1f", x, y, w, h)
}

func (r *recordingRenderer) Present() {
	r.mu.Lock()
	r.presents++
	ch := r.presented
	r.mu.Unlock()
	if ch != nil {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (r *recordingRenderer) snapshot() (ops []string, presents int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...), r.presents
}

func (r *recordingRenderer) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
}

func countPrefix(ops []string, prefix string) int {
	n := 0
	for _, op := range ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
