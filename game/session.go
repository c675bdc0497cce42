package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	ErrNotInitialised = errors.New("game: session not initialised")
	ErrAlreadyRunning = errors.New("game: session already running")
)

// keyBufferSize 两个 Tick 之间可缓冲的按键事件数
const keyBufferSize = 256

type keyEvent struct {
	key  Key
	down bool
}

// Session 一个游戏会话：配置、画面栈、分数与固定频率驱动
//
// 所有游戏状态只在 Tick 线程中修改（Update / Draw / Tick 持有 mu）；
// KeyDown / KeyUp 可在任意协程调用，事件先缓冲，下一次 Update 开始时统一应用。
// 画面切换与计分方法供画面在 Tick 线程内调用，不再加锁。
type Session struct {
	cfg       Config
	log       *zap.SugaredLogger
	rng       *rand.Rand
	observers []Observer

	mu          sync.Mutex
	initialised bool
	canvasW     float64
	canvasH     float64
	grid        Grid
	score       int
	stack       stateStack
	pressed     map[Key]bool
	ticks       uint64

	keys chan keyEvent

	runMu   sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// Option 会话可选项
type Option func(*Session)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver 追加一个事件观察者，可多次使用
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithSeed 固定随机种子，便于复现
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSession 校验配置并创建会话；使用前需先 Initialise
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Session{
		cfg:     cfg,
		log:     zap.NewNop().Sugar(),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		pressed: make(map[Key]bool),
		keys:    make(chan keyEvent, keyBufferSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Initialise 根据画布尺寸计算游戏区域边界
func (s *Session) Initialise(canvasW, canvasH float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvasW, s.canvasH = canvasW, canvasH
	s.grid = NewGrid(s.cfg, canvasW, canvasH)
	s.initialised = true
	s.log.Debugw("session initialised",
		"canvas", fmt.Sprintf("%.0fx%.0f", canvasW, canvasH),
		"cellSize", s.grid.CellSize,
		"bounds", s.grid.Bounds)
}

// Start 进入欢迎画面并启动固定频率驱动，每个 Tick 调用 Tick(r)
func (s *Session) Start(r Renderer) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}

	s.mu.Lock()
	if !s.initialised {
		s.mu.Unlock()
		return ErrNotInitialised
	}
	s.stack.replaceTop(s, NewWelcome())
	s.mu.Unlock()

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.run(r, s.stop, s.done)
	s.log.Infow("session started", "tps", s.cfg.TicksPerSecond)
	return nil
}

func (s *Session) run(r Renderer, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TicksPerSecond))
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Tick(r)
		}
	}
}

// Stop 停止驱动并等待其退出；可重复调用
func (s *Session) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
	s.log.Infow("session stopped", "score", s.Snapshot().Score)
}

// Running 驱动是否在运行
func (s *Session) Running() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.running
}

// KeyDown 记录按下事件，下一次 Update 时派发给栈顶画面
func (s *Session) KeyDown(key Key) { s.enqueueKey(keyEvent{key: key, down: true}) }

// KeyUp 记录抬起事件，下一次 Update 时派发给栈顶画面
func (s *Session) KeyUp(key Key) { s.enqueueKey(keyEvent{key: key, down: false}) }

func (s *Session) enqueueKey(ev keyEvent) {
	select {
	case s.keys <- ev:
	default:
		s.log.Warnw("key buffer full, dropping key", "key", ev.key, "down", ev.down)
	}
}

// Tick 一次完整的推进：Update 后 Draw
func (s *Session) Tick(r Renderer) {
	s.Update()
	s.Draw(r)
}

// Update 应用缓冲的按键，再推进栈顶画面
func (s *Session) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks++
	s.applyKeys()
	if u, ok := s.stack.current().(Updater); ok {
		u.Update(s)
	}
}

func (s *Session) applyKeys() {
	for {
		select {
		case ev := <-s.keys:
			if ev.down {
				s.pressed[ev.key] = true
				if h, ok := s.stack.current().(KeyDowner); ok {
					h.KeyDown(s, ev.key)
				}
			} else {
				delete(s.pressed, ev.key)
				if h, ok := s.stack.current().(KeyUpper); ok {
					h.KeyUp(s, ev.key)
				}
			}
		default:
			return
		}
	}
}

// Draw 绘制栈顶画面；r 实现 Presenter 时随后调用 Present
func (s *Session) Draw(r Renderer) {
	if r == nil {
		return
	}
	s.mu.Lock()
	if d, ok := s.stack.current().(Drawer); ok {
		d.Draw(s, r)
	}
	s.mu.Unlock()

	if p, ok := r.(Presenter); ok {
		p.Present()
	}
}

// MoveToState 替换栈顶画面
func (s *Session) MoveToState(next Screen) {
	s.log.Debugw("screen transition", "from", screenName(s.stack.current()), "to", next.Name())
	s.stack.replaceTop(s, next)
}

// PushState 压入新画面，保留下面的画面
func (s *Session) PushState(next Screen) {
	s.log.Debugw("screen push", "screen", next.Name(), "depth", s.stack.depth()+1)
	s.stack.push(s, next)
}

// PopState 离开并弹出栈顶画面
func (s *Session) PopState() {
	s.log.Debugw("screen pop", "screen", screenName(s.stack.current()))
	s.stack.pop(s)
}

// Current 栈顶画面，栈为空时为 nil
func (s *Session) Current() Screen { return s.stack.current() }

func (s *Session) Score() int { return s.score }

func (s *Session) AddScore(n int) {
	if n > 0 {
		s.score += n
	}
}

func (s *Session) ResetScore() { s.score = 0 }

func (s *Session) IsPressed(key Key) bool { return s.pressed[key] }

func (s *Session) Grid() Grid { return s.grid }

func (s *Session) Config() Config { return s.cfg }

func (s *Session) CanvasSize() (w, h float64) { return s.canvasW, s.canvasH }

func (s *Session) emit(ev Event) {
	for _, o := range s.observers {
		o.Observe(ev)
	}
}

// Snapshot 供其它协程读取的只读状态
type Snapshot struct {
	Screen  string `json:"screen"`
	Score   int    `json:"score"`
	Ticks   uint64 `json:"ticks"`
	Steps   int    `json:"steps"`
	Length  int    `json:"length"`
	Hazards int    `json:"hazards"`
	Apple   bool   `json:"apple"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Screen: screenName(s.stack.current()),
		Score:  s.score,
		Ticks:  s.ticks,
	}
	if rs, ok := s.stack.current().(*RoundScreen); ok && rs.failed == nil {
		r := rs.round
		snap.Steps = r.steps
		snap.Length = r.snake.Len()
		snap.Hazards = len(r.hazards)
		snap.Apple = r.apple != nil
	}
	return snap
}

func screenName(sc Screen) string {
	if sc == nil {
		return ""
	}
	return sc.Name()
}
