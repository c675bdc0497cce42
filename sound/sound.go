package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"minisnake/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone 一次短促的正弦音
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// ToneFor 事件对应的提示音；不需要发声的事件返回 false
func ToneFor(kind game.EventKind) (Tone, bool) {
	switch kind {
	case game.EventPickup:
		return Tone{Freq: 880, Duration: 50 * time.Millisecond}, true
	case game.EventAppleEaten:
		return Tone{Freq: 1320, Duration: 120 * time.Millisecond}, true
	case game.EventHazardSpawned:
		return Tone{Freq: 220, Duration: 80 * time.Millisecond}, true
	case game.EventDeath:
		return Tone{Freq: 110, Duration: 400 * time.Millisecond}, true
	}
	return Tone{}, false
}

// Player 把对局事件转成提示音，实现 game.Observer
// 扬声器初始化失败时静默，游戏照常运行
type Player struct {
	mu      sync.Mutex
	enabled bool
	log     *zap.SugaredLogger
}

// NewPlayer 初始化扬声器；失败不返回错误，只记录日志
func NewPlayer(log *zap.SugaredLogger) *Player {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	p := &Player{log: log}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Warnw("audio initialization failed", "err", err)
		return p
	}
	p.enabled = true
	return p
}

// Enabled 扬声器是否可用
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Observe 在 Tick 线程中调用；speaker.Play 不阻塞
func (p *Player) Observe(ev game.Event) {
	tone, ok := ToneFor(ev.Kind)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		p.log.Warnw("sine tone", "freq", tone.Freq, "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

// Close 停止所有声音
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	p.enabled = false
}
