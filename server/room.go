package server

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"minisnake/game"
)

// Room 一个房间：一局游戏会话 + 若干观看者
// 会话由自己的驱动协程推进，房间只负责把帧分发出去
type Room struct {
	ID string

	session *game.Session
	metrics *RoomMetrics
	log     *zap.SugaredLogger

	mu        sync.Mutex
	viewers   map[ViewerID]*Viewer
	lastFrame []byte // 最近一次非空帧，新加入的观看者先收到它
}

// NewRoom 创建房间并初始化会话画布，尚未启动驱动
func NewRoom(id string, cfg game.Config, canvasW, canvasH float64, log *zap.SugaredLogger) (*Room, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Room{
		ID:      id,
		metrics: &RoomMetrics{},
		log:     log.With("room", id),
		viewers: make(map[ViewerID]*Viewer),
	}
	s, err := game.NewSession(cfg,
		game.WithLogger(r.log),
		game.WithObserver(r.metrics),
		game.WithObserver(game.ObserverFunc(r.observe)),
	)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	s.Initialise(canvasW, canvasH)
	r.session = s
	return r, nil
}

// Start 启动会话驱动，每个 Tick 的绘制结果经 present 广播
func (r *Room) Start() error {
	return r.session.Start(NewFrameRenderer(r.present))
}

// Close 停止驱动并断开所有观看者；不能在驱动协程中调用
func (r *Room) Close() {
	r.session.Stop()
	r.mu.Lock()
	for id, v := range r.viewers {
		if v.Conn != nil {
			v.Conn.Close()
		}
		delete(r.viewers, id)
	}
	r.mu.Unlock()
}

func (r *Room) Session() *game.Session { return r.session }

func (r *Room) Metrics() *RoomMetrics { return r.metrics }

// addViewer 加入观看者，并先补发最近一帧
func (r *Room) addViewer(v *Viewer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFrame != nil && v.Conn != nil {
		if v.Conn.Enqueue(r.lastFrame) {
			r.metrics.AddFrames(1)
		}
	}
	r.viewers[v.ID] = v
	r.log.Infow("viewer joined", "viewer", v.ID, "viewers", len(r.viewers))
}

// removeViewer 移除观看者，返回剩余人数
func (r *Room) removeViewer(id ViewerID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.viewers[id]; ok {
		if v.Conn != nil {
			v.Conn.Close()
		}
		delete(r.viewers, id)
		r.log.Infow("viewer left", "viewer", id, "viewers", len(r.viewers))
	}
	return len(r.viewers)
}

// ViewerCount 当前观看者数量
func (r *Room) ViewerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.viewers)
}

// HandleInput 处理一个观看者发来的按键消息（在该连接的读协程中调用）
func (r *Room) HandleInput(v *Viewer, im InputMessage) {
	if !v.acceptSeq(im.Seq) {
		r.metrics.IncOldSeqIgnored()
		return
	}
	if !im.Apply(r.session) {
		r.metrics.IncKeysIgnored()
		return
	}
	r.metrics.IncKeysAccepted()
}

// observe 在 Tick 线程中回调，只做日志
func (r *Room) observe(ev game.Event) {
	switch ev.Kind {
	case game.EventDeath, game.EventRoundStart:
		r.log.Infow("round event", "event", ev.Kind, "score", ev.Score, "step", ev.Step)
	default:
		r.log.Debugw("round event", "event", ev.Kind, "score", ev.Score, "step", ev.Step)
	}
}
