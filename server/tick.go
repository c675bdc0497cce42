package server

import "encoding/json"

// present 每个 Tick 由会话驱动调用一次：计数，然后把非空帧广播给观看者
// Welcome 画面只绘制一次，之后的空帧不发送，客户端保留上一帧画面
func (r *Room) present(ops []DrawOp) {
	r.metrics.AddTick()
	if len(ops) == 0 {
		return
	}
	b, err := json.Marshal(Frame{Type: "frame", Ops: ops})
	if err != nil {
		r.log.Errorw("marshal frame", "err", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFrame = b
	sent := 0
	for _, v := range r.viewers {
		if v.Conn == nil {
			continue
		}
		if v.Conn.Enqueue(b) {
			sent++
		} else {
			// 为了实时性，发送队列满时丢弃本帧，下一帧会完整重绘
			r.metrics.IncChanFullDiscarded()
		}
	}
	r.metrics.AddFrames(sent)
}
