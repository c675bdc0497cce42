package server

import (
	"sync/atomic"

	"minisnake/game"
)

// RoomMetrics 记录房间运行期的关键指标（用于监控与调试）
type RoomMetrics struct {
	TickCount         int64 // 驱动推进的 Tick 次数
	FramesSent        int64 // 推送给观看者的帧数（按连接计）
	KeysAccepted      int64 // 被接受的按键消息
	KeysIgnored       int64 // 无法解析或类型未知的消息
	OldSeqIgnored     int64 // 因旧序列被忽略的输入数
	ChanFullDiscarded int64 // 因发送队列满被丢弃的帧
	RoundsStarted     int64
	Pickups           int64
	ApplesEaten       int64
	HazardsSpawned    int64
	Deaths            int64
}

func (m *RoomMetrics) IncKeysAccepted()      { atomic.AddInt64(&m.KeysAccepted, 1) }
func (m *RoomMetrics) IncKeysIgnored()       { atomic.AddInt64(&m.KeysIgnored, 1) }
func (m *RoomMetrics) IncOldSeqIgnored()     { atomic.AddInt64(&m.OldSeqIgnored, 1) }
func (m *RoomMetrics) IncChanFullDiscarded() { atomic.AddInt64(&m.ChanFullDiscarded, 1) }
func (m *RoomMetrics) AddTick()              { atomic.AddInt64(&m.TickCount, 1) }
func (m *RoomMetrics) AddFrames(n int)       { atomic.AddInt64(&m.FramesSent, int64(n)) }

// Observe 统计对局事件
func (m *RoomMetrics) Observe(ev game.Event) {
	switch ev.Kind {
	case game.EventRoundStart:
		atomic.AddInt64(&m.RoundsStarted, 1)
	case game.EventPickup:
		atomic.AddInt64(&m.Pickups, 1)
	case game.EventAppleEaten:
		atomic.AddInt64(&m.ApplesEaten, 1)
	case game.EventHazardSpawned:
		atomic.AddInt64(&m.HazardsSpawned, 1)
	case game.EventDeath:
		atomic.AddInt64(&m.Deaths, 1)
	}
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *RoomMetrics) Snapshot() map[string]any {
	return map[string]any{
		"tick_count":          atomic.LoadInt64(&m.TickCount),
		"frames_sent":         atomic.LoadInt64(&m.FramesSent),
		"keys_accepted":       atomic.LoadInt64(&m.KeysAccepted),
		"keys_ignored":        atomic.LoadInt64(&m.KeysIgnored),
		"old_seq_ignored":     atomic.LoadInt64(&m.OldSeqIgnored),
		"chan_full_discarded": atomic.LoadInt64(&m.ChanFullDiscarded),
		"rounds_started":      atomic.LoadInt64(&m.RoundsStarted),
		"pickups":             atomic.LoadInt64(&m.Pickups),
		"apples_eaten":        atomic.LoadInt64(&m.ApplesEaten),
		"hazards_spawned":     atomic.LoadInt64(&m.HazardsSpawned),
		"deaths":              atomic.LoadInt64(&m.Deaths),
	}
}
