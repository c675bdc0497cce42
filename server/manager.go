package server

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"minisnake/game"
)

// RoomManager 管理多个房间的生命周期
// 加入与离开都在 mu 下完成，保证“最后一人离开即关闭房间”不会与新加入者竞争
type RoomManager struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	defaults game.Config
	log      *zap.SugaredLogger
	seq      int64
}

func NewRoomManager(defaults game.Config, log *zap.SugaredLogger) *RoomManager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RoomManager{
		rooms:    make(map[string]*Room),
		defaults: defaults,
		log:      log,
	}
}

// JoinRequest 加入房间的参数，画布尺寸与调试开关只在创建房间时生效
type JoinRequest struct {
	RoomID  string
	CanvasW float64
	CanvasH float64
	Debug   bool
}

// Join 获取或创建房间并加入一个观看者
// 房间 ID 为空时分配新的房间；新房间会立即启动会话驱动
func (m *RoomManager) Join(req JoinRequest, conn *ClientConn) (*Room, *Viewer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	roomID := req.RoomID
	if roomID == "" {
		roomID = fmt.Sprintf("r-%d", m.seq)
	}

	room, ok := m.rooms[roomID]
	if !ok {
		cfg := m.defaults
		cfg.Debug = cfg.Debug || req.Debug
		var err error
		room, err = NewRoom(roomID, cfg, req.CanvasW, req.CanvasH, m.log)
		if err != nil {
			return nil, nil, err
		}
		if err := room.Start(); err != nil {
			return nil, nil, fmt.Errorf("start room %s: %w", roomID, err)
		}
		m.rooms[roomID] = room
		m.log.Infow("room created", "room", roomID,
			"canvas", fmt.Sprintf("%.0fx%.0f", req.CanvasW, req.CanvasH), "debug", cfg.Debug)
	}

	v := &Viewer{ID: ViewerID(fmt.Sprintf("v-%d", m.seq)), Conn: conn}
	if conn != nil {
		hello, _ := json.Marshal(map[string]string{"type": "hello", "room": roomID, "viewer": string(v.ID)})
		conn.Enqueue(hello)
	}
	room.addViewer(v)
	return room, v, nil
}

// Leave 移除观看者；房间空了就从表中删除并停止
func (m *RoomManager) Leave(room *Room, id ViewerID) {
	m.mu.Lock()
	left := room.removeViewer(id)
	empty := left == 0 && m.rooms[room.ID] == room
	if empty {
		delete(m.rooms, room.ID)
	}
	m.mu.Unlock()

	// Stop 会等待驱动协程退出，驱动里的 present 需要 room.mu，所以放在锁外
	if empty {
		room.Close()
		m.log.Infow("room closed", "room", room.ID)
	}
}

// Get 按 ID 查找房间
func (m *RoomManager) Get(id string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	return r, ok
}

// List 按 ID 排序的全部房间
func (m *RoomManager) List() []*Room {
	m.mu.Lock()
	out := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *RoomManager) Defaults() game.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaults
}

// SetDefaults 校验后替换新房间使用的默认配置，已有房间不受影响
func (m *RoomManager) SetDefaults(cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.defaults = cfg
	m.mu.Unlock()
	return nil
}

// StopAll 关闭所有房间（进程退出时调用）
func (m *RoomManager) StopAll() {
	m.mu.Lock()
	rooms := make([]*Room, 0, len(m.rooms))
	for id, r := range m.rooms {
		rooms = append(rooms, r)
		delete(m.rooms, id)
	}
	m.mu.Unlock()
	for _, r := range rooms {
		r.Close()
	}
	if len(rooms) > 0 {
		m.log.Infow("rooms stopped", "count", len(rooms))
	}
}
