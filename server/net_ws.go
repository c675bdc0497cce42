package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendQueueSize = 64
	writeWait     = 5 * time.Second
	pongWait      = 60 * time.Second
	pingPeriod    = 30 * time.Second
	maxMessage    = 1 << 20 // 1MB

	defaultCanvasW = 800
	defaultCanvasH = 600
	minCanvas      = 200
	maxCanvas      = 4096
)

// ClientConn 负责发送（写）数据到客户端的轻量包装
type ClientConn struct {
	ws *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func NewClientConn(ws *websocket.Conn) *ClientConn {
	return &ClientConn{
		ws:   ws,
		send: make(chan []byte, sendQueueSize),
	}
}

// Enqueue 将要发送的消息压入队列（非阻塞，满或已关闭时返回 false）
func (c *ClientConn) Enqueue(b []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

// Close 关闭发送队列与底层连接，可重复调用
func (c *ClientConn) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	if c.ws != nil {
		_ = c.ws.Close()
	}
}

// writePump 独立协程，负责从 send 队列写出到 WS，并定期发送 ping
func (c *ClientConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 读取客户端按键并交给房间；退出时离开房间
func (c *ClientConn) readPump(s *Server, room *Room, v *Viewer) {
	defer s.rooms.Leave(room, v.ID)
	c.ws.SetReadLimit(maxMessage)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error { return c.ws.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debugw("read error", "room", room.ID, "viewer", v.ID, "err", err)
			}
			return
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		var im InputMessage
		if err := json.Unmarshal(payload, &im); err != nil {
			room.Metrics().IncKeysIgnored()
			continue
		}
		room.HandleInput(v, im)
	}
}

// HandleWS WebSocket 接入：/ws?room=r-1&w=800&h=600&debug=true
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := JoinRequest{
		RoomID:  q.Get("room"),
		CanvasW: canvasParam(q.Get("w"), defaultCanvasW),
		CanvasH: canvasParam(q.Get("h"), defaultCanvasH),
		Debug:   q.Get("debug") == "true",
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("upgrade error", "err", err)
		return
	}

	client := NewClientConn(ws)
	room, viewer, err := s.rooms.Join(req, client)
	if err != nil {
		s.log.Errorw("join room", "room", req.RoomID, "err", err)
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "room unavailable"),
			time.Now().Add(writeWait))
		client.Close()
		return
	}

	go client.writePump()
	go client.readPump(s, room, viewer)
}

// canvasParam 解析画布尺寸，非法时用默认值，越界时裁剪
func canvasParam(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}
	if v < minCanvas {
		return minCanvas
	}
	if v > maxCanvas {
		return maxCanvas
	}
	return v
}
