package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"minisnake/game"
)

// Server 浏览器版服务：WebSocket 接入、静态资源、管理与监控接口
type Server struct {
	rooms    *RoomManager
	log      *zap.SugaredLogger
	upgrader websocket.Upgrader
}

// New 校验默认配置并创建服务
func New(defaults game.Config, log *zap.SugaredLogger) (*Server, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		rooms: NewRoomManager(defaults, log),
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 演示环境：允许所有来源（生产环境需严格限制）
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Rooms 房间管理器
func (s *Server) Rooms() *RoomManager { return s.rooms }

// Handler 路由表；webDir 为静态前端目录
func (s *Server) Handler(webDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	// 前后端分离：将 / 映射到 web 目录的静态资源
	mux.Handle("/", http.FileServer(http.Dir(webDir)))
	// 管理与监控接口
	mux.HandleFunc("/admin/config", s.HandleAdminConfig)
	mux.HandleFunc("/metrics", s.HandleMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Close 停止所有房间
func (s *Server) Close() {
	s.rooms.StopAll()
}
