package server

import (
	"encoding/json"
	"net/http"
)

// configPatch 部分更新：只修改请求里出现的字段
type configPatch struct {
	GameWidth       *float64 `json:"gameWidth,omitempty"`
	HorizontalCells *int     `json:"horizontalCells,omitempty"`
	VerticalCells   *int     `json:"verticalCells,omitempty"`
	TicksPerSecond  *int     `json:"ticksPerSecond,omitempty"`
	Debug           *bool    `json:"debug,omitempty"`
}

// HandleAdminConfig 读取与更新新房间使用的默认配置
// GET  /admin/config  返回当前默认配置
// POST /admin/config  以 JSON 载荷更新部分字段，校验失败返回 400
func (s *Server) HandleAdminConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.rooms.Defaults())
	case http.MethodPost:
		var body configPatch
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		cfg := s.rooms.Defaults()
		if body.GameWidth != nil {
			cfg.GameWidth = *body.GameWidth
		}
		if body.HorizontalCells != nil {
			cfg.HorizontalCells = *body.HorizontalCells
		}
		if body.VerticalCells != nil {
			cfg.VerticalCells = *body.VerticalCells
		}
		if body.TicksPerSecond != nil {
			cfg.TicksPerSecond = *body.TicksPerSecond
		}
		if body.Debug != nil {
			cfg.Debug = *body.Debug
		}
		if err := s.rooms.SetDefaults(cfg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Infow("default config updated",
			"gameWidth", cfg.GameWidth, "cells", [2]int{cfg.HorizontalCells, cfg.VerticalCells},
			"tps", cfg.TicksPerSecond, "debug", cfg.Debug)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "config": cfg})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleMetrics 输出房间运行指标
// GET /metrics?room=r-1  单个房间，不存在时 404
// GET /metrics           全部房间
func (s *Server) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("room"); id != "" {
		room, ok := s.rooms.Get(id)
		if !ok {
			http.Error(w, "unknown room", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, roomReport(room))
		return
	}
	rooms := s.rooms.List()
	out := make([]map[string]any, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomReport(room))
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": out})
}

func roomReport(room *Room) map[string]any {
	return map[string]any{
		"room":    room.ID,
		"viewers": room.ViewerCount(),
		"session": room.Session().Snapshot(),
		"metrics": room.Metrics().Snapshot(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
