package server

import (
	"strings"

	"minisnake/game"
)

// InputMessage 入站按键消息（WebSocket 文本消息）
// 示例：{"type":"keydown","code":37,"seq":12}
type InputMessage struct {
	Type string `json:"type"`
	Code int    `json:"code"`
	Seq  int64  `json:"seq,omitempty"`
}

// Apply 将按键转交给会话；类型未知时返回 false
// 按键码不做过滤，未知按键由画面自行忽略
func (m InputMessage) Apply(s *game.Session) bool {
	switch strings.ToLower(m.Type) {
	case "keydown":
		s.KeyDown(game.Key(m.Code))
	case "keyup":
		s.KeyUp(game.Key(m.Code))
	default:
		return false
	}
	return true
}
