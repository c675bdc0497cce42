package server

// ViewerID 房间内一个浏览器连接的标识
type ViewerID string

// Viewer 房间内的观看者：接收帧，也可以发送按键
type Viewer struct {
	ID   ViewerID
	Conn *ClientConn

	lastSeq int64 // 最近一次接受的输入序列号，用于去重
}

// acceptSeq 序列号为 0 表示客户端不带序列号，一律接受
func (v *Viewer) acceptSeq(seq int64) bool {
	if seq == 0 {
		return true
	}
	if seq <= v.lastSeq {
		return false
	}
	v.lastSeq = seq
	return true
}
