package game

// Direction 蛇头朝向
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// Opposite 反方向
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	default:
		return DirUp
	}
}

// Delta 单位位移（屏幕坐标，y 向下）
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// DirectionQueue 方向请求的先进先出队列
// 同一 Tick 内的多个按键依次延后生效，不丢弃也不合并
type DirectionQueue struct {
	items []Direction
}

func (q *DirectionQueue) Push(d Direction) {
	q.items = append(q.items, d)
}

// Pop 取出队首；队列为空时 ok 为 false
func (q *DirectionQueue) Pop() (d Direction, ok bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	d = q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return d, true
}

func (q *DirectionQueue) Len() int { return len(q.items) }

func (q *DirectionQueue) Clear() { q.items = nil }
