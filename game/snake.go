package game

// Snake 蛇：parts[0] 为蛇头
type Snake struct {
	parts     []Part
	direction Direction
	partSize  float64

	// tail 最近一次移动前蛇尾的位置，新增的一节放在这里
	tail Part
}

// NewSnake 以 head 为唯一一节创建蛇，初始朝左
func NewSnake(head Part) *Snake {
	return &Snake{
		parts:     []Part{head},
		direction: DirLeft,
		partSize:  head.Size,
		tail:      head,
	}
}

func (s *Snake) Head() Part { return s.parts[0] }

func (s *Snake) Len() int { return len(s.parts) }

func (s *Snake) Direction() Direction { return s.direction }

// Parts 返回各节的拷贝
func (s *Snake) Parts() []Part {
	out := make([]Part, len(s.parts))
	copy(out, s.parts)
	return out
}

// Body 蛇头以外的各节（不拷贝，只读使用）
func (s *Snake) Body() []Part { return s.parts[1:] }

// UpdateDirection 每次最多消费队列中的一个方向
// 只有一节时任意方向都接受；否则拒绝与当前朝向相反的请求（请求仍被消费）
func (s *Snake) UpdateDirection(q *DirectionQueue) {
	wanted, ok := q.Pop()
	if !ok {
		return
	}
	if len(s.parts) == 1 || wanted != s.direction.Opposite() {
		s.direction = wanted
	}
}

// UpdateParts 记录蛇尾位置，各节依次移到前一节的位置，蛇头前进一格
func (s *Snake) UpdateParts() {
	last := s.parts[len(s.parts)-1]
	s.tail = Part{X: last.X, Y: last.Y, Size: s.partSize}

	for i := len(s.parts) - 1; i > 0; i-- {
		s.parts[i].X = s.parts[i-1].X
		s.parts[i].Y = s.parts[i-1].Y
	}

	dx, dy := s.direction.Delta()
	s.parts[0].X += dx * s.partSize
	s.parts[0].Y += dy * s.partSize
}

// AddPart 在移动前的蛇尾位置追加一节
func (s *Snake) AddPart() {
	s.parts = append(s.parts, s.tail)
}

func (s *Snake) setHead(p Part) {
	s.parts[0] = p
}
