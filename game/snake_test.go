package game

import "testing"

func TestDirectionQueueFIFO(t *testing.T) {
	var q DirectionQueue
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue should report false")
	}
	q.Push(DirUp)
	q.Push(DirLeft)
	q.Push(DirDown)
	want := []Direction{DirUp, DirLeft, DirDown}
	for i, w := range want {
		got, ok := q.Pop()
		if !ok || got != w {
			t.Fatalf("pop %d: got %v,%v want %v", i, got, ok, w)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty, len=%d", q.Len())
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func multiPartSnake(dir Direction) *Snake {
	s := &Snake{
		parts: []Part{
			{X: 100, Y: 100, Size: 10},
			{X: 90, Y: 100, Size: 10},
			{X: 80, Y: 100, Size: 10},
		},
		direction: dir,
		partSize:  10,
	}
	s.tail = s.parts[2]
	return s
}

func TestUpdateDirectionRejectsReverse(t *testing.T) {
	for _, heading := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		s := multiPartSnake(heading)
		var q DirectionQueue
		q.Push(heading.Opposite())
		s.UpdateDirection(&q)
		if s.Direction() != heading {
			t.Errorf("heading %v: reverse request changed heading to %v", heading, s.Direction())
		}
		if q.Len() != 0 {
			t.Errorf("heading %v: rejected request should still be consumed", heading)
		}
	}
}

func TestUpdateDirectionSinglePartAcceptsAny(t *testing.T) {
	for _, heading := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		for _, wanted := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
			s := NewSnake(Part{X: 50, Y: 50, Size: 10})
			s.direction = heading
			var q DirectionQueue
			q.Push(wanted)
			s.UpdateDirection(&q)
			if s.Direction() != wanted {
				t.Errorf("heading %v, wanted %v: got %v", heading, wanted, s.Direction())
			}
		}
	}
}

func TestUpdateDirectionConsumesOnePerCall(t *testing.T) {
	s := multiPartSnake(DirRight)
	var q DirectionQueue
	q.Push(DirUp)
	q.Push(DirLeft)

	s.UpdateDirection(&q)
	if s.Direction() != DirUp {
		t.Fatalf("first call: got %v want up", s.Direction())
	}
	if q.Len() != 1 {
		t.Fatalf("second request should be deferred, len=%d", q.Len())
	}
	s.UpdateDirection(&q)
	if s.Direction() != DirLeft {
		t.Fatalf("second call: got %v want left", s.Direction())
	}
}

func TestUpdatePartsShiftsAndMovesHead(t *testing.T) {
	s := multiPartSnake(DirDown)
	s.UpdateParts()

	want := []Part{
		{X: 100, Y: 110, Size: 10},
		{X: 100, Y: 100, Size: 10},
		{X: 90, Y: 100, Size: 10},
	}
	got := s.Parts()
	for i := range want {
		if !Collides(got[i], want[i]) {
			t.Errorf("part %d = (%v,%v), want (%v,%v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

func TestAddPartUsesPreShiftTail(t *testing.T) {
	s := multiPartSnake(DirRight)
	s.UpdateParts()
	s.AddPart()

	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	last := s.Parts()[3]
	if last.X != 80 || last.Y != 100 {
		t.Errorf("new tail at (%v,%v), want (80,100)", last.X, last.Y)
	}
}

func TestAddPartBeforeAnyMove(t *testing.T) {
	s := NewSnake(Part{X: 30, Y: 40, Size: 10})
	s.AddPart()
	if got := s.Parts()[1]; got.X != 30 || got.Y != 40 {
		t.Errorf("new part at (%v,%v), want head position", got.X, got.Y)
	}
}

func TestCollidesIgnoresSize(t *testing.T) {
	if !Collides(Part{X: 1, Y: 2, Size: 10}, Part{X: 1, Y: 2, Size: 3}) {
		t.Error("parts at the same position should collide regardless of size")
	}
	if Collides(Part{X: 1, Y: 2}, Part{X: 2, Y: 2}) {
		t.Error("parts at different positions should not collide")
	}
	if CollidesWithAny(Part{X: 5, Y: 5}, nil) {
		t.Error("empty list should never collide")
	}
}
