package game

import "testing"

type probeScreen struct {
	name    string
	enters  int
	leaves  int
	updates int
	draws   int
	downs   []Key
	ups     []Key
}

func (p *probeScreen) Name() string { return p.name }
func (p *probeScreen) Enter(*Session) { p.enters++ }
func (p *probeScreen) Leave(*Session) { p.leaves++ }
func (p *probeScreen) Update(*Session) { p.updates++ }
func (p *probeScreen) Draw(*Session, Renderer) { p.draws++ }
func (p *probeScreen) KeyDown(_ *Session, k Key) { p.downs = append(p.downs, k) }
func (p *probeScreen) KeyUp(_ *Session, k Key) { p.ups = append(p.ups, k) }

// bareScreen 不实现任何可选钩子
type bareScreen struct{}

func (bareScreen) Name() string { return "bare" }

func TestMoveToStateLeavesOnceEntersOnce(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	a := &probeScreen{name: "a"}
	b := &probeScreen{name: "b"}

	s.MoveToState(a)
	if a.enters != 1 || s.Current() != a {
		t.Fatalf("a.enters=%d current=%v", a.enters, screenName(s.Current()))
	}
	s.MoveToState(b)
	if a.leaves != 1 || b.enters != 1 {
		t.Errorf("a.leaves=%d b.enters=%d, want 1 and 1", a.leaves, b.enters)
	}
	if s.stack.depth() != 1 {
		t.Errorf("depth = %d, want 1 after replace", s.stack.depth())
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	welcome := &probeScreen{name: "welcome"}
	round := &probeScreen{name: "round"}

	s.MoveToState(welcome)
	s.PushState(round)
	if s.Current() != round || s.stack.depth() != 2 {
		t.Fatalf("after push current=%s depth=%d", screenName(s.Current()), s.stack.depth())
	}
	if welcome.leaves != 0 {
		t.Error("push must not leave the screen underneath")
	}

	s.PopState()
	if s.Current() != welcome {
		t.Fatalf("after pop current=%s, want welcome", screenName(s.Current()))
	}
	if round.leaves != 1 {
		t.Errorf("round.leaves = %d, want 1", round.leaves)
	}
	if welcome.enters != 1 {
		t.Errorf("welcome entered %d times, want exactly 1", welcome.enters)
	}

	s.PopState()
	s.PopState()
	if s.Current() != nil {
		t.Error("popping an empty stack should leave it empty")
	}
}

func TestDispatchOnlyToTop(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	below := &probeScreen{name: "below"}
	top := &probeScreen{name: "top"}
	s.MoveToState(below)
	s.PushState(top)

	s.KeyDown(KeySpace)
	s.KeyUp(KeyLeft)
	s.Tick(&recordingRenderer{})

	if top.updates != 1 || top.draws != 1 {
		t.Errorf("top updates=%d draws=%d", top.updates, top.draws)
	}
	if below.updates != 0 || below.draws != 0 || len(below.downs) != 0 {
		t.Error("screen below the top received events")
	}
	if len(top.downs) != 1 || top.downs[0] != KeySpace || len(top.ups) != 1 || top.ups[0] != KeyLeft {
		t.Errorf("top keys down=%v up=%v", top.downs, top.ups)
	}
}

func TestOptionalHooksMayBeMissing(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	s.MoveToState(bareScreen{})
	s.KeyDown(KeySpace)
	s.KeyUp(KeySpace)
	s.Tick(&recordingRenderer{})
	s.MoveToState(&probeScreen{name: "next"})
	s.PopState()
}
