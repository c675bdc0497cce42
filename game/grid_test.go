package game

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestNewGridCentersField(t *testing.T) {
	g := NewGrid(DefaultConfig(), 800, 600)
	// 700 / 50 = 14px，高 14 * 30 = 420
	want := Bounds{Left: 50, Right: 750, Top: 90, Bottom: 510}
	if g.Bounds != want {
		t.Fatalf("bounds = %+v, want %+v", g.Bounds, want)
	}
	if g.CellSize != 14 || g.Width != 700 || g.Height != 420 {
		t.Errorf("cell=%v width=%v height=%v", g.CellSize, g.Width, g.Height)
	}
}

func TestRandomPartNeverSamplesOutermostCell(t *testing.T) {
	cfg := Config{GameWidth: 50, HorizontalCells: 5, VerticalCells: 4, TicksPerSecond: 10}
	g := NewGrid(cfg, 100, 100)
	rng := rand.New(rand.NewSource(7))
	lastCol := g.PartAt(cfg.HorizontalCells-1, 0).X
	lastRow := g.PartAt(0, cfg.VerticalCells-1).Y
	for i := 0; i < 2000; i++ {
		p := g.RandomPart(rng)
		if p.X == lastCol || p.Y == lastRow {
			t.Fatalf("sampled outermost cell (%v,%v)", p.X, p.Y)
		}
		if p.X < g.Bounds.Left || p.X > g.Bounds.Right || p.Y < g.Bounds.Top || p.Y > g.Bounds.Bottom {
			t.Fatalf("sampled outside bounds (%v,%v)", p.X, p.Y)
		}
		if p.Size != g.CellSize {
			t.Fatalf("size = %v, want %v", p.Size, g.CellSize)
		}
	}
}

func TestWrapAllEdges(t *testing.T) {
	g := NewGrid(DefaultConfig(), 800, 600)
	b := g.Bounds
	const k = 7
	cases := []struct {
		name string
		in   Part
		want Part
	}{
		{"right", Part{X: b.Right + k, Y: 200}, Part{X: b.Left + k, Y: 200}},
		{"left", Part{X: b.Left - k, Y: 200}, Part{X: b.Right - k, Y: 200}},
		{"bottom", Part{X: 300, Y: b.Bottom + k}, Part{X: 300, Y: b.Top + k}},
		{"top", Part{X: 300, Y: b.Top - k}, Part{X: 300, Y: b.Bottom - k}},
		{"inside", Part{X: 300, Y: 200}, Part{X: 300, Y: 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Wrap(tc.in)
			if !Collides(got, tc.want) {
				t.Errorf("Wrap(%v,%v) = (%v,%v), want (%v,%v)", tc.in.X, tc.in.Y, got.X, got.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestWrapRightmostCellWith500Field(t *testing.T) {
	cfg := Config{GameWidth: 500, HorizontalCells: 50, VerticalCells: 30, TicksPerSecond: 100}
	g := NewGrid(cfg, 800, 600)

	head := g.PartAt(cfg.HorizontalCells-1, 3)
	head.X += g.CellSize
	got := g.Wrap(head)
	want := g.PartAt(0, 3)
	if !Collides(got, want) {
		t.Errorf("wrapped to (%v,%v), want leftmost cell (%v,%v)", got.X, got.Y, want.X, want.Y)
	}
}

func TestPlaceFreeAvoidsOccupied(t *testing.T) {
	cfg := Config{GameWidth: 40, HorizontalCells: 4, VerticalCells: 4, TicksPerSecond: 10}
	g := NewGrid(cfg, 40, 40)
	rng := rand.New(rand.NewSource(1))

	// 候选格为 3x3，占满其中 8 个
	var occupied []Part
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col == 2 && row == 1 {
				continue
			}
			occupied = append(occupied, g.PartAt(col, row))
		}
	}
	for i := 0; i < 20; i++ {
		p, err := g.PlaceFree(rng, occupied)
		if err != nil {
			t.Fatalf("PlaceFree: %v", err)
		}
		if !Collides(p, g.PartAt(2, 1)) {
			t.Fatalf("placed at (%v,%v), want the only free cell", p.X, p.Y)
		}
	}
}

func TestPlaceFreeBoardFull(t *testing.T) {
	cfg := Config{GameWidth: 30, HorizontalCells: 3, VerticalCells: 3, TicksPerSecond: 10}
	g := NewGrid(cfg, 30, 30)
	rng := rand.New(rand.NewSource(1))
	occupied := []Part{g.PartAt(0, 0), g.PartAt(1, 0), g.PartAt(0, 1), g.PartAt(1, 1)}

	_, err := g.PlaceFree(rng, occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"zero width", Config{GameWidth: 0, HorizontalCells: 10, VerticalCells: 10, TicksPerSecond: 10}, false},
		{"tiny grid", Config{GameWidth: 100, HorizontalCells: 2, VerticalCells: 10, TicksPerSecond: 10}, false},
		{"no ticks", Config{GameWidth: 100, HorizontalCells: 10, VerticalCells: 10}, false},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if (err == nil) != tc.ok {
			t.Errorf("%s: Validate() = %v, ok want %v", tc.name, err, tc.ok)
		}
	}
}

func TestSnapToCellCentre(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizontalCells = 30
	g := NewGrid(cfg, 800, 600)

	want := g.PartAt(7, 4)
	drifted := Part{X: want.X + 1e-9, Y: want.Y - 1e-9, Size: want.Size, LifeTime: 12}
	got := g.Snap(drifted)
	if got.X != want.X || got.Y != want.Y {
		t.Errorf("Snap = (%v,%v), want (%v,%v)", got.X, got.Y, want.X, want.Y)
	}
	if got.LifeTime != 12 {
		t.Errorf("LifeTime = %d, want 12", got.LifeTime)
	}
	if out := g.Snap(g.PartAt(-1, 4)); out != g.PartAt(-1, 4) {
		t.Errorf("cell outside the field moved: %+v", out)
	}
}
