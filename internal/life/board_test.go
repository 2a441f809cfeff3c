package life

import (
	"errors"
	"image/color"
	"testing"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
)

const testScale = 4

type fixture struct {
	surface *render.Surface
	queue   *core.FrameQueue
	board   *Board
}

func newFixture(t *testing.T, cols, rows int, mutate func(*Config)) *fixture {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Scale = testScale
	cfg.AliveChance = 0
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	surface := render.NewSurface(cols*testScale, rows*testScale)
	queue := core.NewFrameQueue()
	b, err := NewBoard(surface, queue, cfg, WithOverlay(nil))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return &fixture{surface: surface, queue: queue, board: b}
}

func (f *fixture) index(x, y int) int { return y*f.board.Geometry().Columns() + x }

// set seeds a live cell as if a generation had committed it.
func (f *fixture) set(x, y int) {
	c := &f.board.cells[f.index(x, y)]
	c.alive = true
	c.committed = true
}

func (f *fixture) pendingCount() int {
	n := 0
	for i := 0; i < f.board.Len(); i++ {
		if f.board.Pending(i) {
			n++
		}
	}
	return n
}

func (f *fixture) expectAlive(t *testing.T, step string, want map[[2]int]bool) {
	t.Helper()
	geo := f.board.Geometry()
	for y := 0; y < geo.Rows(); y++ {
		for x := 0; x < geo.Columns(); x++ {
			alive := f.board.Alive(f.index(x, y))
			if alive != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestNewBoardRejectsInvalidConfig(t *testing.T) {
	queue := core.NewFrameQueue()

	cfg := DefaultConfig()
	cfg.Scale = 0
	if _, err := NewBoard(render.NewSurface(100, 100), queue, cfg); !errors.Is(err, core.ErrInvalidScale) {
		t.Fatalf("scale 0: expected ErrInvalidScale, got %v", err)
	}

	if _, err := NewBoard(render.NewSurface(0, 0), queue, DefaultConfig()); !errors.Is(err, core.ErrEmptySurface) {
		t.Fatalf("empty surface: expected ErrEmptySurface, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.AliveChance = 1.5
	if _, err := NewBoard(render.NewSurface(100, 100), queue, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("alive chance 1.5: expected ErrInvalidConfig, got %v", err)
	}

	if _, err := NewBoard(nil, queue, DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil surface: expected ErrInvalidConfig, got %v", err)
	}
}

func TestInitBuildsRowMajorCells(t *testing.T) {
	f := newFixture(t, 7, 5, nil)
	if f.board.Len() != 35 {
		t.Fatalf("expected 35 cells, got %d", f.board.Len())
	}
	for i := 0; i < f.board.Len(); i++ {
		c := f.board.Cell(i)
		if c.Index() != i {
			t.Fatalf("cell %d has index %d", i, c.Index())
		}
		switch n := len(c.Neighbors()); n {
		case 3, 5, 8:
		default:
			t.Fatalf("cell %d has %d neighbours", i, n)
		}
	}
	if err := f.board.Init(); err != nil || f.board.Len() != 35 {
		t.Fatalf("second Init must be a no-op, err=%v len=%d", err, f.board.Len())
	}
	if f.surface.Len() != 3 {
		t.Fatalf("expected 3 pointer subscriptions, got %d", f.surface.Len())
	}
}

func TestInitSeedIsDeterministic(t *testing.T) {
	seeded := func(seed int64) *fixture {
		return newFixture(t, 100, 100, func(c *Config) {
			c.Seed = seed
			c.AliveChance = 0.3
		})
	}
	a, b, other := seeded(42), seeded(42), seeded(43)

	same, differs := true, false
	for i := 0; i < a.board.Len(); i++ {
		if a.board.Alive(i) != b.board.Alive(i) {
			same = false
		}
		if a.board.Alive(i) != other.board.Alive(i) {
			differs = true
		}
	}
	if !same {
		t.Fatal("equal seeds must produce equal initial patterns")
	}
	if !differs {
		t.Fatal("different seeds should produce different initial patterns")
	}

	m := a.board.Metrics()
	if m.Generation != 0 || m.Population != a.board.Population() {
		t.Fatalf("initial metrics %+v do not match population %d", m, a.board.Population())
	}
	if m.Density < 0.25 || m.Density > 0.35 {
		t.Fatalf("initial density %.3f far from 0.3", m.Density)
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := nextState(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("alive with %d neighbours: got %v, expected %v", n, got, want)
		}
		if got, want := nextState(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbours: got %v, expected %v", n, got, want)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	f := newFixture(t, 6, 6, nil)
	f.set(2, 2)
	f.set(3, 2)
	f.set(2, 3)
	f.set(3, 3)
	want := map[[2]int]bool{{2, 2}: true, {3, 2}: true, {2, 3}: true, {3, 3}: true}

	for gen := 1; gen <= 5; gen++ {
		f.board.Step()
		m := f.board.Metrics()
		if m.Births != 0 || m.Deaths != 0 || m.Population != 4 {
			t.Fatalf("generation %d: metrics %+v", gen, m)
		}
		f.expectAlive(t, "block", want)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	f := newFixture(t, 5, 5, nil)
	f.set(1, 2)
	f.set(2, 2)
	f.set(3, 2)

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	for gen := 1; gen <= 6; gen++ {
		f.board.Step()
		want := vertical
		if gen%2 == 0 {
			want = horizontal
		}
		f.expectAlive(t, "blinker", want)
		m := f.board.Metrics()
		if m.Births != 2 || m.Deaths != 2 || m.Population != 3 || m.Generation != gen {
			t.Fatalf("generation %d: metrics %+v", gen, m)
		}
	}
}

func TestBirthRule(t *testing.T) {
	cases := []struct {
		name      string
		neighbors [][2]int
		born      bool
	}{
		{"two", [][2]int{{1, 1}, {3, 3}}, false},
		{"three", [][2]int{{1, 1}, {3, 1}, {1, 3}}, true},
		{"four", [][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}}, false},
	}
	for _, tc := range cases {
		f := newFixture(t, 5, 5, nil)
		for _, p := range tc.neighbors {
			f.set(p[0], p[1])
		}
		f.board.Step()
		if got := f.board.Alive(f.index(2, 2)); got != tc.born {
			t.Fatalf("%s neighbours: centre alive=%v, expected %v", tc.name, got, tc.born)
		}
	}
}

func TestSurvivalRule(t *testing.T) {
	ring := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2}}
	for n := 0; n <= 8; n++ {
		f := newFixture(t, 5, 5, nil)
		f.set(2, 2)
		for _, p := range ring[:n] {
			f.set(p[0], p[1])
		}
		f.board.Step()
		want := n == 2 || n == 3
		if got := f.board.Alive(f.index(2, 2)); got != want {
			t.Fatalf("alive centre with %d neighbours: alive=%v, expected %v", n, got, want)
		}
	}
}

func TestUpdateReadsSnapshotOnly(t *testing.T) {
	// A vertical domino dies in one generation regardless of update order.
	f := newFixture(t, 3, 4, nil)
	f.set(1, 1)
	f.set(1, 2)
	f.board.Step()
	f.expectAlive(t, "domino", map[[2]int]bool{})
	if m := f.board.Metrics(); m.Deaths != 2 || m.Births != 0 {
		t.Fatalf("metrics %+v", m)
	}
}

func TestPopulationConservation(t *testing.T) {
	f := newFixture(t, 40, 30, func(c *Config) {
		c.Seed = 7
		c.AliveChance = 0.3
	})
	if err := f.board.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	prev := f.board.Metrics()
	for gen := 0; gen < 60; gen++ {
		before := f.board.Population()
		if ran := f.queue.RunFrame(); ran != 1 {
			t.Fatalf("expected exactly one loop callback per frame, got %d", ran)
		}
		m := f.board.Metrics()
		if m.Births+(before-m.Deaths) != m.Population {
			t.Fatalf("generation %d: births %d + (%d - deaths %d) != population %d",
				m.Generation, m.Births, before, m.Deaths, m.Population)
		}
		if m.Population != f.board.Population() {
			t.Fatalf("generation %d: metrics population %d, counted %d", m.Generation, m.Population, f.board.Population())
		}
		if m.Generation != prev.Generation+1 {
			t.Fatalf("generation did not advance: %d -> %d", prev.Generation, m.Generation)
		}
		if want := float64(m.Population) / float64(f.board.Len()); m.Density != want {
			t.Fatalf("density %v, expected %v", m.Density, want)
		}
		prev = m
	}
}

func TestPaintingShowsOnNextGeneration(t *testing.T) {
	f := newFixture(t, 5, 5, nil)
	px := func(x int) float64 { return float64(x*testScale) + 1.5 }

	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerDown, X: px(1), Y: px(2)})
	if !f.board.Dragging() {
		t.Fatal("pointer down must start a drag")
	}
	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerMove, X: px(2), Y: px(2)})
	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerMove, X: px(3), Y: px(2)})
	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerUp, X: px(3), Y: px(2)})
	if f.board.Dragging() {
		t.Fatal("pointer up must end the drag")
	}

	if m := f.board.Metrics(); m.Population != 0 || m.Generation != 0 {
		t.Fatalf("painting must not commit metrics, got %+v", m)
	}
	for _, x := range []int{1, 2, 3} {
		i := f.index(x, 2)
		if f.board.Alive(i) || !f.board.Pending(i) {
			t.Fatalf("painted cell (%d,2): alive=%v pending=%v, expected only pending", x, f.board.Alive(i), f.board.Pending(i))
		}
	}
	if f.board.Population() != 0 || f.pendingCount() != 3 {
		t.Fatalf("population %d pending %d before the generation", f.board.Population(), f.pendingCount())
	}
	black := color.RGBA{A: 255}
	if got := f.surface.Raster().Image().RGBAAt(2*testScale+1, 2*testScale+1); got != black {
		t.Fatalf("painting must not redraw, pixel is %v", got)
	}

	f.board.Step()
	f.expectAlive(t, "painted blinker", map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
	if got := f.surface.Raster().Image().RGBAAt(2*testScale+1, 2*testScale+1); got == black {
		t.Fatal("surviving painted cell should be drawn after the generation")
	}
}

func TestPaintingIgnoresMovesWithoutDragAndOutOfRange(t *testing.T) {
	f := newFixture(t, 5, 5, nil)

	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerMove, X: 6, Y: 6})
	if f.pendingCount() != 0 {
		t.Fatal("moves without a drag must not paint")
	}

	for _, p := range [][2]float64{{-3, 2}, {2, -3}, {20, 2}, {2, 20}, {1000, 1000}} {
		f.surface.Dispatch(core.PointerEvent{Kind: core.PointerDown, X: p[0], Y: p[1]})
		f.surface.Dispatch(core.PointerEvent{Kind: core.PointerMove, X: p[0], Y: p[1]})
	}
	if f.pendingCount() != 0 {
		t.Fatal("out-of-range pointers must be ignored")
	}

	f.set(0, 0)
	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerDown, X: 1, Y: 1})
	if !f.board.Alive(0) || !f.board.Pending(0) {
		t.Fatal("painting an alive cell must keep it alive")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t, 5, 5, nil)
	if f.board.State() != StateIdle {
		t.Fatalf("new board state %v", f.board.State())
	}
	if err := f.board.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.board.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if f.queue.Pending() != 1 {
		t.Fatalf("expected one scheduled frame, got %d", f.queue.Pending())
	}
	if g := f.board.Metrics().Generation; g != 1 {
		t.Fatalf("Start should run exactly one generation, got %d", g)
	}
	f.queue.RunFrame()
	if g := f.board.Metrics().Generation; g != 2 || f.queue.Pending() != 1 {
		t.Fatalf("after one frame: generation %d, pending %d", g, f.queue.Pending())
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	f := newFixture(t, 5, 5, nil)
	if err := f.board.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.board.Destroy()
	f.board.Destroy()

	if f.queue.Pending() != 0 {
		t.Fatalf("destroy must cancel the pending frame, %d left", f.queue.Pending())
	}
	if f.surface.Len() != 0 {
		t.Fatalf("destroy must release listeners, %d left", f.surface.Len())
	}
	if f.board.Len() != 0 || f.board.Dragging() || f.board.State() != StateStopped {
		t.Fatalf("board not torn down: len=%d dragging=%v state=%v", f.board.Len(), f.board.Dragging(), f.board.State())
	}
	if err := f.board.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("Start after Destroy: expected ErrStopped, got %v", err)
	}
	if err := f.board.Init(); !errors.Is(err, ErrStopped) {
		t.Fatalf("Init after Destroy: expected ErrStopped, got %v", err)
	}
	f.surface.Dispatch(core.PointerEvent{Kind: core.PointerDown, X: 1, Y: 1})
	f.board.Step()
}

func TestDestroyBeforeInit(t *testing.T) {
	queue := core.NewFrameQueue()
	surface := render.NewSurface(20, 20)
	b, err := NewBoard(surface, queue, DefaultConfig())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Destroy()
	b.Destroy()
	if queue.Pending() != 0 || surface.Len() != 0 || b.State() != StateStopped {
		t.Fatal("destroy before init must leave nothing behind")
	}
}

func TestDestroyDuringFrameStopsLoop(t *testing.T) {
	f := newFixture(t, 5, 5, nil)
	if err := f.board.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.queue.RequestFrame(f.board.Destroy)
	f.queue.RunFrame()
	if f.queue.Pending() != 0 {
		t.Fatalf("no frame should remain after destroy, got %d", f.queue.Pending())
	}
}
