package life

import (
	"fmt"

	"lifecanvas/internal/core"
	"lifecanvas/internal/ui"
)

// State is the lifecycle stage of a Board.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Overlay draws on top of the cells after every generation.
type Overlay interface {
	Draw(canvas core.Canvas, m core.Metrics)
}

// BoardOption customises a Board at construction.
type BoardOption func(*Board)

// WithOverlay replaces the metrics card. A nil overlay disables it.
func WithOverlay(o Overlay) BoardOption {
	return func(b *Board) { b.overlay = o }
}

// Board owns the cells of one simulation session and drives generations on
// a surface. A Board is single use: once destroyed it cannot run again.
type Board struct {
	cfg     Config
	surface core.Surface
	sched   core.Scheduler
	geo     core.Geometry
	overlay Overlay

	cells   []Cell
	palette palette
	metrics core.Metrics

	state       State
	initialized bool
	dragging    bool
	frame       core.FrameHandle
	tokens      []core.ListenerToken
}

// NewBoard sizes a board to the surface. Cells are created by Init.
func NewBoard(surface core.Surface, sched core.Scheduler, cfg Config, opts ...BoardOption) (*Board, error) {
	if surface == nil || sched == nil {
		return nil, fmt.Errorf("%w: surface and scheduler are required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geo, err := core.NewGeometry(cfg.Scale, surface.Width(), surface.Height())
	if err != nil {
		return nil, err
	}
	b := &Board{
		cfg:     cfg,
		surface: surface,
		sched:   sched,
		geo:     geo,
		overlay: ui.NewMetricsCard(),
		palette: palette{rng: core.NewRNG(cfg.Seed), base: cfg.AliveColor, step: cfg.DriftStep},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Init seeds the cells, subscribes to pointer events and paints the
// opaque background. Repeated calls are no-ops.
func (b *Board) Init() error {
	if b.state == StateStopped {
		return ErrStopped
	}
	if b.initialized {
		return nil
	}
	b.initialized = true

	count := b.geo.Count()
	rng := b.palette.rng
	b.cells = make([]Cell, count)
	population := 0
	for i := range b.cells {
		alive := rng.Chance(b.cfg.AliveChance)
		b.cells[i] = Cell{
			index:     i,
			alive:     alive,
			previous:  alive,
			committed: alive,
			neighbors: b.geo.Neighbors(i),
			from:      b.palette.base,
			to:        b.palette.base,
			progress:  rng.Float64(),
		}
		if alive {
			population++
		}
	}
	b.metrics = core.Metrics{Population: population, Density: float64(population) / float64(count)}

	b.tokens = append(b.tokens,
		b.surface.Subscribe(core.PointerDown, b.handlePointerDown),
		b.surface.Subscribe(core.PointerMove, b.handlePointerMove),
		b.surface.Subscribe(core.PointerUp, b.handlePointerUp),
	)

	bg := b.cfg.Background
	bg.A = 255
	b.surface.Canvas().FillRect(0, 0, float64(b.surface.Width()), float64(b.surface.Height()), core.Solid(bg))
	return nil
}

// Start runs the first generation and keeps rescheduling itself on the
// scheduler. It initialises the board if needed and does nothing when the
// loop is already running.
func (b *Board) Start() error {
	switch b.state {
	case StateStopped:
		return ErrStopped
	case StateRunning:
		return nil
	}
	if err := b.Init(); err != nil {
		return err
	}
	b.state = StateRunning
	b.loop()
	return nil
}

func (b *Board) loop() {
	b.frame = 0
	b.Step()
	if b.state != StateRunning {
		return
	}
	b.frame = b.sched.RequestFrame(b.loop)
}

// Step computes one generation and renders it.
func (b *Board) Step() {
	if b.cells == nil {
		return
	}
	b.advance()
	b.draw()
}

func (b *Board) advance() {
	for i := range b.cells {
		b.cells[i].snapshotPrevious()
	}

	var births, deaths, population int
	for i := range b.cells {
		c := &b.cells[i]
		c.update(b.cells)
		switch {
		case c.alive:
			population++
			if !c.previous {
				births++
			}
		case c.previous:
			deaths++
		}
	}

	b.metrics = core.Metrics{
		Generation: b.metrics.Generation + 1,
		Population: population,
		Births:     births,
		Deaths:     deaths,
		Density:    float64(population) / float64(len(b.cells)),
	}
}

func (b *Board) draw() {
	canvas := b.surface.Canvas()
	canvas.FillRect(0, 0, float64(b.surface.Width()), float64(b.surface.Height()), core.Solid(b.cfg.Background))
	for i := range b.cells {
		b.cells[i].draw(canvas, b.geo, &b.palette)
	}
	if b.overlay != nil {
		b.overlay.Draw(canvas, b.metrics)
	}
}

// Destroy stops the loop, releases pointer subscriptions and drops the
// cells. It is safe to call at any time and more than once.
func (b *Board) Destroy() {
	if b.state == StateStopped {
		return
	}
	b.state = StateStopped
	if b.frame != 0 {
		b.sched.CancelFrame(b.frame)
		b.frame = 0
	}
	for _, tok := range b.tokens {
		b.surface.Unsubscribe(tok)
	}
	b.tokens = nil
	b.cells = nil
	b.dragging = false
}

// Metrics returns the figures of the last committed generation.
func (b *Board) Metrics() core.Metrics { return b.metrics }

// Geometry returns the grid layout.
func (b *Board) Geometry() core.Geometry { return b.geo }

// State reports the lifecycle stage.
func (b *Board) State() State { return b.state }

// Dragging reports whether a paint stroke is in progress.
func (b *Board) Dragging() bool { return b.dragging }

// Len returns the number of cells, zero before Init and after Destroy.
func (b *Board) Len() int { return len(b.cells) }

// Cell returns the cell at index i, or nil when out of range.
func (b *Board) Cell(i int) *Cell {
	if i < 0 || i >= len(b.cells) {
		return nil
	}
	return &b.cells[i]
}

// Alive reports the state of cell i as of the last committed generation.
// Cells painted since then are not included; see Pending. Out-of-range
// indices report false.
func (b *Board) Alive(i int) bool {
	c := b.Cell(i)
	return c != nil && c.committed
}

// Pending reports the working state of cell i, which the next generation
// reads. It includes cells painted since the last commit.
func (b *Board) Pending(i int) bool {
	c := b.Cell(i)
	return c != nil && c.alive
}

// Population counts the cells alive as of the last committed generation.
// It always equals Metrics().Population once a generation has run.
func (b *Board) Population() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].committed {
			n++
		}
	}
	return n
}
