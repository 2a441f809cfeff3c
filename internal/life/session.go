package life

import (
	"fmt"
	"log"

	"lifecanvas/internal/core"
)

// Session is the lifecycle a host shell drives: mount a board on a surface,
// tear it down, and rebuild it from scratch on resize.
type Session struct {
	cfg       Config
	sched     core.Scheduler
	logger    *log.Logger
	boardOpts []BoardOption

	surface core.Surface
	board   *Board
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithLogger routes lifecycle logging to l.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithBoardOptions applies opts to every board the session mounts.
func WithBoardOptions(opts ...BoardOption) SessionOption {
	return func(s *Session) { s.boardOpts = append(s.boardOpts, opts...) }
}

// NewSession returns an unmounted session.
func NewSession(cfg Config, sched core.Scheduler, opts ...SessionOption) *Session {
	s := &Session{cfg: cfg, sched: sched, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount builds a fresh board on surface and starts it. Any board already
// mounted is destroyed first. A nil surface is rejected without touching
// the current mount.
func (s *Session) Mount(surface core.Surface) error {
	if surface == nil {
		return fmt.Errorf("mount: %w: nil surface", ErrInvalidConfig)
	}
	s.Unmount()
	s.surface = surface

	b, err := NewBoard(surface, s.sched, s.cfg, s.boardOpts...)
	if err != nil {
		return fmt.Errorf("mount %dx%d surface: %w", surface.Width(), surface.Height(), err)
	}
	if err := b.Start(); err != nil {
		b.Destroy()
		return fmt.Errorf("start board: %w", err)
	}
	s.board = b
	geo := b.Geometry()
	s.logger.Printf("life: mounted %dx%d grid (%d cells) on %dx%d surface",
		geo.Columns(), geo.Rows(), geo.Count(), surface.Width(), surface.Height())
	return nil
}

// Unmount destroys the current board. It is a no-op when nothing is mounted.
func (s *Session) Unmount() {
	if s.board == nil {
		return
	}
	s.board.Destroy()
	s.board = nil
}

// OnResize discards the current board, resizes the surface and mounts a new
// board. Cell state does not survive.
func (s *Session) OnResize(w, h int) error {
	if s.surface == nil {
		return ErrNotMounted
	}
	surface := s.surface
	s.Unmount()
	surface.SetSize(w, h)
	return s.Mount(surface)
}

// Reseed changes the seed used by subsequent mounts.
func (s *Session) Reseed(seed int64) { s.cfg.Seed = seed }

// Board returns the mounted board, or nil.
func (s *Session) Board() *Board { return s.board }

// Mounted reports whether a board is running.
func (s *Session) Mounted() bool { return s.board != nil }
