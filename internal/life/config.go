package life

import (
	"errors"
	"fmt"
	"image/color"

	"lifecanvas/internal/core"
)

var (
	// ErrInvalidConfig reports a configuration value outside its domain.
	ErrInvalidConfig = errors.New("life: invalid config")
	// ErrStopped is returned when a destroyed board is asked to run again.
	ErrStopped = errors.New("life: board destroyed")
	// ErrNotMounted is returned by Session operations that need a surface.
	ErrNotMounted = errors.New("life: session not mounted")
)

// Config holds the tunables of a board.
type Config struct {
	// Scale is the pixel size of one cell.
	Scale int

	// AliveChance is the probability that a cell starts alive.
	AliveChance float64

	// Seed feeds the initial pattern and colour drift. Zero seeds from the clock.
	Seed int64

	Background color.NRGBA
	AliveColor color.NRGBA

	// DriftStep is the colour drift progress added per rendered frame.
	DriftStep float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Scale:       5,
		AliveChance: 0.3,
		Background:  core.HSLA(0, 0, 0, 0.2),
		AliveColor:  core.HSLA(180, 80, 50, 0.6),
		DriftStep:   0.01,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: got %d", core.ErrInvalidScale, c.Scale)
	}
	if c.AliveChance < 0 || c.AliveChance > 1 {
		return fmt.Errorf("%w: alive chance %v outside [0,1]", ErrInvalidConfig, c.AliveChance)
	}
	if c.DriftStep <= 0 {
		return fmt.Errorf("%w: drift step %v must be positive", ErrInvalidConfig, c.DriftStep)
	}
	return nil
}
