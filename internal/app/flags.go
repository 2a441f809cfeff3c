package app

import (
	"flag"

	"lifecanvas/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Alive  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{Scale: d.Scale, TPS: 60, Width: 1280, Height: 720, Alive: d.AliveChance}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial pattern (0 = random)")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.Float64Var(&c.Alive, "alive", c.Alive, "probability that a cell starts alive")
}

// Life converts the flags into a board configuration.
func (c *Config) Life() life.Config {
	cfg := life.DefaultConfig()
	cfg.Scale = c.Scale
	cfg.Seed = c.Seed
	cfg.AliveChance = c.Alive
	return cfg
}
