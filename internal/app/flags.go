package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Percent int
	Kernel  string
	Workers int

	// StepsPerTick advances several generations per frame.
	StepsPerTick int
	// HUDWidth is the width in pixels of the parameter panel; 0 hides it.
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim: "life", Scale: 3, TPS: 60, Seed: 42,
		Width: 256, Height: 256, Percent: 25, Kernel: "auto",
		StepsPerTick: 1, HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Percent, "percent", c.Percent, "initial live cell percentage (1-100)")
	fs.StringVar(&c.Kernel, "kernel", c.Kernel, "stepping kernel (auto, scalar, packed1..8, vector16, tiled)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "tiled kernel workers (0 = GOMAXPROCS)")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "generations per tick")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// SimOptions converts the config into the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"percent": strconv.Itoa(c.Percent),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"kernel":  c.Kernel,
		"workers": strconv.Itoa(c.Workers),
	}
}
