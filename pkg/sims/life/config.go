package life

import (
	"strconv"
	"strings"
)

// Config controls the Life simulation.
type Config struct {
	Width   int
	Height  int
	Percent int
	Seed    int64

	// Kernel names the stepper, as accepted by kernel.ParseKind.
	Kernel string
	// Workers bounds the tiled kernel's goroutines; 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Percent: 25,
		Seed:    1337,
		Kernel:  "auto",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["percent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 100 {
			c.Percent = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["kernel"]; ok && strings.TrimSpace(v) != "" {
		c.Kernel = strings.TrimSpace(v)
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
