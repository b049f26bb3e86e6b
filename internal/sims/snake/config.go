package snake

import "strconv"

// Config controls the board and the opening position.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Length is the number of body segments at the start of a game.
	Length int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 24, Seed: 1337, Length: 4}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxSide {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= maxSide {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Length = parsed
		}
	}
	return c
}

// maxSide keeps the Z-order backing array of a board within a few MiB.
const maxSide = 2048
