package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"tile-snake/internal/render"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Model  string
	Width  int
	Height int
	Tile   int
	TPS    int
	Frames int
	Seed   int64
	Mute   bool
	Set    KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Model: "snake", Width: 32, Height: 24, Tile: 16, TPS: 40, Frames: 4, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Model, "model", c.Model, "game model to run")
	fs.IntVar(&c.Width, "w", c.Width, "board width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "board height in tiles")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "animation frames per second")
	fs.IntVar(&c.Frames, "frames", c.Frames, "animation frames per move")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.Var(&c.Set, "set", "model option in key=value form (repeatable)")
}

// ModelOptions returns the option map handed to the model factory. Explicit
// -set overrides win over the dedicated flags.
func (c *Config) ModelOptions() (map[string]string, error) {
	opts := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("model option %q is not key=value", kv)
		}
		opts[key] = strings.TrimSpace(value)
	}
	return opts, nil
}

// RenderOptions returns the tile renderer options for this configuration.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.Tile > 0 {
		opts.TileSize = uint16(min(c.Tile, 255))
	}
	if c.Frames > 0 {
		opts.Frames = c.Frames
		opts.Hold = 6 * c.Frames
	}
	return opts
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
