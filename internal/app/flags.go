package app

import "flag"

// Config represents the command-line parameters for the previewer.
type Config struct {
	Scale        int
	TPS          int
	Seed         int64
	StepsPerTick int
	HUDWidth     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 60, Seed: 42, StepsPerTick: 8, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generation reset")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "pipeline rows per tick")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
}
