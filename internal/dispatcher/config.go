package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// RedrawOnModeChange renders after any action that changed the
	// controller's mode, unless the action already ended with a render.
	RedrawOnModeChange bool

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RedrawOnModeChange: false,
		EnableMetrics:      true,
	}
}

// WithRedrawOnModeChange returns a copy of the config with redraw on mode
// change set.
func (c Config) WithRedrawOnModeChange(redraw bool) Config {
	c.RedrawOnModeChange = redraw
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithoutMetrics returns a copy of the config with metrics disabled.
func (c Config) WithoutMetrics() Config {
	c.EnableMetrics = false
	return c
}
