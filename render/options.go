package render

import "gonum.org/v1/plot/vg"

// Config defines the raster output of a figure.
type Config struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 6.4x4.8 inch figure at 100 dpi (640x480 px).
func DefaultConfig() Config {
	return Config{
		Width:  6.4 * vg.Inch,
		Height: 4.8 * vg.Inch,
		DPI:    100,
	}
}

// WithSize sets the figure size.
func WithSize(width, height vg.Length) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width = width
			cfg.Height = height
		}
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(cfg *Config) {
		if dpi > 0 {
			cfg.DPI = dpi
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
