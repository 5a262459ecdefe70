package transmission

import "gonum.org/v1/gonum/floats"

// Default evaluation grid: 3000 to 11000 Angstroms in 1 Angstrom steps.
const (
	DefaultMinWavelength = 3000.0
	DefaultMaxWavelength = 11000.0
	DefaultGridStep      = 1.0
)

// defaultGridTolerance is the per-element tolerance under which a requested
// grid is treated as identical to the cached one.
const defaultGridTolerance = 1e-8

// Config defines model construction settings.
type Config struct {
	// Wavelengths is the initial evaluation grid in Angstroms, strictly
	// increasing.
	Wavelengths []float64
	// GridTolerance is the per-element tolerance used when comparing a
	// requested grid against the cached one.
	GridTolerance float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Wavelengths:   DefaultWavelengths(),
		GridTolerance: defaultGridTolerance,
	}
}

// DefaultWavelengths returns a fresh copy of the default evaluation grid.
func DefaultWavelengths() []float64 {
	n := int((DefaultMaxWavelength-DefaultMinWavelength)/DefaultGridStep) + 1
	return floats.Span(make([]float64, n), DefaultMinWavelength, DefaultMaxWavelength)
}

// WithWavelengths sets the initial evaluation grid. The slice is copied.
func WithWavelengths(wavelengths []float64) Option {
	return func(cfg *Config) {
		if len(wavelengths) > 0 {
			cfg.Wavelengths = append([]float64(nil), wavelengths...)
		}
	}
}

// WithGridTolerance sets the grid comparison tolerance.
func WithGridTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.GridTolerance = tol
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
