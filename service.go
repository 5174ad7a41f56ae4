package proofkit

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultValidator *Validator
	defaultFallback  *Validator
	defaultOnce      sync.Once
	defaultErr       error
)

// Builder provides a way to create Validator instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Validator using the builder's prefix
func (b *Builder) Init() error {
	cfg, err := b.load()
	if err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Validator using the builder's prefix
func (b *Builder) New() (*Validator, error) {
	cfg, err := b.load()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

func (b *Builder) load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init initializes the global validator. Without a config it is loaded
// from the environment.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		defer func() {
			if defaultErr != nil {
				slog.Warn("proofkit: using default settings", "error", defaultErr)
				defaultFallback, _ = New()
			}
		}()

		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultValidator, defaultErr = NewFromConfig(cfg)
	})

	return defaultErr
}

// NewFromConfig creates a Validator from config, logging to stderr.
func NewFromConfig(cfg *Config, extra ...Option) (*Validator, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithLogger(logger))

	v, err := New(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return v, nil
}

// Default returns the global Validator, initializing it from the
// environment on first use. If the environment is invalid it falls back
// to the built-in defaults, logging the problem once.
func Default() *Validator {
	if err := Init(); err != nil {
		return defaultFallback
	}
	return defaultValidator
}

// Validate validates path with the global Validator
func Validate(path string) Result {
	return Default().Validate(path)
}
