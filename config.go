package proofkit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Digest algorithm (sha256, sha512, blake3, xxhash)
	Algorithm string `env:"PROOFKIT_ALGORITHM,default:sha256"`

	// Read buffer size in bytes
	ChunkSize int `env:"PROOFKIT_CHUNK_SIZE,default:32768"`

	// Logging
	LogLevel  string `env:"PROOFKIT_LOG_LEVEL,default:info"`  // debug, info, warn, error
	LogFormat string `env:"PROOFKIT_LOG_FORMAT,default:text"` // text, json

	// Watch mode coalescing window in milliseconds
	WatchDebounceMS int `env:"PROOFKIT_WATCH_DEBOUNCE_MS,default:100"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options converts the config into Validator options. The logger is not
// included; use NewLogger to build one for a given output.
func (c *Config) Options() ([]Option, error) {
	alg, err := ParseChecksumAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrInvalidChunkSize, c.ChunkSize)
	}
	if c.WatchDebounceMS < 0 {
		return nil, fmt.Errorf("%w: watch debounce must not be negative: %d", ErrInvalidConfig, c.WatchDebounceMS)
	}

	return []Option{
		WithAlgorithm(alg),
		WithChunkSize(c.ChunkSize),
		WithWatchDebounce(time.Duration(c.WatchDebounceMS) * time.Millisecond),
	}, nil
}

// NewLogger builds a slog logger writing to w with the configured level
// and format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format: %s", ErrInvalidConfig, c.LogFormat)
	}
}

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
