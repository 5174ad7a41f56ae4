package proofkit

import (
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// Option represents a configuration option
type Option func(*Options)

// Opener opens a path for reading. The default is os.Open.
type Opener func(path string) (fs.File, error)

// Options contains all settings of a Validator
type Options struct {
	// Algorithm is the digest used for the hash field
	Algorithm ChecksumAlgorithm

	// ChunkSize is the read buffer size in bytes
	ChunkSize int

	// Extractor fills the optional metadata fields
	Extractor MetadataExtractor

	// Logger receives debug and warning records
	Logger *slog.Logger

	// Open opens the file to validate
	Open Opener

	// WatchDebounce coalesces bursts of change events in Watch
	WatchDebounce time.Duration
}

func defaultOptions() Options {
	return Options{
		Algorithm:     DefaultChecksumAlgorithm,
		ChunkSize:     DefaultChunkSize,
		Extractor:     NoMetadata,
		Open:          openFile,
		WatchDebounce: 100 * time.Millisecond,
	}
}

func openFile(path string) (fs.File, error) {
	return os.Open(path)
}

// WithAlgorithm sets the digest algorithm
func WithAlgorithm(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Algorithm = algorithm
	}
}

// WithChunkSize sets the read buffer size
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.ChunkSize = size
	}
}

// WithMetadataExtractor sets the extractor for timestamp and gps
func WithMetadataExtractor(extractor MetadataExtractor) Option {
	return func(o *Options) {
		o.Extractor = extractor
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOpener replaces os.Open, e.g. to validate files from another source
func WithOpener(open Opener) Option {
	return func(o *Options) {
		o.Open = open
	}
}

// WithWatchDebounce sets how long Watch waits for further events before
// re-validating
func WithWatchDebounce(d time.Duration) Option {
	return func(o *Options) {
		o.WatchDebounce = d
	}
}
