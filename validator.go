package proofkit

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
)

// Validator hashes files and reports the outcome as a Result.
//
// A Validator holds only immutable settings and is safe for concurrent
// use. Each call opens, owns and closes its own file handle.
type Validator struct {
	opts Options
}

// New creates a Validator. It fails only on invalid options; Validate
// itself never returns an error.
func New(opts ...Option) (*Validator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := NewHasher(o.Algorithm); err != nil {
		return nil, err
	}
	if o.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, o.ChunkSize)
	}
	if o.Extractor == nil {
		o.Extractor = NoMetadata
	}
	if o.Open == nil {
		o.Open = openFile
	}

	return &Validator{opts: o}, nil
}

// Algorithm returns the configured digest algorithm
func (v *Validator) Algorithm() ChecksumAlgorithm {
	return v.opts.Algorithm
}

// Validate opens path, streams it through the digest and returns either
// *Verified or *Failed. Open and read failures, and panics from a custom
// Opener or fs.File, are reported as *Failed. The MetadataExtractor can
// only leave the metadata fields empty.
func (v *Validator) Validate(path string) (result Result) {
	kind := ErrorKindOpen
	defer func() {
		if r := recover(); r != nil {
			result = v.fail(&ValidationError{Kind: kind, Path: path, Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	f, err := v.opts.Open(path)
	if err != nil {
		return v.fail(newOpenError(path, err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return v.fail(newOpenError(path, err))
	}
	if info.IsDir() {
		return v.fail(newOpenError(path, &fs.PathError{Op: "open", Path: path, Err: ErrIsDir}))
	}

	kind = ErrorKindRead

	// Algorithm was checked in New
	h, _ := NewHasher(v.opts.Algorithm)
	size, err := copyChunks(h, f, make([]byte, v.opts.ChunkSize))
	if err != nil {
		return v.fail(newReadError(path, err))
	}

	res := &Verified{
		Path:      path,
		Hash:      hex.EncodeToString(h.Sum(nil)),
		Algorithm: v.opts.Algorithm,
		Size:      size,
	}

	res.Metadata = v.extractMetadata(path, info)

	v.logger().Debug("file validated",
		"path", path,
		"algorithm", res.Algorithm,
		"size", res.Size,
		"hash", res.Hash,
	)
	return res
}

// extractMetadata runs the extractor for an already hashed file. Errors and
// panics are logged and yield empty metadata.
func (v *Validator) extractMetadata(path string, info fs.FileInfo) (md Metadata) {
	defer func() {
		if r := recover(); r != nil {
			v.logger().Warn("metadata extraction failed", "path", path, "error", fmt.Errorf("panic: %v", r))
			md = Metadata{}
		}
	}()

	md, err := v.opts.Extractor.Extract(path, info)
	if err != nil {
		v.logger().Warn("metadata extraction failed", "path", path, "error", err)
		return Metadata{}
	}
	return md
}

func (v *Validator) fail(err *ValidationError) *Failed {
	v.logger().Warn("file validation failed",
		"path", err.Path,
		"kind", err.Kind,
		"error", err.Err,
	)
	return &Failed{Path: err.Path, Err: err}
}

func (v *Validator) logger() *slog.Logger {
	if v.opts.Logger != nil {
		return v.opts.Logger
	}
	return slog.Default()
}
