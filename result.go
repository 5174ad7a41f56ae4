package proofkit

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Result is the outcome of validating one file. It is either *Verified or
// *Failed; no other implementations exist.
type Result interface {
	// Record projects the result onto the wire shape sent to the host.
	Record() Record

	// Summary returns a one-line human-readable description.
	Summary() string

	isResult()
}

// Verified is returned when the file was opened and read to the end.
type Verified struct {
	// Path is the validated path as given by the caller
	Path string

	// Hash is the lowercase hex digest of the full byte stream
	Hash string

	// Algorithm is the digest that produced Hash
	Algorithm ChecksumAlgorithm

	// Size is the number of bytes hashed
	Size int64

	// Metadata holds optional embedded fields; both are nil unless a
	// MetadataExtractor populated them.
	Metadata Metadata
}

// Failed is returned when the file could not be opened or read.
type Failed struct {
	Path string
	Err  *ValidationError
}

func (*Verified) isResult() {}
func (*Failed) isResult()   {}

// Record implements Result
func (r *Verified) Record() Record {
	return Record{
		Valid:     true,
		Hash:      r.Hash,
		Timestamp: r.Metadata.Timestamp,
		GPS:       r.Metadata.GPS,
	}
}

// Record implements Result
func (r *Failed) Record() Record {
	msg := r.Err.Error()
	return Record{
		Valid: false,
		Error: &msg,
	}
}

// Summary implements Result
func (r *Verified) Summary() string {
	return fmt.Sprintf("✓ %s (%s) %s:%s", r.Path, FormatSize(r.Size), r.Algorithm, r.Hash)
}

// Summary implements Result
func (r *Failed) Summary() string {
	return fmt.Sprintf("✗ %s: %s", r.Path, r.Err.Error())
}

// Error returns the failure cause, or nil for a verified result.
func Error(r Result) error {
	if f, ok := r.(*Failed); ok {
		return f.Err
	}
	return nil
}

// Record is the serialized validation record returned to the host.
// Optional fields encode as null when absent.
type Record struct {
	Valid     bool    `json:"valid"`
	Hash      string  `json:"hash"`
	Timestamp *string `json:"timestamp"`
	GPS       *string `json:"gps"`
	Error     *string `json:"error"`
}

// MarshalJSON encodes the record with the host's field names.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(plain(r))
}

// FormatSize formats a byte count as a human-readable string
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
