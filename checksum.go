package proofkit

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// ChecksumAlgorithm names a digest used to fingerprint file content.
type ChecksumAlgorithm string

const (
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	ChecksumSHA512 ChecksumAlgorithm = "sha512"
	ChecksumBLAKE3 ChecksumAlgorithm = "blake3"
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

// DefaultChecksumAlgorithm is the digest reported to the host.
const DefaultChecksumAlgorithm = ChecksumSHA256

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 32 * 1024

// maxConsecutiveEmptyReads matches bufio's guard against readers that
// never make progress.
const maxConsecutiveEmptyReads = 100

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumSHA512:
		return sha512.New(), nil
	case ChecksumBLAKE3:
		return blake3.New(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// ParseChecksumAlgorithm converts user input such as "SHA256" or "sha-256"
// into a supported algorithm.
func ParseChecksumAlgorithm(s string) (ChecksumAlgorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "")
	alg := ChecksumAlgorithm(name)
	if _, err := NewHasher(alg); err != nil {
		return "", err
	}
	return alg, nil
}

// HashReader streams r through the algorithm's digest in chunks of
// chunkSize bytes and returns the lowercase hex digest.
//
// Only the bytes actually read are hashed, so the digest does not depend
// on chunkSize. A read error discards the partial digest.
func HashReader(r io.Reader, algorithm ChecksumAlgorithm, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		return "", ErrInvalidChunkSize
	}

	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := copyChunks(h, r, make([]byte, chunkSize)); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyChunks feeds r into h until EOF and returns the number of bytes
// hashed. Unlike io.CopyBuffer it never delegates to WriterTo or
// ReaderFrom, so every byte passes through buf.
func copyChunks(h hash.Hash, r io.Reader, buf []byte) (int64, error) {
	var total int64
	empty := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			empty = 0
			total += int64(n)
			// hash.Hash.Write never returns an error
			h.Write(buf[:n])
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return total, io.ErrNoProgress
			}
		}
	}
}
