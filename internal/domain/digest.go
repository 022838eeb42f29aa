// Package domain implements the duplicate detection pipeline: size
// bucketing, parallel hashing, canonical grouping and the delete/relocate
// appliers.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/mouse-blink/dupescan/internal/adapter"
	m "github.com/mouse-blink/dupescan/internal/model"
)

// Algorithm selects the content digest used for a whole scan run.
// Algorithms are never mixed within one run's groups.
type Algorithm string

const (
	// AlgorithmXX64 is the fast non-cryptographic choice for high-volume
	// filtering.
	AlgorithmXX64 Algorithm = "xx64"

	// AlgorithmSHA256 trades speed for higher collision confidence.
	AlgorithmSHA256 Algorithm = "sha256"
)

// DefaultChunkSize bounds how much of a file is held in memory while
// hashing, regardless of file size.
const DefaultChunkSize = 8 * 1024

// ErrInvalidAlgorithm is returned at configuration time for an unsupported
// digest selector, before any work starts.
var ErrInvalidAlgorithm = errors.New("unsupported digest algorithm")

// ParseAlgorithm maps a user-facing selector to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "xx64", "xxhash":
		return AlgorithmXX64, nil
	case "sha256":
		return AlgorithmSHA256, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
	}
}

func (a Algorithm) newHash() hash.Hash {
	if a == AlgorithmSHA256 {
		return sha256.New()
	}

	return xxhash.New()
}

// Hasher streams files through a digest in constant memory. It is safe for
// concurrent use; chunk buffers are pooled across workers.
type Hasher struct {
	fs        adapter.FileSystem
	algorithm Algorithm
	buffers   sync.Pool
}

// NewHasher validates the algorithm selector and returns a Hasher that
// reads chunkSize bytes at a time. chunkSize <= 0 falls back to
// DefaultChunkSize.
func NewHasher(fs adapter.FileSystem, algorithm Algorithm, chunkSize int) (*Hasher, error) {
	switch algorithm {
	case AlgorithmXX64, AlgorithmSHA256:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algorithm)
	}

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Hasher{
		fs:        fs,
		algorithm: algorithm,
		buffers: sync.Pool{
			New: func() any {
				b := make([]byte, chunkSize)
				return &b
			},
		},
	}, nil
}

// Algorithm returns the digest algorithm this hasher was built with.
func (h *Hasher) Algorithm() Algorithm {
	return h.algorithm
}

// Sum hashes the full content of the file at path and returns the hex
// digest together with the number of bytes read. A failed open or read
// aborts hashing of this file only; the file is never modified.
func (h *Hasher) Sum(path m.Path) (string, int64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return "", 0, err
	}

	defer func() { _ = f.Close() }()

	digest := h.algorithm.newHash()

	bufPtr := h.buffers.Get().(*[]byte)
	defer h.buffers.Put(bufPtr)

	n, err := io.CopyBuffer(digest, f, *bufPtr)
	if err != nil {
		return "", n, fmt.Errorf("read %s: %w", path, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), n, nil
}
