// Package model holds the plain data types shared across the dupescan
// engine, adapters and UI layers.
package model

// Path represents a file system path.
type Path string

// FileRecord describes a single file discovered during a scan. Size is
// sampled once at discovery time; a file changing size mid-scan has
// undefined bucket membership. Digest stays empty until the grouping
// phase hashes the file. Identity is the path.
type FileRecord struct {
	Path   Path   `json:"path"`
	Size   int64  `json:"size_bytes"`
	Digest string `json:"digest,omitempty"`

	// Seq is the position of the file in traversal order. The engine uses
	// it to pick the kept copy of a duplicate group, so it must never be
	// derived from path comparison or modification time.
	Seq int `json:"-"`
}
