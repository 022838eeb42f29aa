package model

import "time"

// DigestGroup is a finalized set of files sharing one content digest.
// Files[0] is always the first-discovered copy and the designated keep
// target; everything after it is a duplicate. A group is only ever
// materialized with at least two members.
type DigestGroup struct {
	Digest string       `json:"digest"`
	Size   int64        `json:"size_bytes"`
	Files  []FileRecord `json:"files"`
}

// Keeper returns the kept copy of the group.
func (g DigestGroup) Keeper() FileRecord {
	return g.Files[0]
}

// Duplicates returns every member except the kept copy.
func (g DigestGroup) Duplicates() []FileRecord {
	return g.Files[1:]
}

// WastedBytes is the storage occupied by the duplicate copies beyond the
// single kept one.
func (g DigestGroup) WastedBytes() int64 {
	return g.Size * int64(len(g.Files)-1)
}

// Warning records a file that was skipped during a scan and why. Warnings
// never abort a scan.
type Warning struct {
	Path   Path   `json:"path"`
	Reason string `json:"reason"`
}

// ScanResult is the finalized output of one scan run: every digest group
// with two or more members plus aggregate counters.
type ScanResult struct {
	Root      Path   `json:"root"`
	Algorithm string `json:"algorithm"`

	// Groups are ordered by the discovery sequence of their kept copy.
	Groups []DigestGroup `json:"groups"`

	FilesScanned   int64         `json:"files_scanned"`
	BytesHashed    int64         `json:"bytes_hashed"`
	GroupsFound    int           `json:"groups_found"`
	DuplicateCount int64         `json:"duplicate_count"`
	WastedBytes    int64         `json:"wasted_bytes"`
	Duration       time.Duration `json:"duration_ns"`

	Warnings []Warning `json:"warnings,omitempty"`
}
