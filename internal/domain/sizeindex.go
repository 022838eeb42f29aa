package domain

import (
	"sort"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// SizeIndex partitions discovered files into buckets keyed by byte length.
// Files of distinct sizes can never be duplicates, so only members of
// buckets with more than one file move on to the hashing phase. Every
// record lands in exactly one bucket.
type SizeIndex struct {
	buckets map[int64][]m.FileRecord
	files   int64
}

// NewSizeIndex returns an empty index.
func NewSizeIndex() *SizeIndex {
	return &SizeIndex{buckets: make(map[int64][]m.FileRecord)}
}

// Add appends rec to its size bucket, preserving discovery order within
// the bucket.
func (x *SizeIndex) Add(rec m.FileRecord) {
	x.buckets[rec.Size] = append(x.buckets[rec.Size], rec)
	x.files++
}

// Len returns the number of files indexed.
func (x *SizeIndex) Len() int64 {
	return x.files
}

// Bucket returns the records of the given size in discovery order.
func (x *SizeIndex) Bucket(size int64) []m.FileRecord {
	return x.buckets[size]
}

// Candidates returns the members of every bucket holding more than one
// file, ordered by discovery sequence. Size-1 buckets never reach the
// hashing phase.
func (x *SizeIndex) Candidates() []m.FileRecord {
	var candidates []m.FileRecord

	for _, bucket := range x.buckets {
		if len(bucket) > 1 {
			candidates = append(candidates, bucket...)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Seq < candidates[j].Seq
	})

	return candidates
}
