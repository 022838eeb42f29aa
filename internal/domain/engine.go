package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/dupescan/internal/adapter"
	m "github.com/mouse-blink/dupescan/internal/model"
)

// ErrNotFound is returned when the scan root does not exist. It surfaces
// before any work starts.
var ErrNotFound = errors.New("scan root does not exist")

// ErrCancelled is returned when the caller aborts an in-flight scan. All
// partial results are discarded; no partial group is ever reported.
var ErrCancelled = errors.New("scan cancelled")

// ScanArgs configures a single scan run.
type ScanArgs struct {
	Root      m.Path
	Recursive bool
	Algorithm Algorithm

	// Extensions is an allow-list of file extensions such as ".jpg".
	// Empty admits every file.
	Extensions []string

	// MinSize excludes files smaller than this many bytes from the scan.
	MinSize int64

	// ChunkSize is the hashing read size; 0 means DefaultChunkSize.
	ChunkSize int

	// Workers bounds the parallel hashing pool; 0 means one per CPU.
	Workers int

	// Verify re-hashes weak-digest groups with the strong algorithm and
	// splits any group whose members disagree.
	Verify bool
}

// Engine runs the filter-then-hash duplicate detection pipeline.
type Engine interface {
	Scan(ctx context.Context, args ScanArgs) (*m.ScanResult, error)
}

type engine struct {
	fs adapter.FileSystem
}

// NewEngine constructs an Engine backed by the provided filesystem adapter.
func NewEngine(fs adapter.FileSystem) Engine {
	return &engine{fs: fs}
}

// hashOutcome carries the result of hashing one candidate. A per-file
// error is data here, not a pipeline failure.
type hashOutcome struct {
	rec    m.FileRecord
	digest string
	bytes  int64
	err    error
}

// Scan walks the tree under args.Root, buckets files by size, hashes every
// member of a multi-file bucket and returns the finalized duplicate
// groups. Per-file errors become warnings; only a missing root, an invalid
// algorithm or cancellation are fatal.
func (e *engine) Scan(ctx context.Context, args ScanArgs) (*m.ScanResult, error) {
	start := time.Now()

	hasher, err := NewHasher(e.fs, args.Algorithm, args.ChunkSize)
	if err != nil {
		return nil, err
	}

	if _, err := e.fs.Stat(args.Root); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, args.Root)
		}

		return nil, fmt.Errorf("stat root %s: %w", args.Root, err)
	}

	index, warnings, err := e.discover(ctx, args)
	if err != nil {
		return nil, err
	}

	outcomes, err := e.hashAll(ctx, hasher, index.Candidates(), args.Workers)
	if err != nil {
		return nil, err
	}

	result := &m.ScanResult{
		Root:         args.Root,
		Algorithm:    string(args.Algorithm),
		FilesScanned: index.Len(),
		Warnings:     warnings,
	}

	byDigest := make(map[string][]m.FileRecord)

	for _, out := range outcomes {
		if out.err != nil {
			result.Warnings = append(result.Warnings, m.Warning{
				Path:   out.rec.Path,
				Reason: out.err.Error(),
			})

			continue
		}

		result.BytesHashed += out.bytes

		rec := out.rec
		rec.Digest = out.digest
		byDigest[out.digest] = append(byDigest[out.digest], rec)
	}

	groups := finalizeGroups(byDigest)

	if args.Verify && args.Algorithm != AlgorithmSHA256 {
		groups, err = e.verifyGroups(ctx, groups, args, result)
		if err != nil {
			return nil, err
		}

		// The surviving groups carry strong digests now, so the report
		// must name the algorithm they belong to.
		result.Algorithm = string(AlgorithmSHA256)
	}

	result.Groups = groups
	result.GroupsFound = len(groups)

	for _, g := range groups {
		result.DuplicateCount += int64(len(g.Files) - 1)
		result.WastedBytes += g.WastedBytes()
	}

	result.Duration = time.Since(start)

	return result, nil
}

// discover enumerates the tree and builds the size index. Files that fail
// the stat probe are recorded as warnings and skipped.
func (e *engine) discover(ctx context.Context, args ScanArgs) (*SizeIndex, []m.Warning, error) {
	index := NewSizeIndex()

	var warnings []m.Warning

	seq := 0

	err := e.fs.Enumerate(args.Root, args.Recursive, func(path string, info os.FileInfo, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		if err != nil {
			warnings = append(warnings, m.Warning{Path: m.Path(path), Reason: err.Error()})

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		if !matchesExtension(path, args.Extensions) {
			return nil
		}

		size := info.Size()
		if size < args.MinSize {
			return nil
		}

		index.Add(m.FileRecord{Path: m.Path(path), Size: size, Seq: seq})
		seq++

		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		return nil, nil, fmt.Errorf("enumerate %s: %w", args.Root, err)
	}

	return index, warnings, nil
}

// hashAll digests every candidate across a bounded worker pool. Each
// worker writes into its own outcome slot, so the digest map is merged by
// a single consumer afterwards. A cancelled context discards everything.
func (e *engine) hashAll(ctx context.Context, hasher *Hasher, candidates []m.FileRecord, workers int) ([]hashOutcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]hashOutcome, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			digest, n, err := hasher.Sum(rec.Path)
			outcomes[i] = hashOutcome{rec: rec, digest: digest, bytes: n, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	return outcomes, nil
}

// verifyGroups re-hashes the members of every weak-digest group with
// SHA-256 and regroups them by the strong digest, splitting any group that
// was a weak-hash collision. Members that fail the second read become
// warnings, exactly like the first pass.
func (e *engine) verifyGroups(ctx context.Context, groups []m.DigestGroup, args ScanArgs, result *m.ScanResult) ([]m.DigestGroup, error) {
	strong, err := NewHasher(e.fs, AlgorithmSHA256, args.ChunkSize)
	if err != nil {
		return nil, err
	}

	var members []m.FileRecord
	for _, g := range groups {
		members = append(members, g.Files...)
	}

	outcomes, err := e.hashAll(ctx, strong, members, args.Workers)
	if err != nil {
		return nil, err
	}

	byDigest := make(map[string][]m.FileRecord)

	for _, out := range outcomes {
		if out.err != nil {
			result.Warnings = append(result.Warnings, m.Warning{
				Path:   out.rec.Path,
				Reason: out.err.Error(),
			})

			continue
		}

		result.BytesHashed += out.bytes

		rec := out.rec
		rec.Digest = out.digest
		byDigest[out.digest] = append(byDigest[out.digest], rec)
	}

	return finalizeGroups(byDigest), nil
}

// finalizeGroups drops singleton digests and orders each surviving group
// by discovery sequence, so the first-discovered copy sits at index 0
// regardless of which hashing worker finished first. Groups themselves are
// ordered by their keeper's sequence.
func finalizeGroups(byDigest map[string][]m.FileRecord) []m.DigestGroup {
	groups := make([]m.DigestGroup, 0, len(byDigest))

	for digest, files := range byDigest {
		if len(files) < 2 {
			continue
		}

		sort.Slice(files, func(i, j int) bool {
			return files[i].Seq < files[j].Seq
		})

		groups = append(groups, m.DigestGroup{
			Digest: digest,
			Size:   files[0].Size,
			Files:  files,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Files[0].Seq < groups[j].Files[0].Seq
	})

	return groups
}

func matchesExtension(path string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	ext := filepath.Ext(path)

	for _, a := range allowed {
		if !strings.HasPrefix(a, ".") {
			a = "." + a
		}

		if strings.EqualFold(ext, a) {
			return true
		}
	}

	return false
}
