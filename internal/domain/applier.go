package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/dupescan/internal/adapter"
	m "github.com/mouse-blink/dupescan/internal/model"
)

// Applier performs delete or relocate on the non-kept members of finalized
// duplicate groups. Index 0 of each group is never touched, and a file the
// engine failed to hash never reaches the applier because it was excluded
// from grouping.
type Applier interface {
	// Delete removes every duplicate the confirmer approves. Per-item
	// failures are collected in the report; they never stop the batch.
	Delete(result *m.ScanResult, confirm adapter.Confirmer) m.ActionReport

	// Relocate moves every duplicate into dest, resolving name collisions
	// with a numeric suffix before the extension. Only a failure to create
	// dest itself is fatal.
	Relocate(result *m.ScanResult, dest m.Path) (m.ActionReport, error)
}

type applier struct {
	fs adapter.FileSystem
}

// NewApplier constructs an Applier backed by the provided filesystem
// adapter.
func NewApplier(fs adapter.FileSystem) Applier {
	return &applier{fs: fs}
}

func (a *applier) Delete(result *m.ScanResult, confirm adapter.Confirmer) m.ActionReport {
	var report m.ActionReport

	for _, group := range result.Groups {
		for _, dup := range group.Duplicates() {
			if !confirm.Confirm(dup.Path) {
				report.Skipped++

				continue
			}

			if err := a.fs.Remove(dup.Path); err != nil {
				report.Failed++
				report.Failures = append(report.Failures, m.ActionFailure{Path: dup.Path, Err: err})

				continue
			}

			report.Processed++
			report.Bytes += group.Size
		}
	}

	return report
}

func (a *applier) Relocate(result *m.ScanResult, dest m.Path) (m.ActionReport, error) {
	if err := a.fs.MkdirAll(dest, 0o750); err != nil {
		return m.ActionReport{}, fmt.Errorf("create destination %s: %w", dest, err)
	}

	var report m.ActionReport

	for _, group := range result.Groups {
		for _, dup := range group.Duplicates() {
			target := a.freePath(dest, filepath.Base(string(dup.Path)))

			if err := a.fs.Move(dup.Path, target); err != nil {
				report.Failed++
				report.Failures = append(report.Failures, m.ActionFailure{Path: dup.Path, Err: err})

				continue
			}

			report.Processed++
			report.Bytes += group.Size
		}
	}

	return report, nil
}

// freePath resolves name collisions in dir by appending the first unused
// integer suffix, checked sequentially starting at 1: name.ext, name_1.ext,
// name_2.ext, …
func (a *applier) freePath(dir m.Path, name string) m.Path {
	candidate := filepath.Join(string(dir), name)
	if !a.exists(candidate) {
		return m.Path(candidate)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 1; ; i++ {
		candidate = filepath.Join(string(dir), fmt.Sprintf("%s_%d%s", stem, i, ext))
		if !a.exists(candidate) {
			return m.Path(candidate)
		}
	}
}

func (a *applier) exists(path string) bool {
	_, err := a.fs.Stat(m.Path(path))

	return err == nil
}
