// Package controller provides output adapters for displaying scan results
// and action outcomes.
package controller

import (
	m "github.com/mouse-blink/dupescan/internal/model"
)

// UI defines the interface for presenting scan results.
// Implementations can use different output methods (plain text, TUI, JSON).
type UI interface {
	// DisplayScan renders the duplicate groups and summary counters.
	DisplayScan(result *m.ScanResult) error

	// DisplayWarnings lists the files the scan had to skip.
	DisplayWarnings(warnings []m.Warning)

	// DisplayAction reports the outcome of a bulk delete or relocate.
	// verb is the past-tense action name, e.g. "Deleted".
	DisplayAction(verb string, report m.ActionReport)
}
