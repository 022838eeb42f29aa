package controller

import (
	"encoding/json"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// JSONUI implements UI by encoding results to the command's output stream,
// for piping into other tools.
type JSONUI struct {
	cmd *cobra.Command
}

// NewJSONUI creates a new JSONUI.
func NewJSONUI(cmd *cobra.Command) *JSONUI {
	return &JSONUI{cmd: cmd}
}

// DisplayScan encodes the whole scan result, warnings included.
func (j *JSONUI) DisplayScan(result *m.ScanResult) error {
	enc := json.NewEncoder(j.cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

// DisplayWarnings is a no-op; warnings travel inside the scan result.
func (j *JSONUI) DisplayWarnings(_ []m.Warning) {}

// DisplayAction encodes the action report.
func (j *JSONUI) DisplayAction(verb string, report m.ActionReport) {
	type failure struct {
		Path   m.Path `json:"path"`
		Reason string `json:"reason"`
	}

	out := struct {
		Action    string    `json:"action"`
		Processed int       `json:"processed"`
		Skipped   int       `json:"skipped"`
		Failed    int       `json:"failed"`
		Bytes     int64     `json:"bytes"`
		Failures  []failure `json:"failures,omitempty"`
	}{
		Action:    verb,
		Processed: report.Processed,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
		Bytes:     report.Bytes,
	}

	for _, f := range report.Failures {
		out.Failures = append(out.Failures, failure{Path: f.Path, Reason: f.Reason()})
	}

	enc := json.NewEncoder(j.cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
