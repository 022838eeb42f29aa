package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// SimpleUI implements UI with plain text via the cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScan prints one table row per file, keepers first in each group,
// followed by the summary counters.
func (s *SimpleUI) DisplayScan(result *m.ScanResult) error {
	if len(result.Groups) == 0 {
		s.printf("No duplicate files found.\n")
		s.printf("Scanned %d file(s) in %s.\n", result.FilesScanned, formatDuration(result.Duration))

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Status", "Size", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for i, group := range result.Groups {
		for j, file := range group.Files {
			status := "KEEP"
			if j > 0 {
				status = "DUPLICATE"
			}

			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				status,
				humanize.IBytes(uint64(group.Size)),
				string(file.Path),
			})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Groups %d", result.GroupsFound),
		fmt.Sprintf("Duplicates %d", result.DuplicateCount),
		humanize.IBytes(uint64(result.WastedBytes)),
		"wasted",
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	s.printf("Scanned %d file(s), hashed %s in %s.\n",
		result.FilesScanned,
		humanize.IBytes(uint64(result.BytesHashed)),
		formatDuration(result.Duration),
	)
	s.printf("Reclaimable space: %s\n", humanize.IBytes(uint64(result.WastedBytes)))

	return nil
}

// DisplayWarnings prints the skipped files, one per line.
func (s *SimpleUI) DisplayWarnings(warnings []m.Warning) {
	if len(warnings) == 0 {
		return
	}

	s.printf("\n%d file(s) skipped:\n", len(warnings))

	for _, w := range warnings {
		s.printf("  %s: %s\n", w.Path, w.Reason)
	}
}

// DisplayAction prints the aggregate action outcome and any per-item
// failures.
func (s *SimpleUI) DisplayAction(verb string, report m.ActionReport) {
	s.printf("%s %d file(s), %s.\n", verb, report.Processed, humanize.IBytes(uint64(report.Bytes)))

	if report.Skipped > 0 {
		s.printf("Skipped %d file(s).\n", report.Skipped)
	}

	if report.Failed > 0 {
		s.printf("%d file(s) failed:\n", report.Failed)

		for _, failure := range report.Failures {
			s.printf("  %s: %s\n", failure.Path, failure.Reason())
		}
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	return d.Round(10 * time.Millisecond).String()
}
