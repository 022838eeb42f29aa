package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display on a
// terminal. Warnings and action reports stay plain text; only the group
// listing is worth browsing interactively.
type TUI struct {
	cmd    *cobra.Command
	plain  *SimpleUI
	runner func(model tea.Model) error
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		cmd:   cmd,
		plain: NewSimpleUI(cmd),
		runner: func(model tea.Model) error {
			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithAltScreen())
			_, err := program.Run()

			return err
		},
	}
}

// DisplayScan shows the duplicate groups in a scrollable, filterable list.
// Small results are printed directly without entering the alt screen.
func (t *TUI) DisplayScan(result *m.ScanResult) error {
	if len(result.Groups) == 0 {
		return t.plain.DisplayScan(result)
	}

	model := newGroupModel(result)

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.cmd.OutOrStdout(), model.View())

		return err
	}

	return t.runner(model)
}

// DisplayWarnings delegates to the plain renderer.
func (t *TUI) DisplayWarnings(warnings []m.Warning) {
	t.plain.DisplayWarnings(warnings)
}

// DisplayAction delegates to the plain renderer.
func (t *TUI) DisplayAction(verb string, report m.ActionReport) {
	t.plain.DisplayAction(verb, report)
}
