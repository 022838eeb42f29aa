package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dupescan/internal/controller"
	m "github.com/mouse-blink/dupescan/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report.json]",
		Short: "View a previously saved scan report",
		Long:  "Load a report saved with --output and display it without rescanning.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := reportStore.Load(m.Path(args[0]))
			if err != nil {
				return err
			}

			ui := uiFactory(cmd, jsonFlag, controller.IsTTY(os.Stdout))
			if err := ui.DisplayScan(result); err != nil {
				return err
			}
			ui.DisplayWarnings(result.Warnings)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
