package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dupescan/internal/controller"
	m "github.com/mouse-blink/dupescan/internal/model"
)

var moveDestFlag string

// moveCmd represents the move command.
var moveCmd = newMoveCmd()

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [directory]",
		Short: "Move duplicate files into another directory",
		Long: `Scan a directory and move the duplicate copies into --dest, keeping
the first file found of every group in place. Name collisions inside
the destination get a _1, _2, ... suffix before the extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanArgs, err := buildScanArgs(args)
			if err != nil {
				return err
			}

			result, err := engine.Scan(cmd.Context(), scanArgs)
			if err != nil {
				return err
			}

			ui := uiFactory(cmd, jsonFlag, controller.IsTTY(os.Stdout))

			if result.DuplicateCount == 0 {
				return ui.DisplayScan(result)
			}

			report, err := applier.Relocate(result, m.Path(moveDestFlag))
			if err != nil {
				return err
			}

			ui.DisplayAction("Moved", report)
			ui.DisplayWarnings(result.Warnings)

			return nil
		},
	}

	cmd.Flags().StringVarP(&moveDestFlag, "dest", "d", "", "directory to move duplicates into")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
