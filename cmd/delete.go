package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dupescan/internal/adapter"
	"github.com/mouse-blink/dupescan/internal/controller"
)

var deleteInteractiveFlag bool
var deleteForceFlag bool

// deleteCmd represents the delete command.
var deleteCmd = newDeleteCmd()

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [directory]",
		Short: "Delete duplicate files",
		Long: `Scan a directory and delete the duplicate copies, keeping the first
file found of every group.

Without --interactive or --force a single confirmation is asked before
anything is removed. With --interactive every file is confirmed
individually.`,
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

			var confirm adapter.Confirmer = adapter.AllowAll{}

			switch {
			case deleteInteractiveFlag:
				confirm = adapter.NewTerminalConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete")
			case !deleteForceFlag:
				gate := adapter.NewTerminalConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete all %d duplicate(s) under", result.DuplicateCount))
				if !gate.Confirm(scanArgs.Root) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			report := applier.Delete(result, confirm)
			ui.DisplayAction("Deleted", report)
			ui.DisplayWarnings(result.Warnings)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&deleteInteractiveFlag, "interactive", "i", false, "confirm every deletion on stdin")
	cmd.Flags().BoolVarP(&deleteForceFlag, "force", "f", false, "delete without asking for confirmation")

	return cmd
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
