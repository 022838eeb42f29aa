// Package cmd provides the root command and CLI setup for dupescan.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dupescan/internal/adapter"
	"github.com/mouse-blink/dupescan/internal/controller"
	"github.com/mouse-blink/dupescan/internal/domain"
	m "github.com/mouse-blink/dupescan/internal/model"
)

var fsAdapter adapter.FileSystem
var reportStore adapter.ReportStore
var engine domain.Engine
var applier domain.Applier
var uiFactory = controller.NewUI

func init() {
	fsAdapter = adapter.NewLocalFileSystem()
	reportStore = adapter.NewReportStore()
	engine = domain.NewEngine(fsAdapter)
	applier = domain.NewApplier(fsAdapter)
}

var recursiveFlag bool
var algorithmFlag string
var extFlags []string
var parallelFlag int
var minSizeFlag int64
var chunkSizeFlag int
var verifyFlag bool
var jsonFlag bool
var outputFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupescan [directory]",
		Short: "Find duplicate files by content",
		Long: `Dupescan finds files with identical content inside a directory tree.

Files are first bucketed by size, then only same-size candidates are
hashed, so unique files are never read. Each duplicate group keeps the
first file found during the scan; the delete and move subcommands act
on the remaining copies only.`,
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

			if outputFlag != "" {
				if err := reportStore.Save(m.Path(outputFlag), result); err != nil {
					return err
				}
			}

			ui := uiFactory(cmd, jsonFlag, controller.IsTTY(os.Stdout))
			if err := ui.DisplayScan(result); err != nil {
				return err
			}
			ui.DisplayWarnings(result.Warnings)

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&recursiveFlag, "recursive", "r", false, "descend into subdirectories")
	cmd.PersistentFlags().StringVarP(&algorithmFlag, "algorithm", "a", "xx64", "content hash algorithm: xx64 or sha256")
	cmd.PersistentFlags().StringArrayVarP(&extFlags, "ext", "e", nil, "only consider files with this extension (can be repeated)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel hash workers (0 = one per CPU)")
	cmd.PersistentFlags().Int64Var(&minSizeFlag, "min-size", 1, "ignore files smaller than this many bytes")
	cmd.PersistentFlags().IntVar(&chunkSizeFlag, "chunk-size", domain.DefaultChunkSize, "read buffer size in bytes")
	cmd.PersistentFlags().BoolVar(&verifyFlag, "verify", false, "re-check groups with sha256 before reporting")
	cmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit machine-readable JSON instead of tables")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "save the scan report to this file")

	return cmd
}

func buildScanArgs(args []string) (domain.ScanArgs, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	algorithm, err := domain.ParseAlgorithm(algorithmFlag)
	if err != nil {
		return domain.ScanArgs{}, err
	}

	return domain.ScanArgs{
		Root:       m.Path(root),
		Recursive:  recursiveFlag,
		Algorithm:  algorithm,
		Extensions: extFlags,
		MinSize:    minSizeFlag,
		ChunkSize:  chunkSizeFlag,
		Workers:    parallelFlag,
		Verify:     verifyFlag,
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
