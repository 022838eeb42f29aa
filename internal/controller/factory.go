package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the UI implementation for a command invocation. JSON output
// wins over everything; a TTY gets the interactive browser; anything else
// (pipes, files, CI) gets plain text.
func NewUI(cmd *cobra.Command, jsonOutput bool, useTTY bool) UI {
	if jsonOutput {
		return NewJSONUI(cmd)
	}

	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
