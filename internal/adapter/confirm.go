package adapter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/dupescan/internal/model"
)

// Confirmer is the decision hook consulted before a destructive action on
// a candidate path. The engine works correctly with a confirmer that always
// approves (non-interactive mode).
type Confirmer interface {
	Confirm(path m.Path) bool
}

// AllowAll approves every candidate. Used for batch runs.
type AllowAll struct{}

// Confirm always returns true.
func (AllowAll) Confirm(m.Path) bool {
	return true
}

// TerminalConfirmer prompts on out and reads y/n answers from in, one per
// candidate.
type TerminalConfirmer struct {
	in   *bufio.Reader
	out  io.Writer
	verb string
}

// NewTerminalConfirmer constructs a TerminalConfirmer whose prompts start
// with verb, e.g. "Delete".
func NewTerminalConfirmer(in io.Reader, out io.Writer, verb string) *TerminalConfirmer {
	return &TerminalConfirmer{
		in:   bufio.NewReader(in),
		out:  out,
		verb: verb,
	}
}

// Confirm asks about a single path. Anything other than "y" or "yes" is a
// denial; a read error denies as well, so an exhausted input stream never
// approves destructive work.
func (c *TerminalConfirmer) Confirm(path m.Path) bool {
	_, _ = fmt.Fprintf(c.out, "%s %s? (y/n): ", c.verb, path)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}
