package tool

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
)

// Confirmer asks the operator to approve a pending side-effecting action.
// The decision (IsAffirmative) is kept separate from the line I/O so the
// gate is testable without a terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}

// IsAffirmative reports whether a line of input approves the action:
// non-empty and starting with 'y' or 'Y'. Anything else is a denial.
func IsAffirmative(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return false
	}
	return line[0] == 'y' || line[0] == 'Y'
}

// TerminalConfirmer prints the prompt and reads one line from the
// operator. Reaching EOF counts as a denial.
type TerminalConfirmer struct {
	in          *bufio.Reader
	out         io.Writer
	promptStyle lipgloss.Style
	askStyle    lipgloss.Style
}

func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{
		in:          bufio.NewReader(in),
		out:         out,
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		askStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "\n%s\n%s ", c.promptStyle.Render(prompt), c.askStyle.Render("[y/n]>"))

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return IsAffirmative(line)
}
