package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("9"))

// notifier prints command failures, styled when w is a terminal.
type notifier struct {
	w      io.Writer
	styled bool
	failed bool
}

func newNotifier(w io.Writer) *notifier {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &notifier{w: w, styled: styled}
}

// Notify prints err and marks the command as failed.
func (n *notifier) Notify(err error) {
	n.failed = true

	msg := "Error: " + err.Error()
	if n.styled {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(n.w, msg)
}
