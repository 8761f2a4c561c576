package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	cellAlive = "⬛"
	cellDead  = "⬜"

	clearCmd = "clear"
)

// TerminalRenderer draws grids as text to an output sink
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminalRenderer renders to out, defaulting to stdout
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out, ClearScreen: clearScreen}
}

// Display renders the grid followed by a blank line
func (r *TerminalRenderer) Display(g *Grid) error {
	if r.ClearScreen {
		r.Clear()
	}
	if _, err := io.WriteString(r.Out, g.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.Out)
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
