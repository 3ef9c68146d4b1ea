// Package ui renders snapshot views of the client to a terminal.
// Every renderer replaces its whole section from the latest fetched
// data; there is no incremental diffing.
package ui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// AlertKind mirrors the alert styles of the pages.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertDanger  AlertKind = "danger"
	AlertInfo    AlertKind = "info"
)

type Screen struct {
	w       io.Writer
	colours bool
}

// NewScreen writes to w. Colours can be disabled for dumb terminals
// and test buffers.
func NewScreen(w io.Writer, colours bool) *Screen {
	return &Screen{w: w, colours: colours}
}

func (s *Screen) printf(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

func (s *Screen) println(line string) {
	fmt.Fprintln(s.w, line)
}

// Header prints a colorized section header.
func (s *Screen) Header(title string) {
	line := fmt.Sprintf("====== %s ======", title)
	if s.colours {
		line = color.New(color.FgCyan, color.Bold).Render(line)
	}
	s.println(line)
}

// Alert prints one inline alert line. Dismissal timing is owned by the
// controller, not the renderer.
func (s *Screen) Alert(kind AlertKind, message string) {
	if !s.colours {
		s.printf("[%s] %s\n", kind, message)
		return
	}
	switch kind {
	case AlertSuccess:
		s.println(color.Green.Render(message))
	case AlertDanger:
		s.println(color.Red.Render(message))
	default:
		s.println(color.Gray.Render(message))
	}
}

// Clear separates two consecutive snapshot renders.
func (s *Screen) Clear() {
	s.println("")
}
