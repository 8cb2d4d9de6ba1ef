// Package echo mirrors input and output lines to a console stream with
// the field delimiter rendered as a visible arrow. The mirror is purely
// diagnostic: write errors are ignored and nothing downstream depends on
// its output.
package echo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// marker replaces each field-delimiter match in echoed lines.
const marker = "→"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	markerStyle = lipgloss.NewStyle().Faint(true)
)

// Substituter rewrites every field-delimiter match in a line.
// record.Pattern satisfies it.
type Substituter interface {
	ReplaceAll(s, repl string) string
}

// Mirror echoes lines to w. All methods are no-ops on a nil receiver, so
// a nil *Mirror disables echoing everywhere it is passed.
type Mirror struct {
	w     io.Writer
	sub   Substituter
	arrow string
}

// New returns a Mirror writing to w, substituting sub's matches with a
// styled arrow.
func New(w io.Writer, sub Substituter) *Mirror {
	return &Mirror{w: w, sub: sub, arrow: markerStyle.Render(marker)}
}

// Section prints a labeled header such as "input:".
func (m *Mirror) Section(name string) {
	if m == nil {
		return
	}
	fmt.Fprintln(m.w, headerStyle.Render(name+":"))
}

// Gap prints a blank separator line between sections.
func (m *Mirror) Gap() {
	if m == nil {
		return
	}
	fmt.Fprintln(m.w)
}

// Line echoes one line with delimiters made visible.
func (m *Mirror) Line(line string) {
	if m == nil {
		return
	}
	fmt.Fprintln(m.w, m.sub.ReplaceAll(line, m.arrow))
}
