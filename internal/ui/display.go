package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when w is not a terminal or its size is unknown.
const DefaultTermWidth = 120

// Display describes where highlighted output is going.
type Display struct {
	Width int
	IsTTY bool
}

// DisplayFor inspects w. Only an *os.File attached to a terminal counts as
// a TTY; pipes, files and buffers get plain output at DefaultTermWidth.
func DisplayFor(w io.Writer) Display {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return Display{Width: DefaultTermWidth}
	}
	width := DefaultTermWidth
	if cols, _, err := term.GetSize(f.Fd()); err == nil && cols > 0 {
		width = cols
	}
	return Display{Width: width, IsTTY: true}
}
