package internal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive returns true if the given file descriptor is a TTY.
func IsInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsTerminal reports whether r is an *os.File attached to a TTY. The
// external editor is only launched when it is.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && IsInteractive(f.Fd())
}

// TerminalWidth returns the column count of w when it is a TTY.
func TerminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
