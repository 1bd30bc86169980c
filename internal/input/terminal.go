package input

import (
	"io"

	"github.com/mattn/go-isatty"
)

// TerminalProbe reports whether a stream is an interactive terminal rather
// than a redirected file or pipe.
type TerminalProbe func(r io.Reader) bool

// IsInteractive is the default TerminalProbe. Streams without a file
// descriptor, such as in-memory readers, are treated as redirected.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
