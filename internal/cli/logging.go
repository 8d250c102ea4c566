package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger builds the command logger. Verbose wins over quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	colour := hclog.ColorOff
	if isTerminal(w) {
		colour = hclog.ForceColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "boxtint",
		Level:       level,
		Output:      w,
		Color:       colour,
		DisableTime: true,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
