// Package logger builds the leveled logger shared by mdjournal's adapters and services.
package logger

import (
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

const name = "mdjournal"

// New returns a logger writing to w (stderr when nil). Verbose mode lowers the
// level to Debug; otherwise only warnings and errors are emitted.
func New(verbose bool, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Level:           level,
		Output:          w,
		IncludeLocation: false,
		Color:           hclog.ColorOff,
	})
}

// Discard is used where no logger was wired, mostly in tests.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

// OrDiscard returns l, or a null logger when l is nil.
func OrDiscard(l hclog.Logger) hclog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
