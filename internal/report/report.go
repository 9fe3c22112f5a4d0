// Package report is the human-readable output channel for combat events.
// Every state-changing or rejected operation emits exactly one line of the
// form "{full name} {message}". Existing transcripts depend on the exact
// phrasing, so these lines bypass the structured logger entirely.
package report

import (
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stdout

// SetOutput redirects report lines to w. Tests use this to capture output.
func SetOutput(w io.Writer) {
	out = w
}

// Output returns the current report sink.
func Output() io.Writer {
	return out
}

// Linef writes one report line for the named entity or fleet.
func Linef(name, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", name, fmt.Sprintf(format, args...))
}
