package game

import (
	"io"

	"github.com/akelleher/starhold/internal/report"
)

// Config holds engine configuration options.
type Config struct {
	// ReportWriter receives the combat transcript, one line per state
	// change or rejected action. Nil leaves the current sink in place
	// (stdout by default).
	ReportWriter io.Writer
}

func (c Config) apply() {
	if c.ReportWriter != nil {
		report.SetOutput(c.ReportWriter)
	}
}
