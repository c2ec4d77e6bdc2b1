// Package cli implements the domsearch command line.
//
// solve, verify, stats, render, gen, serve, cache and completion each live
// in their own file and share the CLI struct defined in cli.go.
//
// solve writes nothing but the solution to stdout, so a PACE harness can
// send SIGTERM and read the answer; everything else, including search
// progress, is logged to stderr. --verbose adds graph loading and
// best-known lookups.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger shared by every command. Timestamps
// carry hundredths of a second so that improvement lines of a short solve
// remain distinguishable.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a step that has no progress of its own, such as a
// Graphviz render, and logs one line when it ends.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered SVG (412ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. Commands derive their context through
// CLI.context, so the solve reporter and render log through the same
// logger as the command.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default for contexts built outside a command (tests, the server).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
