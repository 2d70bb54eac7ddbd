// Package log is a small, dependency-light leveled logger in the style of
// the relay's "lol" logger: one global Logger per level, colorized when
// writing to a terminal, silent below the configured threshold.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
)

// Level orders the severities from most to least verbose.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Fatal
	Off
)

var names = map[Level]string{
	Trace: "trace", Debug: "debug", Info: "info",
	Warn: "warn", Error: "error", Fatal: "fatal",
}

var colors = map[Level]*color.Color{
	Trace: color.New(color.FgHiBlack),
	Debug: color.New(color.FgCyan),
	Info:  color.New(color.FgGreen),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed),
	Fatal: color.New(color.FgHiRed, color.Bold),
}

var threshold atomic.Int64

func init() { threshold.Store(int64(Info)) }

// SetLevel changes the minimum level that is actually written out.
func SetLevel(l Level) { threshold.Store(int64(l)) }

// SetLevelByName accepts the familiar string levels ("trace", "debug",
// "info", "warn", "error", "fatal", "off"); unrecognized names are ignored
// and leave the threshold unchanged.
func SetLevelByName(name string) {
	for lvl, n := range names {
		if strings.EqualFold(n, name) {
			SetLevel(lvl)
			return
		}
	}
	if strings.EqualFold(name, "off") {
		SetLevel(Off)
	}
}

// Out is the writer all levels write to; tests may redirect it.
var Out io.Writer = os.Stderr

// Logger is a single severity's writer.
type Logger struct{ level Level }

func (g Logger) enabled() bool { return int64(g.level) >= threshold.Load() }

// F writes a formatted line, like fmt.Fprintf, if this level is enabled.
func (g Logger) F(format string, args ...interface{}) {
	if !g.enabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	g.write(msg)
}

// Ln writes a space-joined line, like fmt.Fprintln, if this level is enabled.
func (g Logger) Ln(args ...interface{}) {
	if !g.enabled() {
		return
	}
	g.write(fmt.Sprintln(args...))
}

func (g Logger) write(msg string) {
	c := colors[g.level]
	_, _ = c.Fprintf(Out, "[%s] %s\n", names[g.level], strings.TrimRight(msg, "\n"))
	if g.level == Fatal {
		os.Exit(1)
	}
}

// The package-level loggers, one per level.
var (
	T = Logger{Trace}
	D = Logger{Debug}
	I = Logger{Info}
	W = Logger{Warn}
	E = Logger{Error}
	F = Logger{Fatal}
)
