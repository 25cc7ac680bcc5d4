package diag

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true) // Orange
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Logger writes leveled, single-line progress messages to a writer (stderr in
// the CLI). Debug lines are dropped unless verbose is set. A nil *Logger is
// valid and discards everything.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{l: log.New(w, "", log.Ltime), verbose: verbose}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.print(debugStyle.Render("debug"), format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.print(infoStyle.Render("info "), format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.print(warnStyle.Render("warn "), format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.print(errorStyle.Render("error"), format, args...)
}

func (l *Logger) print(level, format string, args ...any) {
	l.l.Printf("%s %s", level, fmt.Sprintf(format, args...))
}

// Start logs the beginning of a stage and returns a timer for Finish.
func (l *Logger) Start(stage, msg string) *Timer {
	l.Debugf("[%s] start: %s", stage, msg)
	return &Timer{l: l, stage: stage, t0: time.Now()}
}

// Timer measures one stage from Start to Finish.
type Timer struct {
	l     *Logger
	stage string
	t0    time.Time
}

// Finish logs the end of the stage with its duration and an item count.
func (t *Timer) Finish(msg string, count int) {
	if t == nil {
		return
	}
	t.l.Debugf("[%s] finish: %s (%d, %s)", t.stage, msg, count, time.Since(t.t0).Round(time.Millisecond))
}
