// Package logging holds the process logger. Diagnostics go to stderr; the
// per-file "created"/"skipped" chatter is debug level and only shows with
// --verbose.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/gamekit-labs/forge/internal/branding"
)

var (
	mu        sync.Mutex
	singleton *log.Logger
)

// New builds a logger writing to w. Terminals get the styled text format,
// anything else gets logfmt so redirected output stays greppable.
func New(w io.Writer, verbose bool) *log.Logger {
	formatter := log.LogfmtFormatter
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		formatter = log.TextFormatter
	}

	l := log.NewWithOptions(w, log.Options{
		Prefix:    branding.CLIName(),
		Formatter: formatter,
	})

	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Faint(true)
	l.SetStyles(styles)

	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return l
}

// Init replaces the process logger.
func Init(w io.Writer, verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	singleton = New(w, verbose)
}

// Logger returns the process logger, creating a non-verbose stderr logger on
// first use.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if singleton == nil {
		singleton = New(os.Stderr, false)
	}
	return singleton
}

func Debug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}
