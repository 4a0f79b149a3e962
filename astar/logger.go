package astar

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// newNopLogger creates a logger that discards everything and skips
// formatting below Panic level.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with running searches.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by astar and the packages built on
// it (editor, scenario). By default nothing is logged. Pass nil to restore
// the silent default.
//
// Levels used:
//   - Debug: search start and finish with endpoints, status and counters.
//   - Info:  editor lifecycle (runs, clears).
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
