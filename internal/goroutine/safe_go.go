package goroutine

import (
	"runtime/debug"

	"github.com/vesteevolta/backend/internal/logger"
)

// Logger is the logging surface used to report recovered panics.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler recovers panics in goroutines
type RecoveryHandler struct {
	logger Logger
}

func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo runs fn in a goroutine and logs any panic
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer rh.Recover("Panic in goroutine")
		fn()
	}()
}

// Recover logs a panic in the calling goroutine. Use it directly with defer.
func (rh *RecoveryHandler) Recover(label string) {
	if r := recover(); r != nil {
		rh.logger.Errorf("%s: %v\nStack trace:\n%s", label, r, debug.Stack())
	}
}

// logrusLogger resolves logger.Log at call time so Init can replace it.
type logrusLogger struct{}

func (logrusLogger) Errorf(format string, args ...interface{}) {
	logger.Log.Errorf(format, args...)
}

// DefaultRecoveryHandler logs through the application logger
var DefaultRecoveryHandler = NewRecoveryHandler(logrusLogger{})

// SafeGo runs fn with panic recovery
func SafeGo(fn func()) {
	DefaultRecoveryHandler.SafeGo(fn)
}

// Recover must be deferred directly: defer goroutine.Recover("label").
func Recover(label string) {
	if r := recover(); r != nil {
		DefaultRecoveryHandler.logger.Errorf("%s: %v\nStack trace:\n%s", label, r, debug.Stack())
	}
}
