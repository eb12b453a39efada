package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/formatter"
	"github.com/philipp01105/synclog/handler"
)

// ErrInvalidConfig is returned when a configuration cannot be used
var ErrInvalidConfig = errors.New("logger configuration not valid")

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// reentrantExitCode mirrors the status of a process killed by SIGABRT
const reentrantExitCode = 134

const reentrantExplanation = "Cannot call logger functions inside of a callback.\n" +
	"Return an error from the callback if you need to log an error inside a callback."

// Logger filters, formats and dispatches messages. All methods are safe for
// concurrent use; one mutex serializes configuration changes and the whole
// dispatch of each message, callbacks included.
type Logger struct {
	mu        sync.Mutex
	threshold atomic.Int32
	cfg       *Config
	text      *formatter.TextFormatter
	console   *handler.ConsoleHandler
	files     *handler.MultiHandler
	buf       bytes.Buffer
	guard     callbackGuard
	stats     *handler.Stats
}

// New creates a Logger from a copy of cfg. A nil cfg means NewConfig().
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{
		cfg:   cfg.Clone(),
		stats: handler.NewStats(),
	}
	l.buf.Grow(256)
	l.rebuild()
	return l, nil
}

// rebuild derives the sinks and formatter from l.cfg. Caller holds l.mu or
// owns l exclusively.
func (l *Logger) rebuild() {
	l.threshold.Store(int32(l.cfg.level))
	l.text = formatter.NewTextFormatter(l.cfg.palette)
	l.console = handler.NewConsoleHandler(l.cfg.consoleWriter)

	files := make([]handler.Handler, len(l.cfg.files))
	for i, path := range l.cfg.files {
		files[i] = handler.NewFileHandler(path)
	}
	l.files = handler.NewMultiHandler(files...)
}

// Configure runs fn on the live configuration while holding the logger
// lock, so the change is atomic with respect to every Write.
func (l *Logger) Configure(fn func(cfg *Config)) {
	if l.guard.heldByCurrent() {
		l.abortReentrant(core.GetCaller(1))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fn(l.cfg)
	if l.cfg.consoleWriter == nil {
		l.cfg.consoleWriter = os.Stdout
	}
	l.rebuild()
}

// Config returns a snapshot of the current configuration
func (l *Logger) Config() *Config {
	if l.guard.heldByCurrent() {
		l.abortReentrant(core.GetCaller(1))
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Clone()
}

// Stats returns the dispatch counters
func (l *Logger) Stats() handler.Snapshot {
	return l.stats.GetSnapshot()
}

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(core.Level(l.threshold.Load()))
}

// Write logs msg at the given level
func (l *Logger) Write(level core.Level, msg string) {
	l.log(level, msg)
}

// log and logf are the only entries into emit. Every public entry point
// calls one of them directly so that the reentrancy report can name the
// caller's frame.
func (l *Logger) log(level core.Level, msg string) {
	// Level check before anything else
	if !l.Enabled(level) {
		l.stats.IncrementFiltered()
		return
	}
	l.emit(level, msg)
}

// logf formats only when level passes the threshold
func (l *Logger) logf(level core.Level, format string, args []interface{}) {
	if !l.Enabled(level) {
		l.stats.IncrementFiltered()
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

// emit formats and dispatches an enabled message
func (l *Logger) emit(level core.Level, msg string) {
	// 0 is emit, 1 is log or logf, 2 is the entry point, 3 its caller
	if l.guard.heldByCurrent() {
		l.abortReentrant(core.GetCaller(3))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.buf.Reset()
	if err := l.text.FormatTo(&l.buf, level, now, msg); err != nil {
		l.stats.IncrementFormatFailed()
		return
	}

	l.dispatch(l.buf.Bytes())
	l.stats.IncrementProcessed()

	if len(l.cfg.callbacks) > 0 {
		l.runCallbacks(core.Message{
			Level:     level,
			Text:      l.buf.String(),
			Timestamp: core.FormatTimestamp(now),
			Body:      msg,
		})
	}
}

// dispatch writes line to every file, then to the console. Caller holds l.mu.
func (l *Logger) dispatch(line []byte) {
	if err := l.files.Handle(line); err != nil {
		l.stats.AddSinkFailed(len(multierr.Errors(err)))
	}
	if l.cfg.console {
		if err := l.console.Handle(line); err != nil {
			l.stats.AddSinkFailed(1)
		}
	}
}

// runCallbacks invokes every callback in order. Caller holds l.mu.
func (l *Logger) runCallbacks(msg core.Message) {
	l.guard.enter()
	defer l.guard.exit()

	for _, cb := range l.cfg.callbacks {
		err := cb(msg)
		if err == nil {
			continue
		}

		// Reported to files and console only, never back to callbacks
		l.stats.IncrementCallbackErrors()
		l.buf.Reset()
		if ferr := l.text.FormatTo(&l.buf, core.ErrorLevel, time.Now(), err.Error()); ferr != nil {
			l.stats.IncrementFormatFailed()
			continue
		}
		l.dispatch(l.buf.Bytes())
	}
}

// abortReentrant reports a logger call made from inside a callback and
// terminates the process. It writes straight to the console stream without
// taking the lock: the offending goroutine already holds it.
func (l *Logger) abortReentrant(caller core.CallerInfo) {
	lines := []string{
		fmt.Sprintf("File:  %s:%d", caller.ShortFile, caller.Line),
		fmt.Sprintf("Func:  %s", caller.Function),
		"Expr:  logger callback running on this goroutine",
		"Error: " + reentrantExplanation,
	}

	w := l.console.Writer()
	now := time.Now()
	for _, line := range lines {
		out, err := l.text.Format(core.AssertLevel, now, line)
		if err != nil {
			out = []byte(line + "\n")
		}
		_, _ = w.Write(out)
	}

	osExit(reentrantExitCode)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	l.log(core.TraceLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.log(core.WarnLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.log(core.DebugLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.log(core.ErrorLevel, msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.TraceLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args)
}

// Assertion reports a failed assertion as four ASSERT lines. Each line is
// filtered and formatted on its own.
func (l *Logger) Assertion(file string, line int, function, expr, msg string) {
	l.log(core.AssertLevel, fmt.Sprintf("File:  %s:%d", file, line))
	l.log(core.AssertLevel, "Func:  "+function)
	l.log(core.AssertLevel, "Expr:  "+expr)
	l.log(core.AssertLevel, "Error: "+msg)
}

// Assert reports a failed assertion at the caller's location when cond is
// false and returns cond. It does not stop the program.
func (l *Logger) Assert(cond bool, expr, format string, args ...interface{}) bool {
	return l.assert(cond, expr, format, args)
}

func (l *Logger) assert(cond bool, expr, format string, args []interface{}) bool {
	if cond {
		return true
	}
	// 0 is assert, 1 is Assert, 2 is the caller
	c := core.GetCaller(2)
	l.Assertion(c.ShortFile, c.Line, c.Function, expr, fmt.Sprintf(format, args...))
	return false
}
