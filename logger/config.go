package logger

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/formatter"
)

// Callback is invoked with every emitted message. A non-nil error is
// written at ErrorLevel to the file and console sinks.
//
// A callback must not log, call Configure or call Config. Doing so from
// the goroutine running the callback terminates the process. Handing the
// call to another goroutine and waiting for it is not detected and
// deadlocks, since that goroutine blocks on the lock the callback holds.
type Callback func(msg core.Message) error

// Config describes what a Logger emits and where. It is a plain builder:
// methods mutate the receiver and return it for chaining, and nothing is
// synchronized. Pass it to New, or mutate a live logger's configuration
// through Logger.Configure.
type Config struct {
	level         core.Level
	console       bool
	consoleWriter io.Writer
	files         []string
	callbacks     []Callback
	palette       formatter.Palette
}

// NewConfig returns the default configuration: every level enabled,
// console output to os.Stdout, no files, no callbacks and the default
// palette.
func NewConfig() *Config {
	return &Config{
		level:         core.AllLevel,
		console:       true,
		consoleWriter: os.Stdout,
		palette:       formatter.DefaultPalette(),
	}
}

// SetLevel sets the threshold. Any value is accepted.
func (c *Config) SetLevel(level core.Level) *Config {
	c.level = level
	return c
}

// SetConsole toggles the console sink
func (c *Config) SetConsole(enabled bool) *Config {
	c.console = enabled
	return c
}

// SetConsoleWriter redirects the console sink. nil restores os.Stdout.
func (c *Config) SetConsoleWriter(w io.Writer) *Config {
	if w == nil {
		w = os.Stdout
	}
	c.consoleWriter = w
	return c
}

// SetColor sets the color shown for level
func (c *Config) SetColor(level core.Level, color string) *Config {
	c.palette.SetColor(level, color)
	return c
}

// SetLevelName sets the name shown for level
func (c *Config) SetLevelName(level core.Level, name string) *Config {
	c.palette.SetName(level, name)
	return c
}

// AddFile appends a file destination. Duplicates are kept and the file is
// only created on the first write.
func (c *Config) AddFile(path string) *Config {
	c.files = append(c.files, path)
	return c
}

// AddCallback appends a callback. Callbacks run in registration order.
func (c *Config) AddCallback(cb Callback) *Config {
	c.callbacks = append(c.callbacks, cb)
	return c
}

// Level returns the threshold
func (c *Config) Level() core.Level {
	return c.level
}

// Console reports whether the console sink is enabled
func (c *Config) Console() bool {
	return c.console
}

// ConsoleWriter returns the console stream
func (c *Config) ConsoleWriter() io.Writer {
	return c.consoleWriter
}

// Files returns a copy of the file destinations
func (c *Config) Files() []string {
	return slices.Clone(c.files)
}

// CallbackCount returns the number of registered callbacks
func (c *Config) CallbackCount() int {
	return len(c.callbacks)
}

// Palette returns a copy of the level names and colors
func (c *Config) Palette() formatter.Palette {
	return c.palette.Clone()
}

// Validate checks that every non-sentinel level can be formatted
func (c *Config) Validate() error {
	if err := c.palette.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Clone returns a deep copy. Callbacks are shared, the slices holding them are not.
func (c *Config) Clone() *Config {
	return &Config{
		level:         c.level,
		console:       c.console,
		consoleWriter: c.consoleWriter,
		files:         slices.Clone(c.files),
		callbacks:     slices.Clone(c.callbacks),
		palette:       c.palette.Clone(),
	}
}
