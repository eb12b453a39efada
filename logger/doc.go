// Package logger is the public API of synclog. Most users only need to
// import this package.
//
// A Logger filters each message against its threshold, formats it as
//
//	[17-Oct-2026•09:05:03] [<color>INFO<reset>] message
//
// and writes it to every configured file, to the console, and finally
// to every registered callback, in that order. One mutex covers the
// whole dispatch of a message, so lines from concurrent goroutines never
// interleave and callbacks observe messages in emission order. The cost
// is that a slow callback stalls every other logging goroutine.
//
// The package builds a process-wide Logger during initialization
// (threshold ALL, console to stdout, no files, no callbacks). The
// package-level functions Info, Errorf, Assert, etc. delegate to it:
//
//	logger.Info("ready")
//
// Configuration is a fluent builder. Apply it to a live logger with
// Configure, which runs under the same lock as dispatch:
//
//	logger.Configure(func(cfg *logger.Config) {
//	    cfg.SetLevel(core.WarnLevel).
//	        AddFile("app.log").
//	        AddCallback(func(msg core.Message) error { return nil })
//	})
//
// Callbacks must never call back into the logger. A callback that does
// so from its own goroutine makes the logger print a diagnostic to the
// console and terminate the process with exit status 134. To report a
// problem, return an error instead: it is written at ERROR level to the
// files and the console, without reaching the callbacks again.
//
// Files are opened, appended to and closed on every write. A path that
// cannot be opened is skipped for that write. No errors are returned to
// the caller of Write; Stats exposes what was filtered or dropped.
package logger
