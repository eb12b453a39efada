// Package handler provides the sinks that receive formatted log lines.
//
// Built-in handlers:
//
//   - ConsoleHandler writes to any io.Writer (default: os.Stdout).
//   - FileHandler opens the file in append mode, writes, syncs and closes
//     it on every call. There is no rotation and no buffered handle.
//   - MultiHandler fans a line out to several handlers and combines their
//     failures with go.uber.org/multierr, so one unwritable destination
//     never prevents the others from receiving the line.
//
// All handlers are synchronous. Serialization is the caller's job: the
// logger holds its mutex for the whole dispatch of one line.
//
// Stats keeps atomic counters for processed, filtered and dropped lines
// and can be read at any time for monitoring.
package handler
