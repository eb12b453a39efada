package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/synclog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders one line for msg at level, stamped with t
	Format(level core.Level, t time.Time, msg string) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatTo appends the formatted line to buf. On error buf is left
	// as it was before the call.
	FormatTo(buf *bytes.Buffer, level core.Level, t time.Time, msg string) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
