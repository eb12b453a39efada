package logger

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// callbackGuard records which goroutine is currently running callbacks.
// It is written only while the logger mutex is held and read without it.
type callbackGuard struct {
	active atomic.Bool
	owner  atomic.Uint64
}

func (g *callbackGuard) enter() {
	g.owner.Store(goroutineID())
	g.active.Store(true)
}

func (g *callbackGuard) exit() {
	g.active.Store(false)
	g.owner.Store(0)
}

// heldByCurrent reports whether the calling goroutine is inside a callback.
// The goroutine id is only computed while some callback is running.
func (g *callbackGuard) heldByCurrent() bool {
	if !g.active.Load() {
		return false
	}
	id := goroutineID()
	return id != 0 && g.owner.Load() == id
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the id from the header of the current goroutine's
// stack trace ("goroutine 18 [running]:").
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
