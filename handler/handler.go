package handler

// Handler receives fully formatted lines. Implementations perform the write
// synchronously on the calling goroutine; the logger serializes calls.
type Handler interface {
	// Handle writes one formatted line
	Handle(line []byte) error
}
