package handler

import (
	"go.uber.org/multierr"
)

// MultiHandler sends every line to each child handler in order. A failing
// child does not stop the others; failures are combined into one error.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Len returns the number of child handlers
func (h *MultiHandler) Len() int {
	return len(h.handlers)
}

// Handle writes the line to all handlers. Use multierr.Errors on the
// result to inspect individual failures.
func (h *MultiHandler) Handle(line []byte) error {
	var err error
	for _, handler := range h.handlers {
		multierr.AppendInto(&err, handler.Handle(line))
	}
	return err
}
