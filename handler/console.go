package handler

import (
	"io"
	"os"
)

// ConsoleHandler writes formatted lines to a console stream
type ConsoleHandler struct {
	writer io.Writer
}

// NewConsoleHandler creates a new console handler. A nil writer means os.Stdout.
func NewConsoleHandler(w io.Writer) *ConsoleHandler {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleHandler{writer: w}
}

// Writer returns the underlying stream
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Handle writes the line as-is, escape sequences included
func (h *ConsoleHandler) Handle(line []byte) error {
	_, err := h.writer.Write(line)
	return err
}
