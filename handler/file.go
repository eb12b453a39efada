package handler

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyPath is returned when a file handler has no destination
var ErrEmptyPath = errors.New("file handler: empty path")

// FileHandler appends formatted lines to a file. The file is opened,
// written, synced and closed on every call; no handle is kept between
// calls, so every line is on disk once Handle returns and there is
// nothing to close at shutdown.
type FileHandler struct {
	path string
	perm os.FileMode
}

// NewFileHandler creates a new file handler. The file is created lazily on
// the first write.
func NewFileHandler(path string) *FileHandler {
	return &FileHandler{path: path, perm: 0o644}
}

// Path returns the destination path
func (h *FileHandler) Path() string {
	return h.path
}

// Handle appends the line to the file
func (h *FileHandler) Handle(line []byte) error {
	if h.path == "" {
		return ErrEmptyPath
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, h.perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.path, err)
	}

	_, err = f.Write(line)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", h.path, err)
	}
	return nil
}
