package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/synclog/core"
)

// TextFormatter renders "[<timestamp>] [<color><name><reset>] <msg>\n"
type TextFormatter struct {
	palette Palette
}

// NewTextFormatter creates a new text formatter. The palette maps are
// shared, not copied, so later SetName/SetColor calls on the same palette
// are visible to the formatter.
func NewTextFormatter(p Palette) *TextFormatter {
	return &TextFormatter{palette: p}
}

// Palette returns the palette the formatter renders with
func (f *TextFormatter) Palette() Palette {
	return f.palette
}

// Format formats a line as text
func (f *TextFormatter) Format(level core.Level, t time.Time, msg string) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatTo(buf, level, t, msg); err != nil {
		return nil, err
	}

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a line into buf (implements BufferFormatter)
func (f *TextFormatter) FormatTo(buf *bytes.Buffer, level core.Level, t time.Time, msg string) error {
	name, color, err := f.palette.Lookup(level)
	if err != nil {
		return err
	}

	buf.WriteByte('[')
	buf.Write(core.AppendTimestamp(buf.AvailableBuffer(), t))
	buf.WriteString("] [")
	buf.WriteString(color)
	buf.WriteString(name)
	buf.WriteString(ColorReset)
	buf.WriteString("] ")
	buf.WriteString(msg)
	buf.WriteByte('\n')
	return nil
}
