package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/formatter"
)

const timestampPattern = `\d{2}-[A-Z][a-z]{2}-\d{4}•\d{2}:\d{2}:\d{2}`

// newTestLogger builds a logger whose console writes into the returned buffer.
func newTestLogger(t *testing.T, build func(cfg *Config)) (*Logger, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)
	cfg := NewConfig().SetConsoleWriter(buf)
	if build != nil {
		build(cfg)
	}

	l, err := New(cfg)
	require.NoError(t, err)
	return l, buf
}

// splitLines splits output into lines without the trailing empty element.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// linePattern matches one formatted line at level with the default palette.
func linePattern(level core.Level, msg string) *regexp.Regexp {
	p := formatter.DefaultPalette()
	return regexp.MustCompile(`^\[` + timestampPattern + `\] \[` +
		regexp.QuoteMeta(p.Colors[level]+p.Names[level]+formatter.ColorReset) +
		`\] ` + regexp.QuoteMeta(msg) + `$`)
}
