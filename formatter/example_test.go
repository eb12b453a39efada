package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.DefaultPalette())

	out, _ := f.Format(core.WarnLevel, time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local), "disk almost full")
	// Timestamp, colored level tag, message.
	fmt.Println(strings.HasPrefix(string(out), "[15-Jan-2026•12:00:00] "))
	fmt.Println(strings.Contains(string(out), formatter.ColorYellow+"WARN"+formatter.ColorReset))
	fmt.Println(strings.HasSuffix(string(out), "disk almost full\n"))
	// Output:
	// true
	// true
	// true
}
