package formatter

import (
	"errors"
	"fmt"
	"maps"

	"github.com/philipp01105/synclog/core"
)

// ANSI escape sequences used by the default palette
const (
	ColorReset     = "\033[0m"
	ColorWhite     = "\033[37m"
	ColorGreen     = "\033[32m"
	ColorYellow    = "\033[33m"
	ColorRed       = "\033[31m"
	ColorCyan      = "\033[36m"
	StyleUnderline = "\033[4m"
)

var (
	// ErrMissingLevelName is returned when a level has no display name
	ErrMissingLevelName = errors.New("no display name configured for level")
	// ErrMissingLevelColor is returned when a level has no display color
	ErrMissingLevelColor = errors.New("no display color configured for level")
)

// Palette maps levels to the name and color shown in the level tag.
type Palette struct {
	Names  map[core.Level]string
	Colors map[core.Level]string
}

// DefaultPalette returns a palette with an entry for every level
func DefaultPalette() Palette {
	return Palette{
		Names: map[core.Level]string{
			core.NoneLevel:   "<NONE>",
			core.TraceLevel:  "TRACE",
			core.InfoLevel:   "INFO",
			core.WarnLevel:   "WARN",
			core.DebugLevel:  "DEBUG",
			core.ErrorLevel:  "ERROR",
			core.AssertLevel: "ASSERT",
			core.AllLevel:    "<ALL>",
		},
		Colors: map[core.Level]string{
			core.NoneLevel:   "<NONE>",
			core.TraceLevel:  ColorWhite,
			core.InfoLevel:   ColorGreen,
			core.WarnLevel:   ColorYellow,
			core.DebugLevel:  ColorCyan,
			core.ErrorLevel:  ColorRed,
			core.AssertLevel: StyleUnderline + ColorRed,
			core.AllLevel:    "<ALL>",
		},
	}
}

// SetName creates or overwrites the display name of level
func (p *Palette) SetName(level core.Level, name string) {
	if p.Names == nil {
		p.Names = make(map[core.Level]string)
	}
	p.Names[level] = name
}

// SetColor creates or overwrites the display color of level
func (p *Palette) SetColor(level core.Level, color string) {
	if p.Colors == nil {
		p.Colors = make(map[core.Level]string)
	}
	p.Colors[level] = color
}

// Lookup returns the name and color for level. A level without an entry is
// an error; an entry explicitly set to the empty string is not.
func (p Palette) Lookup(level core.Level) (name, color string, err error) {
	name, ok := p.Names[level]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrMissingLevelName, level)
	}
	color, ok = p.Colors[level]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrMissingLevelColor, level)
	}
	return name, color, nil
}

// Validate checks that every non-sentinel level has a name and a color
func (p Palette) Validate() error {
	for _, level := range core.Levels() {
		if level.IsSentinel() {
			continue
		}
		if _, _, err := p.Lookup(level); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the palette
func (p Palette) Clone() Palette {
	return Palette{
		Names:  maps.Clone(p.Names),
		Colors: maps.Clone(p.Colors),
	}
}
