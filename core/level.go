package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity of a message. Levels are ordered from the
// most restrictive threshold (NoneLevel) to the most permissive (AllLevel);
// a message is emitted when its level is not past the configured threshold.
type Level int8

const (
	// NoneLevel as a threshold suppresses every message
	NoneLevel Level = iota
	// TraceLevel for fine-grained tracing
	TraceLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// DebugLevel for debugging output
	DebugLevel
	// ErrorLevel for error messages
	ErrorLevel
	// AssertLevel for failed assertion reports
	AssertLevel
	// AllLevel as a threshold permits every message
	AllLevel
)

var levelNames = [...]string{
	NoneLevel:   "NONE",
	TraceLevel:  "TRACE",
	InfoLevel:   "INFO",
	WarnLevel:   "WARN",
	DebugLevel:  "DEBUG",
	ErrorLevel:  "ERROR",
	AssertLevel: "ASSERT",
	AllLevel:    "ALL",
}

// Levels returns every level in order, sentinels included
func Levels() []Level {
	return []Level{NoneLevel, TraceLevel, InfoLevel, WarnLevel, DebugLevel, ErrorLevel, AssertLevel, AllLevel}
}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// IsSentinel reports whether l is NoneLevel or AllLevel. Sentinels only make
// sense as thresholds and need no display name or color.
func (l Level) IsSentinel() bool {
	return l == NoneLevel || l == AllLevel
}

// Enabled reports whether a message at level l passes the threshold
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return NoneLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "ASSERT":
		return AssertLevel, nil
	case "ALL":
		return AllLevel, nil
	default:
		return NoneLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so that levels can be
// decoded from environment variables and YAML documents.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
