// Package formatter turns a level, a time and a message into the single
// line that every sink receives.
//
// A Palette holds the display name and ANSI color of each level. The
// TextFormatter looks both up on every call and fails with
// ErrMissingLevelName or ErrMissingLevelColor when an entry is absent;
// it never substitutes an empty value. Only the timestamp varies between
// two calls with the same level, message and palette.
//
// TextFormatter implements BufferFormatter so the logger can format into
// a buffer it owns while holding its lock. Format falls back to a pooled
// bytes.Buffer; buffers larger than 64 KiB are not returned to the pool.
package formatter
