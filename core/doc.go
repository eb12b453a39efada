// Package core defines the shared types used across synclog.
//
// It provides the Level type for threshold filtering, the Message record
// handed to callbacks, CallerInfo for assertion reports, and the fixed
// timestamp layout used by every formatted line.
//
// Levels are ordered NONE < TRACE < INFO < WARN < DEBUG < ERROR < ASSERT <
// ALL. The order only matters for threshold comparison: a message is
// emitted when its level is at or before the threshold, so a threshold of
// ALL lets everything through and NONE silences the logger.
package core
