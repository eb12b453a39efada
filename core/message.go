package core

// Message is the record handed to callbacks for every emitted line.
// It is built fresh for each dispatch and must be treated as read-only.
type Message struct {
	// Level is the severity the line was written at
	Level Level
	// Text is the fully formatted line, color codes and trailing newline included
	Text string
	// Timestamp is the rendered time of the line
	Timestamp string
	// Body is the raw text the caller passed in, before formatting
	Body string
}
