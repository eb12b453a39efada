package core

import "time"

// TimestampLayout renders as "17-Oct-2026•09:05:03"
const TimestampLayout = "02-Jan-2006•15:04:05"

// FormatTimestamp renders t in the host's local time zone
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// AppendTimestamp is the append-style form of FormatTimestamp
func AppendTimestamp(dst []byte, t time.Time) []byte {
	return t.Local().AppendFormat(dst, TimestampLayout)
}
