package db

import (
	"fmt"
	"time"
)

// FormatTimestamp renders a millisecond UTC timestamp as unpadded
// M/D/YYYY H:M:S, the shape the dashboard parses.
func FormatTimestamp(ms int64) string {
	t := time.UnixMilli(ms).UTC()
	return fmt.Sprintf("%d/%d/%d %d:%d:%d",
		int(t.Month()), t.Day(), t.Year(), t.Hour(), t.Minute(), t.Second())
}
