package codec

import (
	"time"

	"github.com/reoring/runtype"
)

var timeFromRFC3339 = fromString(
	"TimeFromRFC3339",
	parseRFC3339,
	formatRFC3339Canonical,
	"invalid RFC3339 time",
	"date-time",
)

// TimeFromRFC3339 converts between RFC3339 strings and time.Time.
func TimeFromRFC3339() runtype.Codec[time.Time, string] { return timeFromRFC3339 }

func parseRFC3339(s string) (time.Time, bool) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, true
		}
		return time.Time{}, false
	}
	return t, true
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC; RFC3339Nano trims trailing zeros
	return t.UTC().Format(time.RFC3339Nano)
}
