/*
weather implements the forecast tools for the assistant: resolving how many
3-hour forecast buckets are needed to reach a target time, fetching the
forecast window from OpenWeatherMap, and formatting the selected entry as a
human-readable report.
*/
package weather

import (
	"math"
	"strings"
	"time"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ISO-8601 with an explicit numeric offset ("+00:00" in UTC, not "Z")
	iso8601 = "2006-01-02T15:04:05-07:00"

	// Width of one forecast bucket, in hours
	bucketHours = 3
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Now returns the current UTC time as an ISO-8601 string with an explicit
// offset. It never fails.
func Now() string {
	return time.Now().UTC().Format(iso8601)
}

// Windows returns the number of sequential 3-hour forecast buckets, starting
// from now, required to reach or pass the given target time. The target must
// be an absolute ISO-8601 timestamp; a trailing "Z" designator is accepted
// and normalized to an explicit "+00:00" offset before parsing.
func Windows(endTime string) (int, error) {
	return windows(endTime, time.Now())
}

// ParseTime parses an absolute ISO-8601 timestamp, normalizing a trailing
// "Z" UTC designator to an explicit "+00:00" offset first. The result is
// in UTC.
func ParseTime(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, assistant.ErrParse.Withf("invalid ISO-8601 time %q", s)
	}
	return t.UTC(), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// windows computes the bucket count against an explicit current time. The
// count is floor(hours/3)+1 clamped at zero; the floor keeps the historical
// near-zero behavior for slightly-past targets (-1h still yields 0, larger
// negative gaps clamp).
func windows(endTime string, now time.Time) (int, error) {
	end, err := ParseTime(endTime)
	if err != nil {
		return 0, err
	}
	hours := end.Sub(now.UTC()).Seconds() / 3600
	count := int(math.Floor(hours/bucketHours)) + 1
	return max(0, count), nil
}
