package weather

import (
	"strings"
	"testing"
	"time"

	// Packages
	assistant "github.com/rxwp5657/ia-agent-demo"
	assert "github.com/stretchr/testify/assert"
)

func TestWindowsFormula(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endTime string
		count   int
	}{
		{"now", "2025-06-01T12:00:00+00:00", 1},
		{"one hour ahead", "2025-06-01T13:00:00+00:00", 1},
		{"three hours ahead", "2025-06-01T15:00:00+00:00", 2},
		{"twelve hours ahead", "2025-06-02T00:00:00+00:00", 5},
		{"five days ahead", "2025-06-06T12:00:00+00:00", 41},
		{"one hour past", "2025-06-01T11:00:00+00:00", 0},
		{"twelve hours past", "2025-06-01T00:00:00+00:00", 0},
	}

	for _, test := range tests {
		count, err := windows(test.endTime, now)
		assert.NoError(err, test.name)
		assert.Equal(test.count, count, test.name)
	}
}

func TestWindowsZuluDesignator(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A trailing "Z" is normalized to an explicit offset before parsing
	count, err := windows("2025-06-02T00:00:00Z", now)
	assert.NoError(err)
	assert.Equal(5, count)
}

func TestWindowsNonUTCOffset(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 14:00 at +02:00 is 12:00 UTC
	count, err := windows("2025-06-01T14:00:00+02:00", now)
	assert.NoError(err)
	assert.Equal(1, count)
}

func TestWindowsParseError(t *testing.T) {
	assert := assert.New(t)

	for _, endTime := range []string{"", "tomorrow", "2025-06-01", "2025-06-01 12:00:00"} {
		_, err := Windows(endTime)
		assert.ErrorIs(err, assistant.ErrParse, endTime)
	}
}

func TestParseTime(t *testing.T) {
	assert := assert.New(t)

	// The result is always in UTC
	parsed, err := ParseTime("2025-06-01T14:00:00+02:00")
	assert.NoError(err)
	assert.Equal(time.UTC, parsed.Location())
	assert.Equal(12, parsed.Hour())
}

func TestNow(t *testing.T) {
	assert := assert.New(t)

	// Explicit offset, not the "Z" designator
	now := Now()
	assert.True(strings.HasSuffix(now, "+00:00"), now)

	// The accessor output round-trips through the parser
	parsed, err := ParseTime(now)
	assert.NoError(err)
	assert.WithinDuration(time.Now().UTC(), parsed, 5*time.Second)
}
