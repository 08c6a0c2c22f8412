package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]ClockTime{
		"09:30":           "09:30:00",
		"09:30:15":        "09:30:15",
		" 18:00 ":         "18:00:00",
		"07:05:00.000000": "07:05:00",
	}
	for raw, want := range cases {
		got, err := ParseClock(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "25:00", "9h30", "09:61"} {
		_, err := ParseClock(raw)
		assert.Error(t, err, raw)
	}
}

func TestClockTimeScan(t *testing.T) {
	var c ClockTime

	require.NoError(t, c.Scan("10:15:00.000000"))
	assert.Equal(t, ClockTime("10:15:00"), c)

	require.NoError(t, c.Scan([]byte("08:00")))
	assert.Equal(t, ClockTime("08:00:00"), c)

	require.NoError(t, c.Scan(time.Date(0, 1, 1, 17, 45, 30, 0, time.UTC)))
	assert.Equal(t, ClockTime("17:45:30"), c)

	require.NoError(t, c.Scan("0000-01-01 06:10:00+00:00"))
	assert.Equal(t, ClockTime("06:10:00"), c)

	require.NoError(t, c.Scan(nil))
	assert.Equal(t, ClockTime(""), c)

	assert.Error(t, c.Scan(42))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2024-05-17"), d)

	require.NoError(t, d.Scan("2024-06-01T00:00:00Z"))
	assert.Equal(t, Date("2024-06-01"), d)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", v)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)

	empty, err := Date("").Value()
	require.NoError(t, err)
	assert.Nil(t, empty)
}
