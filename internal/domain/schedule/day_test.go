package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDayOfWeek(t *testing.T) {
	for _, d := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		got, err := ParseDayOfWeek(d)
		assert.NoError(t, err)
		assert.Equal(t, DayOfWeek(d), got)
	}

	for _, d := range []string{"Monday", "mon", "", "holiday"} {
		_, err := ParseDayOfWeek(d)
		assert.Error(t, err, d)
	}
}
