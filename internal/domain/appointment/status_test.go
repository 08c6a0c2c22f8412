package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"pending", true},
		{"confirmed", true},
		{"cancelled", true},
		{"done", true},
		{"Confirmed", false},
		{"scheduled", false},
		{"", false},
	}

	for _, tt := range cases {
		got, err := ParseStatus(tt.raw)
		if tt.valid {
			require.NoError(t, err, tt.raw)
			assert.Equal(t, Status(tt.raw), got)
			continue
		}
		assert.Error(t, err, tt.raw)
	}
}

func TestInitialStatusIsPending(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestStatusesReturnsCopy(t *testing.T) {
	list := Statuses()
	list[0] = "tampered"

	assert.Equal(t, StatusPending, Statuses()[0])
	assert.Equal(t, "pending confirmed cancelled done", OneOf())
}
