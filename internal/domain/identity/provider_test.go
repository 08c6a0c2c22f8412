package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviderKind(t *testing.T) {
	k, err := ParseProviderKind("google")
	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, k)

	for _, raw := range []string{"", "Google", "github"} {
		_, err := ParseProviderKind(raw)
		assert.Error(t, err, raw)
	}
}
