package crypto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	id, err := UUIDString()
	require.NoError(t, err)
	require.Len(t, id, 36)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, id, parsed.String())
	require.Equal(t, uuid.Version(4), parsed.Version())
	require.Equal(t, uuid.RFC4122, parsed.Variant())

	other, err := UUIDString()
	require.NoError(t, err)
	require.NotEqual(t, id, other)
}
