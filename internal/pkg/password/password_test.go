package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)
	require.NoError(t, Compare(hash, "secret"))
}

func TestCompareMismatch(t *testing.T) {
	hash, err := Hash("secret")
	require.NoError(t, err)
	require.ErrorIs(t, Compare(hash, "not-secret"), ErrMismatch)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret")
	require.NoError(t, err)
	second, err := Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.NoError(t, Compare(first, "secret"))
	require.NoError(t, Compare(second, "secret"))
}

func TestCompareMalformedHashDoesNotPanic(t *testing.T) {
	require.Error(t, Compare("", "secret"))
	require.Error(t, Compare("not-a-bcrypt-hash", "secret"))
	hash, err := Hash("secret")
	require.NoError(t, err)
	require.Error(t, Compare(hash, ""))
}
