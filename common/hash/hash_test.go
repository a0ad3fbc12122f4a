package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashesOrder(t *testing.T) {
	a := Hash([]byte("a"))
	b := Hash([]byte("b"))
	require.NotEqual(t, Hashes(a, b), Hashes(b, a))
	require.Equal(t, Hashes(a, b), Hashes(a, b))
}

func TestParseHash(t *testing.T) {
	h := Hash([]byte("presale"))
	parsed, err := ParseHash(h.Hex())
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = ParseHash("0x1234")
	require.ErrorIs(t, err, ErrInvalidHashSize)
}
