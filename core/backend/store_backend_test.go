package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("b"), PrefixEnd([]byte("a")))
	require.Equal(t, []byte{0x01, 0x03}, PrefixEnd([]byte{0x01, 0x02}))
	require.Equal(t, []byte{0x02}, PrefixEnd([]byte{0x01, 0xff}))
	require.Nil(t, PrefixEnd([]byte{0xff, 0xff}))
}

func TestCreateUnknownDriver(t *testing.T) {
	_, err := Create("nothing", "")
	require.ErrorIs(t, err, ErrNotExistDriver)
}
