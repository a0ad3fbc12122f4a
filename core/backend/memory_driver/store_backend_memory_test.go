package memory_driver

import (
	"errors"
	"testing"

	"github.com/meverselabs/presale/core/backend"
	"github.com/stretchr/testify/require"
)

func TestMemoryIteratePrefix(t *testing.T) {
	st, err := backend.Create("memory", "")
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
		for _, k := range []string{"a1", "b1", "b2", "b\xff", "c1"} {
			if err := txn.Set([]byte(k), []byte("v"+k)); err != nil {
				return err
			}
		}
		return nil
	}))

	var keys []string
	require.NoError(t, st.View(func(txn backend.StoreReader) error {
		return txn.Iterate([]byte("b"), func(key []byte, value []byte) error {
			keys = append(keys, string(key))
			return nil
		})
	}))
	require.Equal(t, []string{"b1", "b2", "b\xff"}, keys)
}

func TestMemoryUpdateRollback(t *testing.T) {
	st, err := NewStoreBackendMemory("")
	require.NoError(t, err)

	require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
		return txn.Set([]byte("k"), []byte("before"))
	}))

	failed := errors.New("abort")
	err = st.Update(func(txn backend.StoreWriter) error {
		if err := txn.Set([]byte("k"), []byte("after")); err != nil {
			return err
		}
		if err := txn.Set([]byte("new"), []byte("x")); err != nil {
			return err
		}
		v, err := txn.Get([]byte("k"))
		require.NoError(t, err)
		require.Equal(t, []byte("after"), v)
		return failed
	})
	require.ErrorIs(t, err, failed)

	require.NoError(t, st.View(func(txn backend.StoreReader) error {
		v, err := txn.Get([]byte("k"))
		require.NoError(t, err)
		require.Equal(t, []byte("before"), v)
		_, err = txn.Get([]byte("new"))
		require.ErrorIs(t, err, backend.ErrNotExistKey)
		return nil
	}))
}

func TestMemoryClosed(t *testing.T) {
	st, err := NewStoreBackendMemory("")
	require.NoError(t, err)
	st.Close()
	require.ErrorIs(t, st.View(func(txn backend.StoreReader) error { return nil }), backend.ErrClosed)
}
