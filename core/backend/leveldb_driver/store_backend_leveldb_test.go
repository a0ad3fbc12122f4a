package leveldb_driver

import (
	"testing"

	"github.com/meverselabs/presale/core/backend"
	"github.com/stretchr/testify/require"
)

func TestLevelDBUpdateAndView(t *testing.T) {
	st, err := backend.Create("leveldb", t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
		if err := txn.Set([]byte("p1"), []byte("one")); err != nil {
			return err
		}
		if err := txn.Set([]byte("p2"), []byte("two")); err != nil {
			return err
		}
		return txn.Set([]byte("q1"), []byte("other"))
	}))
	require.NoError(t, st.Update(func(txn backend.StoreWriter) error {
		return txn.Delete([]byte("p2"))
	}))

	require.NoError(t, st.View(func(txn backend.StoreReader) error {
		v, err := txn.Get([]byte("p1"))
		require.NoError(t, err)
		require.Equal(t, []byte("one"), v)

		_, err = txn.Get([]byte("p2"))
		require.ErrorIs(t, err, backend.ErrNotExistKey)

		count := 0
		require.NoError(t, txn.Iterate([]byte("p"), func(key []byte, value []byte) error {
			count++
			return nil
		}))
		require.Equal(t, 1, count)
		return nil
	}))
}
