package memory_driver

import (
	"bytes"
	"sync"

	"github.com/meverselabs/presale/core/backend"
	"github.com/tidwall/btree"
)

const btreeDegrees = 64

func init() {
	backend.RegisterDriver("memory", NewStoreBackendMemory)
}

type memItem struct {
	key   []byte
	value []byte
}

func (mi *memItem) Less(item btree.Item, ctx interface{}) bool {
	return bytes.Compare(mi.key, item.(*memItem).key) < 0
}

// StoreBackendMemory keeps every key ordered in a b-tree, nothing survives Close
type StoreBackendMemory struct {
	sync.RWMutex
	keys   *btree.BTree
	closed bool
}

// NewStoreBackendMemory ignores the path
func NewStoreBackendMemory(path string) (backend.StoreBackend, error) {
	return &StoreBackendMemory{
		keys: btree.New(btreeDegrees, nil),
	}, nil
}

func (st *StoreBackendMemory) Shrink() {
}

func (st *StoreBackendMemory) Close() {
	st.Lock()
	defer st.Unlock()

	st.closed = true
	st.keys = btree.New(btreeDegrees, nil)
}

func (st *StoreBackendMemory) View(fn func(txn backend.StoreReader) error) error {
	st.RLock()
	defer st.RUnlock()

	if st.closed {
		return backend.ErrClosed
	}
	return fn(&memoryTx{st: st})
}

// Update applies the writes of fn all together, a failed fn leaves the tree untouched
func (st *StoreBackendMemory) Update(fn func(txn backend.StoreWriter) error) error {
	st.Lock()
	defer st.Unlock()

	if st.closed {
		return backend.ErrClosed
	}
	txn := &memoryTx{st: st, writable: true}
	if err := fn(txn); err != nil {
		txn.rollback()
		return err
	}
	return nil
}

type memoryTx struct {
	st       *StoreBackendMemory
	writable bool
	undo     []*memItem
}

func (tx *memoryTx) Get(key []byte) ([]byte, error) {
	item := tx.st.keys.Get(&memItem{key: key})
	if item == nil {
		return nil, backend.ErrNotExistKey
	}
	value := item.(*memItem).value
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (tx *memoryTx) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	var inErr error
	iter := func(item btree.Item) bool {
		mi := item.(*memItem)
		if err := fn(mi.key, mi.value); err != nil {
			inErr = err
			return false
		}
		return true
	}
	if len(prefix) == 0 {
		tx.st.keys.Ascend(iter)
	} else if end := backend.PrefixEnd(prefix); end == nil {
		tx.st.keys.AscendGreaterOrEqual(&memItem{key: prefix}, iter)
	} else {
		tx.st.keys.AscendRange(&memItem{key: prefix}, &memItem{key: end}, iter)
	}
	return inErr
}

func (tx *memoryTx) Set(key []byte, value []byte) error {
	k := make([]byte, len(key))
	copy(k, key)
	v := make([]byte, len(value))
	copy(v, value)
	prev := tx.st.keys.ReplaceOrInsert(&memItem{key: k, value: v})
	tx.remember(k, prev)
	return nil
}

func (tx *memoryTx) Delete(key []byte) error {
	prev := tx.st.keys.Delete(&memItem{key: key})
	if prev != nil {
		tx.remember(key, prev)
	}
	return nil
}

func (tx *memoryTx) remember(key []byte, prev btree.Item) {
	if prev == nil {
		tx.undo = append(tx.undo, &memItem{key: key})
	} else {
		tx.undo = append(tx.undo, prev.(*memItem))
	}
}

func (tx *memoryTx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		mi := tx.undo[i]
		if mi.value == nil {
			tx.st.keys.Delete(mi)
		} else {
			tx.st.keys.ReplaceOrInsert(mi)
		}
	}
	tx.undo = nil
}
