package backend

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// StoreBackend is a key/value store that applies every Update atomically
type StoreBackend interface {
	Shrink()
	Close()
	View(fn func(txn StoreReader) error) error
	Update(fn func(txn StoreWriter) error) error
}

type StoreReader interface {
	Get(key []byte) ([]byte, error)
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error
}

type StoreWriter interface {
	StoreReader
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

type CreateBackend func(Path string) (StoreBackend, error)

var gDriverLock sync.RWMutex
var gDriverMap = map[string]CreateBackend{}

// RegisterDriver adds the driver to the registry, drivers call it from init
func RegisterDriver(Name string, fn CreateBackend) {
	gDriverLock.Lock()
	defer gDriverLock.Unlock()

	gDriverMap[Name] = fn
}

// Create opens the backend of the named driver at the path
func Create(Name string, Path string) (StoreBackend, error) {
	gDriverLock.RLock()
	fn, has := gDriverMap[Name]
	gDriverLock.RUnlock()
	if !has {
		return nil, errors.Wrap(ErrNotExistDriver, Name)
	}
	return fn(Path)
}

// Drivers returns the names of the registered drivers
func Drivers() []string {
	gDriverLock.RLock()
	defer gDriverLock.RUnlock()

	names := make([]string, 0, len(gDriverMap))
	for k := range gDriverMap {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PrefixEnd returns the smallest key that is greater than every key with the prefix
// it returns nil when no such key exists
func PrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
