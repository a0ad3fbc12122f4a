package chain

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/bluele/gcache"
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/core/backend"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

const storeCacheSize = 4096

// Store saves the committed chain state to the backend
// All updates of a height are executed in one backend transaction
type Store struct {
	sync.RWMutex
	db        backend.StoreBackend
	chainID   *big.Int
	cache     gcache.Cache
	status    storeStatus
	closeLock sync.RWMutex
	isClose   bool
}

type storeStatus struct {
	height    uint32
	lastHash  hash.Hash256
	timestamp uint64
	mainToken *common.Address
}

// NewStore returns a Store and loads the last status from the backend
func NewStore(db backend.StoreBackend, ChainID *big.Int) (*Store, error) {
	st := &Store{
		db:      db,
		chainID: ChainID,
		cache:   gcache.New(storeCacheSize).LRU().Build(),
	}
	if err := st.db.View(func(txn backend.StoreReader) error {
		if bs, err := txn.Get(tagHeight); err == nil {
			st.status.height = bin.Uint32(bs)
		} else if !errors.Is(err, backend.ErrNotExistKey) {
			return err
		}
		if bs, err := txn.Get(tagLastHash); err == nil {
			copy(st.status.lastHash[:], bs)
		} else if !errors.Is(err, backend.ErrNotExistKey) {
			return err
		}
		if bs, err := txn.Get(tagLastTimestamp); err == nil {
			st.status.timestamp = bin.Uint64(bs)
		} else if !errors.Is(err, backend.ErrNotExistKey) {
			return err
		}
		if bs, err := txn.Get(tagMainToken); err == nil {
			addr := common.BytesToAddress(bs)
			st.status.mainToken = &addr
		} else if !errors.Is(err, backend.ErrNotExistKey) {
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return st, nil
}

// Close terminate and clean store
func (st *Store) Close() {
	st.closeLock.Lock()
	defer st.closeLock.Unlock()

	if st.isClose {
		return
	}
	st.isClose = true
	st.db.Close()
	st.cache.Purge()
}

// ChainID returns the chain id of the target chain
func (st *Store) ChainID() *big.Int {
	return st.chainID
}

// TargetHeight returns the last committed height
func (st *Store) TargetHeight() uint32 {
	return st.Height()
}

// Height returns the last committed height
func (st *Store) Height() uint32 {
	st.RLock()
	defer st.RUnlock()
	return st.status.height
}

// LastHash returns the state hash of the last height
func (st *Store) LastHash() hash.Hash256 {
	st.RLock()
	defer st.RUnlock()
	return st.status.lastHash
}

// LastTimestamp returns the timestamp of the last height
func (st *Store) LastTimestamp() uint64 {
	st.RLock()
	defer st.RUnlock()
	return st.status.timestamp
}

// MainToken returns the native currency contract
func (st *Store) MainToken() *common.Address {
	st.RLock()
	defer st.RUnlock()
	if st.status.mainToken == nil {
		return nil
	}
	addr := *st.status.mainToken
	return &addr
}

// GenesisHash returns the hash of the genesis state
func (st *Store) GenesisHash() (hash.Hash256, error) {
	var h hash.Hash256
	bs, err := st.get(tagGenesisHash)
	if err != nil {
		return h, err
	}
	copy(h[:], bs)
	return h, nil
}

func (st *Store) get(key []byte) ([]byte, error) {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return nil, errors.WithStack(ErrStoreClosed)
	}

	if v, err := st.cache.Get(string(key)); err == nil {
		bs := v.([]byte)
		if len(bs) == 0 {
			return nil, backend.ErrNotExistKey
		}
		return bs, nil
	}
	var value []byte
	if err := st.db.View(func(txn backend.StoreReader) error {
		bs, err := txn.Get(key)
		if err != nil {
			return err
		}
		value = make([]byte, len(bs))
		copy(value, bs)
		return nil
	}); err != nil {
		if errors.Is(err, backend.ErrNotExistKey) {
			st.cache.Set(string(key), []byte{})
		}
		return nil, err
	}
	st.cache.Set(string(key), value)
	return value, nil
}

// IsContract returns is the contract
func (st *Store) IsContract(addr common.Address) bool {
	_, err := st.get(toContractKey(addr))
	return err == nil
}

// Contract returns the contract of the address
func (st *Store) Contract(addr common.Address) (types.Contract, error) {
	bs, err := st.get(toContractKey(addr))
	if err != nil {
		if errors.Is(err, backend.ErrNotExistKey) {
			return nil, errors.Wrap(types.ErrNotExistContract, addr.String())
		}
		return nil, err
	}
	cd := &types.ContractDefine{}
	if _, err := cd.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return types.CreateContract(cd)
}

// Data returns the committed data
func (st *Store) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	bs, err := st.get(toDataKey(key))
	if err != nil {
		return nil
	}
	return bs
}

// Receipt returns the receipt of the transaction
func (st *Store) Receipt(TxHash hash.Hash256) (*types.Receipt, error) {
	bs, err := st.get(toReceiptKey(TxHash))
	if err != nil {
		if errors.Is(err, backend.ErrNotExistKey) {
			return nil, errors.WithStack(ErrNotExistReceipt)
		}
		return nil, err
	}
	r := &types.Receipt{}
	if err := r.UnmarshalBinary(bs); err != nil {
		return nil, err
	}
	return r, nil
}

// ReceiptAt returns the receipt of the transaction committed at the height
func (st *Store) ReceiptAt(height uint32) (*types.Receipt, error) {
	bs, err := st.get(toHeightReceiptKey(height))
	if err != nil {
		if errors.Is(err, backend.ErrNotExistKey) {
			return nil, errors.WithStack(ErrNotExistReceipt)
		}
		return nil, err
	}
	var h hash.Hash256
	copy(h[:], bs)
	return st.Receipt(h)
}

// StoreGenesis saves the genesis state as height zero
func (st *Store) StoreGenesis(genHash hash.Hash256, ctx *types.Context) error {
	if err := st.apply(ctx, genHash, nil, func(txn backend.StoreWriter) error {
		return txn.Set(tagGenesisHash, genHash[:])
	}); err != nil {
		return err
	}
	st.cache.Remove(string(tagGenesisHash))
	return nil
}

// StoreHeight saves the context of the next height with the receipt of its transaction
func (st *Store) StoreHeight(ctx *types.Context, receipt *types.Receipt) error {
	return st.apply(ctx, receipt.StateHash, receipt, nil)
}

func (st *Store) apply(ctx *types.Context, stateHash hash.Hash256, receipt *types.Receipt, extra func(txn backend.StoreWriter) error) error {
	st.closeLock.RLock()
	defer st.closeLock.RUnlock()
	if st.isClose {
		return errors.WithStack(ErrStoreClosed)
	}
	if ctx.StackSize() > 1 {
		return errors.WithStack(ErrDirtyContext)
	}
	ctd := ctx.Top()
	height := ctx.TargetHeight()
	timestamp := ctx.LastTimestamp()

	written := map[string][]byte{}
	if err := st.db.Update(func(txn backend.StoreWriter) error {
		set := func(key []byte, value []byte) error {
			written[string(key)] = value
			return txn.Set(key, value)
		}
		if err := set(tagHeight, bin.Uint32Bytes(height)); err != nil {
			return err
		}
		if err := set(tagLastHash, stateHash[:]); err != nil {
			return err
		}
		if err := set(tagLastTimestamp, bin.Uint64Bytes(timestamp)); err != nil {
			return err
		}
		if mt := ctd.UnsafeGetMainToken(); mt != nil {
			if err := set(tagMainToken, mt[:]); err != nil {
				return err
			}
		}
		for addr, cd := range ctd.ContractDefineMap {
			bs, _, err := bin.WriterToBytes(cd)
			if err != nil {
				return err
			}
			if err := set(toContractKey(addr), bs); err != nil {
				return err
			}
		}
		for key, value := range ctd.DataMap {
			if err := set(toDataKey(key), value); err != nil {
				return err
			}
		}
		for key := range ctd.DeletedDataMap {
			k := toDataKey(key)
			written[string(k)] = []byte{}
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		if receipt != nil {
			bs, err := receipt.MarshalBinary()
			if err != nil {
				return err
			}
			if err := set(toReceiptKey(receipt.TxHash), bs); err != nil {
				return err
			}
			if err := set(toHeightReceiptKey(height), receipt.TxHash[:]); err != nil {
				return err
			}
		}
		if extra != nil {
			return extra(txn)
		}
		return nil
	}); err != nil {
		return err
	}

	for k, v := range written {
		st.cache.Set(k, v)
	}

	st.Lock()
	st.status.height = height
	st.status.lastHash = stateHash
	st.status.timestamp = timestamp
	if mt := ctd.UnsafeGetMainToken(); mt != nil {
		addr := *mt
		st.status.mainToken = &addr
	}
	st.Unlock()
	return nil
}
