package chain

import (
	"math/big"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/common/rlog"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// Chain executes transactions one by one, every transaction makes a new height
type Chain struct {
	sync.RWMutex
	isInit  bool
	store   *Store
	clock   clockwork.Clock
	isClose bool
}

// NewChain returns a Chain
func NewChain(store *Store, clock clockwork.Clock) *Chain {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Chain{
		store: store,
		clock: clock,
	}
}

// Init stores the genesis state built by fn, an initialized store is only verified
func (cn *Chain) Init(fn func(ctx *types.Context) error) error {
	cn.Lock()
	defer cn.Unlock()

	if cn.isInit {
		return errors.WithStack(ErrAlreadyInitialized)
	}

	// genesis is built on an empty state, a reopened store must compute the same hash
	ctx := types.NewEmptyContext()
	if err := fn(ctx); err != nil {
		return err
	}
	GenesisHash := hash.Hashes(hash.Hash(cn.store.ChainID().Bytes()), ctx.Top().Hash())

	if h, err := cn.store.GenesisHash(); err == nil {
		if h != GenesisHash {
			return errors.WithStack(ErrInvalidGenesisHash)
		}
	} else if err := cn.store.StoreGenesis(GenesisHash, ctx); err != nil {
		return err
	}
	rlog.Info("chain loaded", "height", cn.store.Height(), "genesis", GenesisHash.String())

	cn.isInit = true
	return nil
}

// Close terminate the chain and its store
func (cn *Chain) Close() {
	cn.Lock()
	defer cn.Unlock()

	cn.isClose = true
	cn.store.Close()
}

// Store returns the store of the chain
func (cn *Chain) Store() *Store {
	return cn.store
}

// ChainID returns the id of the chain
func (cn *Chain) ChainID() *big.Int {
	return cn.store.ChainID()
}

// Height returns the last committed height
func (cn *Chain) Height() uint32 {
	return cn.store.Height()
}

// MainToken returns the native currency contract
func (cn *Chain) MainToken() *common.Address {
	return cn.store.MainToken()
}

// NewContext returns a context on the committed state
func (cn *Chain) NewContext() *types.Context {
	return types.NewContext(cn.store)
}

func (cn *Chain) nextTimestamp() uint64 {
	ts := uint64(cn.clock.Now().UnixNano())
	if last := cn.store.LastTimestamp(); ts <= last {
		ts = last + 1
	}
	return ts
}

func (cn *Chain) checkOpen() error {
	if cn.isClose {
		return errors.WithStack(ErrChainClosed)
	}
	if !cn.isInit {
		return errors.WithStack(ErrNotInitialized)
	}
	return nil
}

// Execute runs the transaction at the next height
// a failed transaction keeps no state change but its receipt is stored with the error
func (cn *Chain) Execute(tx *types.Transaction) (*types.Receipt, error) {
	cn.Lock()
	defer cn.Unlock()

	if err := cn.checkOpen(); err != nil {
		return nil, err
	}

	ts := cn.nextTimestamp()
	tx.Timestamp = ts
	tx.Seq = uint64(cn.store.Height()) + 1
	TxHash, err := tx.Hash()
	if err != nil {
		return nil, err
	}

	ctx := cn.NewContext().NextContext(ts)
	result, execErr := ExecuteTransaction(ctx, tx)
	if execErr != nil {
		ctx = cn.NewContext().NextContext(ts)
	}
	receipt := &types.Receipt{
		TxHash:    TxHash,
		Height:    ctx.TargetHeight(),
		Timestamp: ts,
		From:      tx.From,
		To:        tx.To,
		Method:    tx.Method,
		Status:    execErr == nil,
		Result:    result,
		Events:    ctx.Events(),
		StateHash: ctx.Hash(),
	}
	if execErr != nil {
		receipt.Error = execErr.Error()
	}
	if err := cn.store.StoreHeight(ctx, receipt); err != nil {
		return nil, err
	}

	log := rlog.With("height", receipt.Height, "tx", TxHash.String(), "method", tx.Method)
	if execErr != nil {
		log.Debug("transaction reverted", "err", execErr)
		return receipt, execErr
	}
	log.Debug("transaction committed", "events", len(receipt.Events))
	return receipt, nil
}

// DeployContract deploys the contract at the next height and returns its address
func (cn *Chain) DeployContract(owner common.Address, ClassID uint64, Args []byte) (common.Address, error) {
	cn.Lock()
	defer cn.Unlock()

	if err := cn.checkOpen(); err != nil {
		return common.ZeroAddr, err
	}

	ts := cn.nextTimestamp()
	ctx := cn.NewContext().NextContext(ts)
	cont, err := ctx.DeployContract(owner, ClassID, Args)
	if err != nil {
		return common.ZeroAddr, err
	}
	TxHash := hash.Hashes(hash.Hash(cont.Address().Bytes()), hash.Hash(Args))
	receipt := &types.Receipt{
		TxHash:    TxHash,
		Height:    ctx.TargetHeight(),
		Timestamp: ts,
		From:      owner,
		To:        cont.Address(),
		Method:    "Contract.Deploy",
		Status:    true,
		Result:    []interface{}{cont.Address()},
		Events:    ctx.Events(),
		StateHash: ctx.Hash(),
	}
	if err := cn.store.StoreHeight(ctx, receipt); err != nil {
		return common.ZeroAddr, err
	}
	rlog.Info("contract deployed", "address", cont.Address().String(), "class", types.ContractName(ClassID))
	return cont.Address(), nil
}

// Call runs the method on a throwaway snapshot of the committed state
func (cn *Chain) Call(from common.Address, to common.Address, method string, args []interface{}) ([]interface{}, error) {
	cn.RLock()
	defer cn.RUnlock()

	if err := cn.checkOpen(); err != nil {
		return nil, err
	}

	ctx := cn.NewContext()
	sn := ctx.Snapshot()
	defer ctx.Revert(sn)
	return ExecContract(ctx, from, to, method, args, nil)
}

// Receipt returns the receipt of the transaction
func (cn *Chain) Receipt(TxHash hash.Hash256) (*types.Receipt, error) {
	return cn.store.Receipt(TxHash)
}

// ExecContract calls the method of the contract as from, value is visible only to that call
func ExecContract(ctx *types.Context, from common.Address, to common.Address, method string, args []interface{}, value *amount.Amount) ([]interface{}, error) {
	cont, err := ctx.Contract(to)
	if err != nil {
		return nil, err
	}
	intr := types.NewInteractor(ctx)
	defer intr.Distroy()

	cc := ctx.ContractContext(cont, from)
	if value != nil {
		cc = cc.WithValue(value)
	}
	cc.Exec = intr.Exec
	return cc.Exec(cc, to, method, args)
}

// ExecuteTransaction applies the transaction to the context, nothing survives a failure
func ExecuteTransaction(ctx *types.Context, tx *types.Transaction) ([]interface{}, error) {
	sn := ctx.Snapshot()
	result, err := executeTransaction(ctx, tx)
	if err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.Commit(sn)
	return result, nil
}

// isPayable reports whether the method may carry value, only Receive reads it
func isPayable(method string) bool {
	return method == "" || method == "Receive"
}

func executeTransaction(ctx *types.Context, tx *types.Transaction) ([]interface{}, error) {
	if tx.HasValue() {
		if !isPayable(tx.Method) {
			return nil, errors.Wrap(ErrNotPayable, tx.Method)
		}
		mt := ctx.MainToken()
		if mt == nil {
			return nil, errors.WithStack(types.ErrNotExistMainToken)
		}
		if _, err := ExecContract(ctx, tx.From, *mt, "Transfer", []interface{}{tx.To, tx.Value}, nil); err != nil {
			return nil, err
		}
	}
	if !ctx.IsContract(tx.To) {
		if tx.Method == "" && tx.HasValue() {
			return []interface{}{}, nil
		}
		return nil, errors.Wrap(ErrNotContract, tx.To.String())
	}
	method := tx.Method
	if method == "" {
		method = "Receive"
	}
	return ExecContract(ctx, tx.From, tx.To, method, tx.Args, tx.Value)
}
