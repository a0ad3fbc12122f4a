package types

import (
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
)

// Context is an intermediate in-memory state using the context data stack on top of the committed state
type Context struct {
	loader          Loader
	genTargetHeight uint32
	genLastHash     hash.Hash256
	genTimestamp    uint64
	cache           *contextCache
	stack           []*ContextData
	isLatestHash    bool
	dataHash        hash.Hash256
}

// NewContext returns a Context that builds the next height on the loader
func NewContext(loader Loader) *Context {
	ctx := &Context{
		loader:          loader,
		genTargetHeight: loader.TargetHeight(),
		genLastHash:     loader.LastHash(),
		genTimestamp:    loader.LastTimestamp(),
	}
	ctx.cache = newContextCache(ctx)
	ctx.stack = []*ContextData{NewContextData(ctx.cache, nil)}
	return ctx
}

// NewEmptyContext returns a EmptyContext
func NewEmptyContext() *Context {
	return NewContext(newEmptyLoader())
}

// NextContext returns the context of the next height with the given timestamp
func (ctx *Context) NextContext(Timestamp uint64) *Context {
	nctx := NewContext(ctx.loader)
	nctx.genTargetHeight = ctx.loader.TargetHeight() + 1
	nctx.genTimestamp = Timestamp
	return nctx
}

// ChainID returns the id of the chain
func (ctx *Context) ChainID() *big.Int {
	return ctx.loader.ChainID()
}

// Hash returns the hash value of it
func (ctx *Context) Hash() hash.Hash256 {
	if !ctx.isLatestHash {
		ctx.dataHash = hash.Hashes(ctx.genLastHash, ctx.Top().Hash())
		ctx.isLatestHash = true
	}
	return ctx.dataHash
}

// TargetHeight returns the recorded target height when context generation
func (ctx *Context) TargetHeight() uint32 {
	return ctx.genTargetHeight
}

// LastHash returns the recorded prev hash when context generation
func (ctx *Context) LastHash() hash.Hash256 {
	return ctx.genLastHash
}

// LastTimestamp returns the recorded timestamp when context generation
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.genTimestamp
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// MainToken returns the address of the native currency contract
func (ctx *Context) MainToken() *common.Address {
	return ctx.Top().MainToken()
}

// SetMainToken sets the native currency contract
func (ctx *Context) SetMainToken(addr common.Address) {
	ctx.isLatestHash = false
	ctx.Top().SetMainToken(addr)
}

// IsContract returns is the contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	return ctx.Top().Contract(addr)
}

// DeployContract deploys the contract in the top snapshot
func (ctx *Context) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	ctx.isLatestHash = false
	return ctx.Top().DeployContract(sender, ClassID, Args)
}

// DeployContractWithAddress deploys the contract to the given address in the top snapshot
func (ctx *Context) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	ctx.isLatestHash = false
	return ctx.Top().DeployContractWithAddress(sender, ClassID, addr, Args)
}

// Data returns the data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.isLatestHash = false
	ctx.Top().SetData(cont, addr, name, value)
}

// EmitEvent appends the event to the top snapshot
func (ctx *Context) EmitEvent(en *Event) {
	ctx.isLatestHash = false
	ctx.Top().EmitEvent(en)
}

// Events returns the events of every snapshot from the bottom to the top
func (ctx *Context) Events() []*Event {
	list := []*Event{}
	for _, ctd := range ctx.stack {
		list = append(list, ctd.Events...)
	}
	return list
}

// ContractContext returns the context that the contract runs with, the caller is from
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	return &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
	}
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctx.isLatestHash = false
	ctd := NewContextData(ctx.cache, ctx.Top())
	ctx.stack[len(ctx.stack)-1].isTop = false
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	ctx.isLatestHash = false
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	ctx.isLatestHash = false
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		top := ctx.Top()
		if ctd.mainToken != nil {
			top.mainToken = ctd.mainToken
		}
		for addr, cd := range ctd.ContractDefineMap {
			top.ContractDefineMap[addr] = cd
		}
		for key, value := range ctd.DataMap {
			delete(top.DeletedDataMap, key)
			top.DataMap[key] = value
		}
		for key := range ctd.DeletedDataMap {
			delete(top.DataMap, key)
			top.DeletedDataMap[key] = true
		}
		top.Events = append(top.Events, ctd.Events...)
		top.seq = ctd.seq
	}
	ctx.Top().isTop = true
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}
