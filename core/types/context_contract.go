package types

import (
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
)

// ContractLoader is the read only view of the ContractContext used by reader methods
type ContractLoader interface {
	ChainID() *big.Int
	TargetHeight() uint32
	LastTimestamp() uint64
	From() common.Address
	MainToken() *common.Address
	ContractData(name []byte) []byte
	AccountData(addr common.Address, name []byte) []byte
	IsContract(addr common.Address) bool
}

// ContractContext is an context for the contract
type ContractContext struct {
	cont  common.Address
	from  common.Address
	value *amount.Amount
	ctx   *Context
	Exec  ExecFunc
}

// ChainID returns the id of the chain
func (cc *ContractContext) ChainID() *big.Int {
	return cc.ctx.ChainID()
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// LastTimestamp returns the recorded timestamp when ContractContext generation
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// From returns the caller, the signer of the transaction or the calling contract
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Value returns the native amount attached to the call, only a transaction carries one
func (cc *ContractContext) Value() *amount.Amount {
	if cc.value == nil {
		return amount.NewAmount(0, 0)
	}
	return cc.value.Clone()
}

// WithValue returns a copy of the context carrying the native amount
func (cc *ContractContext) WithValue(v *amount.Amount) *ContractContext {
	ncc := *cc
	ncc.value = v
	return &ncc
}

// MainToken returns the MainToken
func (cc *ContractContext) MainToken() *common.Address {
	return cc.ctx.Top().MainToken()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// EmitEvent emits the event of the running contract
func (cc *ContractContext) EmitEvent(name string, kvs ...interface{}) {
	cc.ctx.EmitEvent(NewEvent(cc.cont, name, kvs...))
}

// NextSeq returns the next squence number
func (cc *ContractContext) NextSeq() uint32 {
	return cc.ctx.Top().NextSeq()
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.Top().IsContract(addr)
}
