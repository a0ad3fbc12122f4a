package types

import (
	"bytes"
	"sort"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// ContextData is a state data of the context
type ContextData struct {
	cache             *contextCache
	Parent            *ContextData
	mainToken         *common.Address
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	Events            []*Event
	isTop             bool
	seq               uint32
}

// NewContextData returns a ContextData
func NewContextData(cache *contextCache, Parent *ContextData) *ContextData {
	ctd := &ContextData{
		cache:             cache,
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		isTop:             true,
	}
	if Parent != nil {
		ctd.seq = Parent.seq
	}
	return ctd
}

// UnsafeGetMainToken returns the MainToken set in this snapshot or nil
func (ctd *ContextData) UnsafeGetMainToken() *common.Address {
	return ctd.mainToken
}

// MainToken returns the MainToken
func (ctd *ContextData) MainToken() *common.Address {
	if ctd.mainToken != nil {
		return ctd.mainToken
	}
	if ctd.Parent != nil {
		return ctd.Parent.MainToken()
	}
	return ctd.cache.MainToken()
}

// SetMainToken is set the maintoken
func (ctd *ContextData) SetMainToken(addr common.Address) {
	ctd.mainToken = &addr
}

// IsContract returns is the contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	if _, has := ctd.ContractDefineMap[addr]; has {
		return true
	} else if ctd.Parent != nil {
		return ctd.Parent.IsContract(addr)
	}
	return ctd.cache.IsContract(addr)
}

// Contract returns the contract
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return CreateContract(cd)
	} else if ctd.Parent != nil {
		return ctd.Parent.Contract(addr)
	}
	return ctd.cache.Contract(addr)
}

// NextSeq returns the next squence number
func (ctd *ContextData) NextSeq() uint32 {
	ctd.seq++
	return ctd.seq
}

// DeployContract deploys the contract at the address derived from the sender, the class and the sequence
func (ctd *ContextData) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}

	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(ctd.NextSeq()))
	if height := ctd.cache.ctx.TargetHeight(); height > 0 {
		base = append(base, bin.Uint32Bytes(height)...)
	}
	h := hash.Hash(base)
	return ctd.DeployContractWithAddress(sender, ClassID, common.BytesToAddress(h[12:]), Args)
}

// DeployContractWithAddress deploys the contract to the given address
func (ctd *ContextData) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	if ctd.IsContract(addr) {
		return nil, errors.WithStack(ErrExistContract)
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctd.cache.ctx.ContractContext(cont, sender), Args); err != nil {
		delete(ctd.ContractDefineMap, addr)
		return nil, err
	}
	return cont, nil
}

// Data returns the data
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := dataKey(cont, addr, name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	if value, has := ctd.DataMap[key]; has {
		return value
	}
	var value []byte
	if ctd.Parent != nil {
		value = ctd.Parent.Data(cont, addr, name)
	} else {
		value = ctd.cache.Data(cont, addr, name)
	}
	if len(value) == 0 {
		return nil
	}
	if ctd.isTop {
		nvalue := make([]byte, len(value))
		copy(nvalue, value)
		return nvalue
	}
	return value
}

// SetData inserts the data, an empty value deletes it
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := dataKey(cont, addr, name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// EmitEvent appends the event with the next index of the transaction
func (ctd *ContextData) EmitEvent(en *Event) {
	en.Index = uint16(ctd.eventCount())
	ctd.Events = append(ctd.Events, en)
}

func (ctd *ContextData) eventCount() int {
	if ctd.Parent != nil {
		return ctd.Parent.eventCount() + len(ctd.Events)
	}
	return len(ctd.Events)
}

// Hash returns the hash value of it
func (ctd *ContextData) Hash() hash.Hash256 {
	var buffer bytes.Buffer
	buffer.WriteString("Height")
	buffer.Write(bin.Uint32Bytes(ctd.cache.ctx.TargetHeight()))
	buffer.WriteString("PrevHash")
	PrevHash := ctd.cache.ctx.LastHash()
	buffer.Write(PrevHash[:])
	buffer.WriteString("MainToken")
	if ctd.mainToken != nil {
		buffer.Write((*ctd.mainToken)[:])
	}
	buffer.WriteString("ContractDefineMap")
	addrs := make([]common.Address, 0, len(ctd.ContractDefineMap))
	for k := range ctd.ContractDefineMap {
		addrs = append(addrs, k)
	}
	sort.Slice(addrs, func(i, j int) bool { return bytes.Compare(addrs[i][:], addrs[j][:]) < 0 })
	for _, addr := range addrs {
		ctd.ContractDefineMap[addr].WriteTo(&buffer)
	}
	buffer.WriteString("DataMap")
	for _, key := range sortedKeys(ctd.DataMap) {
		buffer.WriteString(key)
		buffer.Write(ctd.DataMap[key])
	}
	buffer.WriteString("DeletedDataMap")
	for _, key := range sortedKeys(ctd.DeletedDataMap) {
		buffer.WriteString(key)
	}
	return hash.Hash(buffer.Bytes())
}

func sortedKeys[V any](mp map[string]V) []string {
	keys := make([]string, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
