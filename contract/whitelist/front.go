package whitelist

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/core/types"
)

func (cont *WhiteListContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *WhiteListContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) AddGroup(cc *types.ContractContext, name string) (hash.Hash256, error) {
	return f.cont.AddGroup(cc, name)
}

func (f *front) AddAddresses(cc *types.ContractContext, groupId hash.Hash256, users []common.Address) error {
	return f.cont.AddAddresses(cc, groupId, users)
}

func (f *front) RemoveAddresses(cc *types.ContractContext, groupId hash.Hash256, users []common.Address) error {
	return f.cont.RemoveAddresses(cc, groupId, users)
}

func (f *front) TransferGroup(cc *types.ContractContext, groupId hash.Hash256, to common.Address) error {
	return f.cont.TransferGroup(cc, groupId, to)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) GroupOwner(cc types.ContractLoader, groupId hash.Hash256) common.Address {
	return f.cont.GroupOwner(cc, groupId)
}

func (f *front) GroupSize(cc types.ContractLoader, groupId hash.Hash256) (uint32, error) {
	gd, err := f.cont.GroupData(cc, groupId)
	if err != nil {
		return 0, err
	}
	return gd.Count, nil
}

func (f *front) IsAllow(cc types.ContractLoader, groupId hash.Hash256, user common.Address) bool {
	return f.cont.IsAllow(cc, groupId, user)
}
