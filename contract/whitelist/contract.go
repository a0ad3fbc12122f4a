package whitelist

import (
	"bytes"
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// WhiteListContract keeps named groups of addresses, every group is managed by the address that made it
type WhiteListContract struct {
	addr   common.Address
	master common.Address
}

func (cont *WhiteListContract) Name() string {
	return "WhiteList"
}

func (cont *WhiteListContract) Address() common.Address {
	return cont.addr
}

func (cont *WhiteListContract) Master() common.Address {
	return cont.master
}

func (cont *WhiteListContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *WhiteListContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &WhiteListContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	return nil
}

//////////////////////////////////////////////////
// Private Writer Functions
//////////////////////////////////////////////////

func increaseWhiteListSeq(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagSeq})
	seq := big.NewInt(0).SetBytes(bs)
	seq.Add(seq, big.NewInt(1))
	cc.SetContractData([]byte{tagSeq}, seq.Bytes())
	return seq
}

func makeGroupId(cc *types.ContractContext, owner common.Address) hash.Hash256 {
	seq := increaseWhiteListSeq(cc)
	bs := append(owner[:], seq.Bytes()...)
	bs = append(bs, []byte("WhiteListMakeGroupId")...)
	return hash.Hash(bs)
}

func setOwner(cc *types.ContractContext, groupId hash.Hash256, owner common.Address) {
	cc.SetContractData(makeGroupOwnerKey(groupId), owner[:])
}

func setGroupData(cc *types.ContractContext, groupId hash.Hash256, gd *GroupData) error {
	bb := &bytes.Buffer{}
	if _, err := gd.WriteTo(bb); err != nil {
		return err
	}
	cc.SetContractData(makeGroupDataKey(groupId), bb.Bytes())
	return nil
}

func groupData(cc types.ContractLoader, groupId hash.Hash256) (*GroupData, error) {
	bs := cc.ContractData(makeGroupDataKey(groupId))
	if len(bs) == 0 {
		return nil, errors.Wrap(ErrNotExistGroup, groupId.String())
	}
	gd := &GroupData{}
	if _, err := gd.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return gd, nil
}

func (cont *WhiteListContract) checkGroupOwner(cc *types.ContractContext, groupId hash.Hash256) (*GroupData, error) {
	gd, err := groupData(cc, groupId)
	if err != nil {
		return nil, err
	}
	if cont.GroupOwner(cc, groupId) != cc.From() {
		return nil, errors.Wrap(ErrNotGroupOwner, cc.From().String())
	}
	return gd, nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// AddGroup makes a new empty group owned by the caller
func (cont *WhiteListContract) AddGroup(cc *types.ContractContext, name string) (hash.Hash256, error) {
	if len(name) == 0 {
		return hash.Hash256{}, errors.WithStack(ErrInvalidGroupName)
	}
	owner := cc.From()
	groupId := makeGroupId(cc, owner)

	setOwner(cc, groupId, owner)
	if err := setGroupData(cc, groupId, &GroupData{Name: name}); err != nil {
		return hash.Hash256{}, err
	}
	cc.EmitEvent("GroupAdded", "groupId", groupId.String(), "owner", owner.String(), "name", name)
	return groupId, nil
}

func (cont *WhiteListContract) AddAddresses(cc *types.ContractContext, groupId hash.Hash256, users []common.Address) error {
	gd, err := cont.checkGroupOwner(cc, groupId)
	if err != nil {
		return err
	}
	for _, user := range users {
		key := makeMemberKey(groupId, user)
		if len(cc.ContractData(key)) > 0 {
			continue
		}
		cc.SetContractData(key, []byte{1})
		gd.Count++
	}
	return setGroupData(cc, groupId, gd)
}

func (cont *WhiteListContract) RemoveAddresses(cc *types.ContractContext, groupId hash.Hash256, users []common.Address) error {
	gd, err := cont.checkGroupOwner(cc, groupId)
	if err != nil {
		return err
	}
	for _, user := range users {
		key := makeMemberKey(groupId, user)
		if len(cc.ContractData(key)) == 0 {
			continue
		}
		cc.SetContractData(key, nil)
		gd.Count--
	}
	return setGroupData(cc, groupId, gd)
}

func (cont *WhiteListContract) TransferGroup(cc *types.ContractContext, groupId hash.Hash256, to common.Address) error {
	if _, err := cont.checkGroupOwner(cc, groupId); err != nil {
		return err
	}
	setOwner(cc, groupId, to)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *WhiteListContract) GroupOwner(cc types.ContractLoader, groupId hash.Hash256) common.Address {
	return common.BytesToAddress(cc.ContractData(makeGroupOwnerKey(groupId)))
}

func (cont *WhiteListContract) GroupData(cc types.ContractLoader, groupId hash.Hash256) (*GroupData, error) {
	return groupData(cc, groupId)
}

// IsAllow reports the membership of the user, an unknown group allows nobody
func (cont *WhiteListContract) IsAllow(cc types.ContractLoader, groupId hash.Hash256, user common.Address) bool {
	return len(cc.ContractData(makeMemberKey(groupId, user))) > 0
}
