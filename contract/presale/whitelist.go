package presale

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

func (cont *PresaleContract) checkNotEnded(cc types.ContractLoader) error {
	if cont.CurrentPhase(cc) == Ended {
		return errors.WithStack(ErrPresaleEnded)
	}
	return nil
}

// AddWhitelistAddresses marks every address as whitelisted, adding a member again changes nothing
func (cont *PresaleContract) AddWhitelistAddresses(cc *types.ContractContext, addrs []common.Address) error {
	if _, err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if err := cont.checkNotEnded(cc); err != nil {
		return err
	}
	added := 0
	for _, addr := range addrs {
		if cont.isLocalWhitelisted(cc, addr) {
			continue
		}
		cc.SetAccountData(addr, []byte{tagWhitelisted}, []byte{1})
		added++
	}
	cc.EmitEvent("WhitelistAdded", "count", added)
	return nil
}

// AddDevAddresses marks the addresses as dev tier, it does not whitelist them
func (cont *PresaleContract) AddDevAddresses(cc *types.ContractContext, addrs []common.Address) error {
	if _, err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if err := cont.checkNotEnded(cc); err != nil {
		return err
	}
	added := 0
	for _, addr := range addrs {
		if cont.IsDevAddress(cc, addr) {
			continue
		}
		cc.SetAccountData(addr, []byte{tagDevAddress}, []byte{1})
		added++
	}
	cc.EmitEvent("DevAddressAdded", "count", added)
	return nil
}

func (cont *PresaleContract) isLocalWhitelisted(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagWhitelisted})
	return len(bs) == 1 && bs[0] == 1
}

// IsWhitelisted checks the local list first and then the delegated whitelist group if one is configured
func (cont *PresaleContract) IsWhitelisted(cc *types.ContractContext, addr common.Address) (bool, error) {
	if cont.isLocalWhitelisted(cc, addr) {
		return true, nil
	}
	cfg, err := cont.config(cc)
	if err != nil {
		return false, err
	}
	if cfg.WhiteListAddress == common.ZeroAddr {
		return false, nil
	}
	is, err := cc.Exec(cc, cfg.WhiteListAddress, "IsAllow", []interface{}{cfg.WhiteListGroupId, addr})
	if err != nil {
		return false, err
	}
	if len(is) == 0 {
		return false, nil
	}
	allowed, _ := is[0].(bool)
	return allowed, nil
}

func (cont *PresaleContract) IsDevAddress(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagDevAddress})
	return len(bs) == 1 && bs[0] == 1
}
