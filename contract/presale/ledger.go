package presale

import (
	"bytes"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/core/types"
)

func (cont *PresaleContract) investment(cc types.ContractLoader, addr common.Address) (*Investment, bool, error) {
	bs := cc.AccountData(addr, []byte{tagInvestment})
	if len(bs) == 0 {
		return newInvestment(), false, nil
	}
	inv := &Investment{}
	if _, err := inv.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, false, err
	}
	return inv, true, nil
}

func (cont *PresaleContract) setInvestment(cc *types.ContractContext, addr common.Address, inv *Investment) error {
	bf := &bytes.Buffer{}
	if _, err := inv.WriteTo(bf); err != nil {
		return err
	}
	cc.SetAccountData(addr, []byte{tagInvestment}, bf.Bytes())
	return nil
}

func (cont *PresaleContract) amountOf(cc types.ContractLoader, key []byte) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(key))
}

func (cont *PresaleContract) addAmount(cc *types.ContractContext, key []byte, am *amount.Amount) {
	cc.SetContractData(key, cont.amountOf(cc, key).Add(am).Bytes())
}

func (cont *PresaleContract) subAmount(cc *types.ContractContext, key []byte, am *amount.Amount) {
	v := cont.amountOf(cc, key).Sub(am)
	if v.IsMinus() {
		v = amount.NewAmount(0, 0)
	}
	cc.SetContractData(key, v.Bytes())
}

// record adds the principal and the issued tokens of one accepted contribution
func (cont *PresaleContract) record(cc *types.ContractContext, addr common.Address, asset AssetKind, principal *amount.Amount, issued *amount.Amount, standard bool) error {
	inv, has, err := cont.investment(cc, addr)
	if err != nil {
		return err
	}
	if !has {
		cont.appendInvestor(cc, addr)
	}
	switch asset {
	case AssetSaleToken:
		inv.Token = inv.Token.Add(principal)
	case AssetNativeCurrency:
		inv.Native = inv.Native.Add(principal)
	}
	inv.Issued = inv.Issued.Add(issued)
	if standard {
		inv.StandardIssued = inv.StandardIssued.Add(issued)
		cont.addAmount(cc, []byte{tagStandardIssued}, issued)
	}
	cont.addAmount(cc, makeTotalRaisedKey(asset), principal)
	cont.addAmount(cc, []byte{tagTotalIssued}, issued)
	return cont.setInvestment(cc, addr, inv)
}

// clear removes the record of the investor and takes it out of the totals
func (cont *PresaleContract) clear(cc *types.ContractContext, addr common.Address, inv *Investment) error {
	cont.subAmount(cc, makeTotalRaisedKey(AssetSaleToken), inv.Token)
	cont.subAmount(cc, makeTotalRaisedKey(AssetNativeCurrency), inv.Native)
	cont.subAmount(cc, []byte{tagTotalIssued}, inv.Issued)
	cont.subAmount(cc, []byte{tagStandardIssued}, inv.StandardIssued)
	return cont.setInvestment(cc, addr, newInvestment())
}

func (cont *PresaleContract) appendInvestor(cc *types.ContractContext, addr common.Address) {
	cnt := cont.InvestorCount(cc)
	cc.SetContractData(makeInvestorAtKey(cnt), addr[:])
	cc.SetContractData([]byte{tagInvestorCount}, bin.Uint32Bytes(cnt+1))
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// GetInvestedAmount returns the principal of both assets together
func (cont *PresaleContract) GetInvestedAmount(cc types.ContractLoader, addr common.Address) (*amount.Amount, error) {
	inv, _, err := cont.investment(cc, addr)
	if err != nil {
		return nil, err
	}
	return inv.Total(), nil
}

func (cont *PresaleContract) GetInvestment(cc types.ContractLoader, addr common.Address) (*Investment, error) {
	inv, _, err := cont.investment(cc, addr)
	return inv, err
}

func (cont *PresaleContract) InvestorCount(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagInvestorCount})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

// InvestorList returns the investors in the order of their first contribution
func (cont *PresaleContract) InvestorList(cc types.ContractLoader) []common.Address {
	cnt := cont.InvestorCount(cc)
	list := make([]common.Address, 0, cnt)
	for i := uint32(0); i < cnt; i++ {
		list = append(list, common.BytesToAddress(cc.ContractData(makeInvestorAtKey(i))))
	}
	return list
}

func (cont *PresaleContract) TotalRaised(cc types.ContractLoader, asset AssetKind) *amount.Amount {
	return cont.amountOf(cc, makeTotalRaisedKey(asset))
}

func (cont *PresaleContract) TotalIssued(cc types.ContractLoader) *amount.Amount {
	return cont.amountOf(cc, []byte{tagTotalIssued})
}

func (cont *PresaleContract) StandardIssued(cc types.ContractLoader) *amount.Amount {
	return cont.amountOf(cc, []byte{tagStandardIssued})
}

func (cont *PresaleContract) InitialEscrow(cc types.ContractLoader) *amount.Amount {
	return cont.amountOf(cc, []byte{tagInitialEscrow})
}

func (cont *PresaleContract) Settled(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagSettled})
	return len(bs) == 1 && bs[0] == 1
}

// GetPresaleInvestmentLimit returns the per investor limit of each asset, zero means unlimited
func (cont *PresaleContract) GetPresaleInvestmentLimit(cc types.ContractLoader) (*amount.Amount, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	return cfg.InvestmentLimit.Clone(), nil
}
