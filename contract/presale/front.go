package presale

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
)

func (cont *PresaleContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *PresaleContract
}

//////////////////////////////////////////////////
// Owner Functions
//////////////////////////////////////////////////

func (f *front) AddWhitelistAddresses(cc *types.ContractContext, addrs []common.Address) error {
	return f.cont.AddWhitelistAddresses(cc, addrs)
}

func (f *front) AddDevAddresses(cc *types.ContractContext, addrs []common.Address) error {
	return f.cont.AddDevAddresses(cc, addrs)
}

func (f *front) StartPresalePhase1(cc *types.ContractContext) error {
	return f.cont.StartPresalePhase1(cc)
}

func (f *front) StartPhase1(cc *types.ContractContext) error {
	return f.cont.StartPresalePhase1(cc)
}

func (f *front) StartPresalePhase2(cc *types.ContractContext) error {
	return f.cont.StartPresalePhase2(cc)
}

func (f *front) StartPhase2(cc *types.ContractContext) error {
	return f.cont.StartPresalePhase2(cc)
}

func (f *front) EndSale(cc *types.ContractContext) error {
	return f.cont.EndSale(cc)
}

func (f *front) EndPresale(cc *types.ContractContext) error {
	return f.cont.EndPresale(cc)
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) InvestWithToken(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	return f.cont.InvestWithToken(cc, am)
}

func (f *front) InvestLamboForNist(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	return f.cont.InvestWithToken(cc, am)
}

func (f *front) Receive(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.Receive(cc)
}

func (f *front) Refund(cc *types.ContractContext) error {
	return f.cont.Refund(cc)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc types.ContractLoader) (common.Address, error) {
	return f.cont.Owner(cc)
}

func (f *front) SaleToken(cc types.ContractLoader) (common.Address, error) {
	return f.cont.SaleToken(cc)
}

func (f *front) PayToken(cc types.ContractLoader) (common.Address, error) {
	return f.cont.PayToken(cc)
}

func (f *front) CurrentPhase(cc types.ContractLoader) Phase {
	return f.cont.CurrentPhase(cc)
}

func (f *front) AcceptedAsset(cc types.ContractLoader) AssetKind {
	return f.cont.AcceptedAsset(cc)
}

func (f *front) IsWhitelisted(cc *types.ContractContext, addr common.Address) (bool, error) {
	return f.cont.IsWhitelisted(cc, addr)
}

func (f *front) IsDevAddress(cc types.ContractLoader, addr common.Address) bool {
	return f.cont.IsDevAddress(cc, addr)
}

func (f *front) Quote(cc types.ContractLoader, contributor common.Address, am *amount.Amount, phase Phase) (*amount.Amount, error) {
	return f.cont.Quote(cc, contributor, am, phase)
}

func (f *front) GetPresaleInvestmentLimit(cc types.ContractLoader) (*amount.Amount, error) {
	return f.cont.GetPresaleInvestmentLimit(cc)
}

func (f *front) GetInvestedAmount(cc types.ContractLoader, addr common.Address) (*amount.Amount, error) {
	return f.cont.GetInvestedAmount(cc, addr)
}

func (f *front) GetInvestment(cc types.ContractLoader, addr common.Address) (*Investment, error) {
	return f.cont.GetInvestment(cc, addr)
}

func (f *front) InvestorList(cc types.ContractLoader) []common.Address {
	return f.cont.InvestorList(cc)
}

func (f *front) TotalRaised(cc types.ContractLoader, asset AssetKind) *amount.Amount {
	return f.cont.TotalRaised(cc, asset)
}

func (f *front) TotalIssued(cc types.ContractLoader) *amount.Amount {
	return f.cont.TotalIssued(cc)
}

func (f *front) InitialEscrow(cc types.ContractLoader) *amount.Amount {
	return f.cont.InitialEscrow(cc)
}

func (f *front) Settled(cc types.ContractLoader) bool {
	return f.cont.Settled(cc)
}

func (f *front) Status(cc types.ContractLoader) (*Status, error) {
	return f.cont.Status(cc)
}
