package presale

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
)

// Status is the summary served to the api
type Status struct {
	Address         common.Address `json:"address"`
	Owner           common.Address `json:"owner"`
	SaleToken       common.Address `json:"saleToken"`
	PayToken        common.Address `json:"payToken"`
	Phase           string         `json:"phase"`
	AcceptedAsset   string         `json:"acceptedAsset"`
	Phase1Rate      string         `json:"phase1Rate"`
	Phase1DevRate   string         `json:"phase1DevRate"`
	Phase2Rate      string         `json:"phase2Rate"`
	Phase2DevRate   string         `json:"phase2DevRate"`
	InvestmentLimit *amount.Amount `json:"investmentLimit"`
	InitialEscrow   *amount.Amount `json:"initialEscrow"`
	StandardIssued  *amount.Amount `json:"standardIssued"`
	TotalIssued     *amount.Amount `json:"totalIssued"`
	RaisedToken     *amount.Amount `json:"raisedToken"`
	RaisedNative    *amount.Amount `json:"raisedNative"`
	Investors       uint32         `json:"investors"`
	Settled         bool           `json:"settled"`
}

func (cont *PresaleContract) Status(cc types.ContractLoader) (*Status, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	phase := cont.CurrentPhase(cc)
	return &Status{
		Address:         cont.addr,
		Owner:           cfg.Owner,
		SaleToken:       cfg.SaleToken,
		PayToken:        cfg.PayToken,
		Phase:           phase.String(),
		AcceptedAsset:   phase.AcceptedAsset().String(),
		Phase1Rate:      cfg.Phase1Rate.String(),
		Phase1DevRate:   cfg.Phase1DevRate.String(),
		Phase2Rate:      cfg.Phase2Rate.String(),
		Phase2DevRate:   cfg.Phase2DevRate.String(),
		InvestmentLimit: cfg.InvestmentLimit,
		InitialEscrow:   cont.InitialEscrow(cc),
		StandardIssued:  cont.StandardIssued(cc),
		TotalIssued:     cont.TotalIssued(cc),
		RaisedToken:     cont.TotalRaised(cc, AssetSaleToken),
		RaisedNative:    cont.TotalRaised(cc, AssetNativeCurrency),
		Investors:       cont.InvestorCount(cc),
		Settled:         cont.Settled(cc),
	}, nil
}
