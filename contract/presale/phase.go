package presale

import (
	"github.com/meverselabs/presale/common/rlog"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

func (cont *PresaleContract) CurrentPhase(cc types.ContractLoader) Phase {
	bs := cc.ContractData([]byte{tagPhase})
	if len(bs) == 0 {
		return Inactive
	}
	return Phase(bs[0])
}

func (cont *PresaleContract) AcceptedAsset(cc types.ContractLoader) AssetKind {
	return cont.CurrentPhase(cc).AcceptedAsset()
}

// canTransit allows only the next phase, Phase1Active may end directly when the config allows it
func canTransit(cfg *PresaleContractConstruction, from Phase, to Phase) bool {
	if to == from+1 {
		return true
	}
	return from == Phase1Active && to == Ended && cfg.AllowEndFromPhase1
}

func (cont *PresaleContract) transit(cc *types.ContractContext, cfg *PresaleContractConstruction, to Phase) error {
	from := cont.CurrentPhase(cc)
	if !canTransit(cfg, from, to) {
		return errors.Wrapf(ErrInvalidPhaseTransition, "%v to %v", from, to)
	}
	cc.SetContractData([]byte{tagPhase}, []byte{byte(to)})
	cc.EmitEvent("PhaseChanged", "from", from, "to", to)
	rlog.Debug("presale phase changed", "presale", cont.addr.String(), "from", from.String(), "to", to.String())
	return nil
}

// StartPresalePhase1 opens the token phase and records the escrow that bounds standard issuance
func (cont *PresaleContract) StartPresalePhase1(cc *types.ContractContext) error {
	cfg, err := cont.onlyOwner(cc)
	if err != nil {
		return err
	}
	if err := cont.transit(cc, cfg, Phase1Active); err != nil {
		return err
	}
	escrow, err := tokenLedgerOf(cc, cfg.SaleToken).BalanceOf(cont.addr)
	if err != nil {
		return err
	}
	cc.SetContractData([]byte{tagInitialEscrow}, escrow.Bytes())
	return nil
}

func (cont *PresaleContract) StartPresalePhase2(cc *types.ContractContext) error {
	cfg, err := cont.onlyOwner(cc)
	if err != nil {
		return err
	}
	return cont.transit(cc, cfg, Phase2Active)
}

func (cont *PresaleContract) EndSale(cc *types.ContractContext) error {
	cfg, err := cont.onlyOwner(cc)
	if err != nil {
		return err
	}
	return cont.transit(cc, cfg, Ended)
}
