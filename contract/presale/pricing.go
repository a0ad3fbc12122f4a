package presale

import (
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// Convert returns floor(am * Num * 10^saleDecimals / (Den * 10^payDecimals))
func Convert(am *amount.Amount, rate Rate, saleDecimals uint8, payDecimals uint8) (*amount.Amount, error) {
	if am == nil || am.IsZero() {
		return nil, errors.WithStack(ErrZeroAmount)
	}
	if am.IsMinus() {
		return nil, errors.Wrapf(ErrZeroAmount, "negative amount %v", am.String())
	}
	if !rate.IsValid() {
		return nil, errors.Wrapf(ErrInvalidRate, "%v/%v", rate.Num, rate.Den)
	}
	num := new(big.Int).SetUint64(rate.Num)
	num.Mul(num, pow10(saleDecimals))
	den := new(big.Int).SetUint64(rate.Den)
	den.Mul(den, pow10(payDecimals))
	return am.MulDiv(num, den), nil
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// rateFor picks the rate and the decimals of the paid asset for the phase
func rateFor(cfg *PresaleContractConstruction, phase Phase, dev bool) (Rate, uint8, error) {
	switch phase {
	case Phase1Active:
		if dev {
			return cfg.Phase1DevRate, cfg.TokenDecimals, nil
		}
		return cfg.Phase1Rate, cfg.TokenDecimals, nil
	case Phase2Active:
		if dev {
			return cfg.Phase2DevRate, amount.FractionalCount, nil
		}
		return cfg.Phase2Rate, amount.FractionalCount, nil
	default:
		return Rate{}, 0, errors.Wrapf(ErrPresaleNotActive, "no rate for %v", phase)
	}
}

func (cont *PresaleContract) quote(cfg *PresaleContractConstruction, dev bool, am *amount.Amount, phase Phase) (*amount.Amount, error) {
	rate, payDecimals, err := rateFor(cfg, phase, dev)
	if err != nil {
		return nil, err
	}
	return Convert(am, rate, cfg.TokenDecimals, payDecimals)
}

// Quote returns the sale tokens the contributor would get for am in the phase, it changes nothing
func (cont *PresaleContract) Quote(cc types.ContractLoader, contributor common.Address, am *amount.Amount, phase Phase) (*amount.Amount, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	return cont.quote(cfg, cont.IsDevAddress(cc, contributor), am, phase)
}
