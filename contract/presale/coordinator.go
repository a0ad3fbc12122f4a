package presale

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/rlog"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// checkAccepts fails unless the running phase takes the offered asset
func checkAccepts(phase Phase, offered AssetKind) error {
	accepted := phase.AcceptedAsset()
	if accepted == AssetNone {
		return errors.Wrapf(ErrPresaleNotActive, "phase %v", phase)
	}
	if accepted != offered {
		return errors.WithStack(notActiveForAsset(offered, accepted))
	}
	return nil
}

// InvestWithToken takes am pay tokens from the caller, the caller must have approved the presale
func (cont *PresaleContract) InvestWithToken(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	investor := cc.From()
	payout, err := cont.accept(cc, cfg, AssetSaleToken, investor, am, func() error {
		return tokenLedgerOf(cc, cfg.PayToken).TransferFrom(investor, cont.addr, am)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// Receive is called with the native amount the transaction moved to the presale
func (cont *PresaleContract) Receive(cc *types.ContractContext) (*amount.Amount, error) {
	return cont.receiveContribution(cc, AssetNativeCurrency, cc.From(), cc.Value())
}

// receiveContribution handles a payment that already reached the presale
func (cont *PresaleContract) receiveContribution(cc *types.ContractContext, asset AssetKind, from common.Address, am *amount.Amount) (*amount.Amount, error) {
	cfg, err := cont.config(cc)
	if err != nil {
		return nil, err
	}
	return cont.accept(cc, cfg, asset, from, am, nil)
}

// accept runs every check before collect pulls the payment, nothing is kept when a later step fails
func (cont *PresaleContract) accept(cc *types.ContractContext, cfg *PresaleContractConstruction, asset AssetKind, investor common.Address, am *amount.Amount, collect func() error) (*amount.Amount, error) {
	phase := cont.CurrentPhase(cc)
	if err := checkAccepts(phase, asset); err != nil {
		return nil, err
	}
	if allowed, err := cont.IsWhitelisted(cc, investor); err != nil {
		return nil, err
	} else if !allowed {
		return nil, errors.Wrap(ErrNotWhitelisted, investor.String())
	}
	if am == nil || !am.IsPlus() {
		return nil, errors.WithStack(ErrZeroAmount)
	}

	inv, _, err := cont.investment(cc, investor)
	if err != nil {
		return nil, err
	}
	if !cfg.InvestmentLimit.IsZero() {
		if total := inv.Principal(asset).Add(am); cfg.InvestmentLimit.Less(total) {
			return nil, errors.Wrapf(ErrOverInvestmentLimit, "%v of %v over %v", total.String(), asset, cfg.InvestmentLimit.String())
		}
	}

	if collect != nil {
		if err := collect(); err != nil {
			return nil, err
		}
	}

	dev := cont.IsDevAddress(cc, investor)
	payout, err := cont.quote(cfg, dev, am, phase)
	if err != nil {
		return nil, err
	}
	if payout.IsZero() {
		return nil, errors.Wrapf(ErrZeroAmount, "%v buys nothing", am.String())
	}

	sale := tokenLedgerOf(cc, cfg.SaleToken)
	if !dev {
		if total := cont.StandardIssued(cc).Add(payout); cont.InitialEscrow(cc).Less(total) {
			return nil, errors.Wrapf(ErrEscrowExhausted, "issuing %v over escrow %v", total.String(), cont.InitialEscrow(cc).String())
		}
	}
	balance, err := sale.BalanceOf(cont.addr)
	if err != nil {
		return nil, err
	}
	if balance.Less(payout) {
		return nil, errors.Wrapf(ErrEscrowExhausted, "payout %v over balance %v", payout.String(), balance.String())
	}
	if err := sale.Transfer(investor, payout); err != nil {
		return nil, err
	}
	if err := cont.record(cc, investor, asset, am, payout, !dev); err != nil {
		return nil, err
	}

	cc.EmitEvent("Invested", "investor", investor.String(), "asset", asset, "amount", am.String(), "payout", payout.String(), "dev", dev)
	rlog.Debug("presale contribution", "presale", cont.addr.String(), "investor", investor.String(), "asset", asset.String(), "payout", payout.String())
	return payout, nil
}

// EndPresale ends the sale when needed and settles it once
// native and pay token proceeds go to the owner and unsold sale tokens go back to the sale token contract
func (cont *PresaleContract) EndPresale(cc *types.ContractContext) error {
	cfg, err := cont.onlyOwner(cc)
	if err != nil {
		return err
	}
	if cont.Settled(cc) {
		return errors.WithStack(ErrAlreadySettled)
	}
	if cont.CurrentPhase(cc) != Ended {
		if err := cont.transit(cc, cfg, Ended); err != nil {
			return err
		}
	}

	native := amount.NewAmount(0, 0)
	if mt := cc.MainToken(); mt != nil {
		native, err = sweep(tokenLedgerOf(cc, *mt), cont.addr, cfg.Owner)
		if err != nil {
			return err
		}
	}
	paid := amount.NewAmount(0, 0)
	if cfg.PayToken != cfg.SaleToken {
		paid, err = sweep(tokenLedgerOf(cc, cfg.PayToken), cont.addr, cfg.Owner)
		if err != nil {
			return err
		}
	}
	unsold, err := sweep(tokenLedgerOf(cc, cfg.SaleToken), cont.addr, cfg.SaleToken)
	if err != nil {
		return err
	}
	cc.SetContractData([]byte{tagSettled}, []byte{1})

	cc.EmitEvent("Settled", "native", native.String(), "payToken", paid.String(), "unsold", unsold.String())
	rlog.Info("presale settled", "presale", cont.addr.String(), "native", native.String(), "unsold", unsold.String())
	return nil
}

// sweep moves the whole balance of holder to to and returns it
func sweep(l TokenLedger, holder common.Address, to common.Address) (*amount.Amount, error) {
	bal, err := l.BalanceOf(holder)
	if err != nil {
		return nil, err
	}
	if bal.IsZero() {
		return bal, nil
	}
	if err := l.Transfer(to, bal); err != nil {
		return nil, err
	}
	return bal, nil
}

// Refund gives the principal back and takes the issued sale tokens back, the caller must have approved them
func (cont *PresaleContract) Refund(cc *types.ContractContext) error {
	cfg, err := cont.config(cc)
	if err != nil {
		return err
	}
	if !cfg.RefundEnabled {
		return errors.WithStack(ErrRefundDisabled)
	}
	if cont.Settled(cc) {
		return errors.WithStack(ErrAlreadySettled)
	}
	investor := cc.From()
	inv, has, err := cont.investment(cc, investor)
	if err != nil {
		return err
	}
	if !has || inv.IsEmpty() {
		return errors.Wrap(ErrNothingToRefund, investor.String())
	}

	if inv.Issued.IsPlus() {
		if err := tokenLedgerOf(cc, cfg.SaleToken).TransferFrom(investor, cont.addr, inv.Issued); err != nil {
			return err
		}
	}
	if inv.Token.IsPlus() {
		if err := tokenLedgerOf(cc, cfg.PayToken).Transfer(investor, inv.Token); err != nil {
			return err
		}
	}
	if inv.Native.IsPlus() {
		mt := cc.MainToken()
		if mt == nil {
			return errors.WithStack(types.ErrNotExistMainToken)
		}
		if err := tokenLedgerOf(cc, *mt).Transfer(investor, inv.Native); err != nil {
			return err
		}
	}
	if err := cont.clear(cc, investor, inv); err != nil {
		return err
	}
	cc.EmitEvent("Refunded", "investor", investor.String(), "token", inv.Token.String(), "native", inv.Native.String(), "issued", inv.Issued.String())
	return nil
}
