package presale

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// TokenLedger is the part of a fungible token the presale relies on
// a failed call fails the whole enclosing operation
type TokenLedger interface {
	BalanceOf(addr common.Address) (*amount.Amount, error)
	Transfer(to common.Address, am *amount.Amount) error
	TransferFrom(from common.Address, to common.Address, am *amount.Amount) error
}

// execTokenLedger calls the token contract at token as the running contract
type execTokenLedger struct {
	cc    *types.ContractContext
	token common.Address
}

func tokenLedgerOf(cc *types.ContractContext, token common.Address) TokenLedger {
	return &execTokenLedger{
		cc:    cc,
		token: token,
	}
}

func (l *execTokenLedger) BalanceOf(addr common.Address) (*amount.Amount, error) {
	is, err := l.cc.Exec(l.cc, l.token, "BalanceOf", []interface{}{addr})
	if err != nil {
		return nil, err
	}
	if len(is) == 0 {
		return nil, errors.Wrapf(ErrTokenCallFailed, "balanceOf of %v", l.token.String())
	}
	bal, ok := is[0].(*amount.Amount)
	if !ok {
		return nil, errors.Wrapf(ErrTokenCallFailed, "balanceOf of %v returns %T", l.token.String(), is[0])
	}
	return bal, nil
}

func (l *execTokenLedger) Transfer(to common.Address, am *amount.Amount) error {
	is, err := l.cc.Exec(l.cc, l.token, "Transfer", []interface{}{to, am})
	if err != nil {
		return err
	}
	return checkSucceeded(l.token, "transfer", is)
}

func (l *execTokenLedger) TransferFrom(from common.Address, to common.Address, am *amount.Amount) error {
	is, err := l.cc.Exec(l.cc, l.token, "TransferFrom", []interface{}{from, to, am})
	if err != nil {
		return err
	}
	return checkSucceeded(l.token, "transferFrom", is)
}

// checkSucceeded accepts an empty result or a true flag
func checkSucceeded(token common.Address, method string, is []interface{}) error {
	if len(is) == 0 {
		return nil
	}
	if ok, isBool := is[0].(bool); isBool && !ok {
		return errors.Wrapf(ErrTokenCallFailed, "%v of %v", method, token.String())
	}
	return nil
}
