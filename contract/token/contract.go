package token

import (
	"bytes"
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// TokenContract is an ERC20 style fungible token, the main token of a chain is one as well
type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	decimals := data.Decimals
	if decimals == 0 {
		decimals = amount.FractionalCount
	}
	cc.SetContractData([]byte{tagTokenDecimals}, []byte{decimals})
	for k, v := range data.InitialSupplyMap {
		if err := cont.addBalance(cc, k, v); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Wrapf(ErrInvalidAmount, "add %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)
	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Add(am).Bytes())

	total := cont.TotalSupply(cc).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Wrapf(ErrInvalidAmount, "sub %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Wrapf(ErrInsufficientBalance, "%v has %v want %v", addr.String(), bal.Int.String(), am.Int.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}

	total := cont.TotalSupply(cc).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) move(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "transfer to")
	}
	if Amount.IsMinus() {
		return errors.Wrapf(ErrInvalidAmount, "transfer %v", Amount.String())
	}
	if Amount.IsZero() {
		return nil
	}
	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) checkMinter(cc *types.ContractContext) error {
	if cc.From() != cont.Master() && !cont.IsMinter(cc, cc.From()) {
		return errors.Wrap(ErrNotTokenMinter, cc.From().String())
	}
	return nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "transfer from")
	}
	return cont.move(cc, cc.From(), To, Amount)
}

// TransferFrom moves the amount of From on behalf of the caller, the caller spends its allowance
func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsZero() {
		return nil
	}
	balance := cont.BalanceOf(cc, From)
	if balance.Less(Amount) {
		return errors.Wrapf(ErrInsufficientBalance, "%v has %v want %v", From.String(), balance.Int.String(), Amount.Int.String())
	}
	spender := cc.From()
	allowed := cont.Allowance(cc, From, spender)
	if allowed.Less(Amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "%v allowed %v to spend %v want %v", From.String(), spender.String(), allowed.Int.String(), Amount.Int.String())
	}
	cont._approve(cc, From, spender, allowed.Sub(Amount))
	return cont.move(cc, From, To, Amount)
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "approve from")
	}
	if spender == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "approve to")
	}
	if Amount.IsMinus() {
		return errors.Wrapf(ErrInvalidAmount, "approve %v", Amount.String())
	}
	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	if Amount.IsZero() {
		cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), nil)
	} else {
		cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
	}
}

func (cont *TokenContract) Burn(cc *types.ContractContext, am *amount.Amount) error {
	return cont.subBalance(cc, cc.From(), am)
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if err := cont.checkMinter(cc); err != nil {
		return err
	}
	if To == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "mint to")
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) MintBatch(cc *types.ContractContext, Tos []common.Address, Amounts []*amount.Amount) error {
	if err := cont.checkMinter(cc); err != nil {
		return err
	}
	if len(Tos) != len(Amounts) {
		return errors.Wrapf(ErrInvalidAmount, "%v receivers and %v amounts", len(Tos), len(Amounts))
	}
	for i, To := range Tos {
		if err := cont.addBalance(cc, To, Amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotTokenMaster)
	}
	isMinter := cont.IsMinter(cc, To)
	if Is {
		if isMinter {
			return errors.WithStack(ErrAlreadyTokenMinter)
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.WithStack(ErrNotTokenMinter)
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) Decimals(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagTokenDecimals})
	if len(bs) == 0 {
		return big.NewInt(amount.FractionalCount)
	}
	return big.NewInt(int64(bs[0]))
}

func (cont *TokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	bs := cc.AccountData(from, []byte{tagTokenAmount})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	bs := cc.AccountData(_owner, MakeAllowanceTokenKey(_spender))
	return amount.NewAmountFromBytes(bs)
}
