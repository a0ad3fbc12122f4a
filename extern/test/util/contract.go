package util

import (
	"bytes"
	"io"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/core/types"
)

// DeployContract deploys the contract owned by the admin
func (tc *TestContext) DeployContract(contType types.Contract, contArgs io.WriterTo) common.Address {
	return tc.DeployContractAs(Admin, contType, contArgs)
}

func (tc *TestContext) DeployContractAs(owner common.Address, contType types.Contract, contArgs io.WriterTo) common.Address {
	classID, _ := types.ClassIDOf(contType)

	bf := &bytes.Buffer{}
	if _, err := contArgs.WriteTo(bf); err != nil {
		panic(err)
	}
	addr, err := tc.Cn.DeployContract(owner, classID, bf.Bytes())
	if err != nil {
		panic(err)
	}
	return addr
}

// MakeToken deploys a token whose whole supply belongs to the admin
func (tc *TestContext) MakeToken(name string, symbol string, amt string) common.Address {
	tokenContArgs := &token.TokenContractConstruction{
		Name:   name,
		Symbol: symbol,
		InitialSupplyMap: map[common.Address]*amount.Amount{
			Admin: amount.MustParseAmount(amt),
		},
	}
	return tc.DeployContract(&token.TokenContract{}, tokenContArgs)
}

func (tc *TestContext) BalanceOf(tokenAddr common.Address, addr common.Address) *amount.Amount {
	is := tc.MustCall(addr, tokenAddr, "BalanceOf", addr)
	return is[0].(*amount.Amount)
}

func (tc *TestContext) NativeBalance(addr common.Address) *amount.Amount {
	return tc.BalanceOf(tc.MainToken, addr)
}
