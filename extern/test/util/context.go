package util

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/core/backend"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/core/types"

	_ "github.com/meverselabs/presale/core/backend/memory_driver"
)

// NativeSupply is the main token amount every test account starts with
var NativeSupply = amount.NewAmount(1000000, 0)

type TestContext struct {
	Cn        *chain.Chain
	Clock     *clockwork.FakeClock
	MainToken common.Address
}

// NewTestContext returns a chain on the memory backend whose genesis holds the main token
func NewTestContext() *TestContext {
	db, err := backend.Create("memory", "")
	if err != nil {
		panic(err)
	}
	st, err := chain.NewStore(db, ChainID)
	if err != nil {
		panic(err)
	}
	tc := &TestContext{
		Clock: clockwork.NewFakeClock(),
	}
	tc.Cn = chain.NewChain(st, tc.Clock)
	if err := tc.Cn.Init(func(ctx *types.Context) error {
		tc.MainToken, err = InitMainToken(ctx, Admin)
		return err
	}); err != nil {
		panic(err)
	}
	return tc
}

// InitMainToken deploys the native token at genesis and funds the admin and the users
func InitMainToken(ctx *types.Context, adminAddress common.Address) (common.Address, error) {
	supply := map[common.Address]*amount.Amount{
		adminAddress: NativeSupply.Clone(),
	}
	for _, u := range Users {
		supply[u] = NativeSupply.Clone()
	}
	arg := &token.TokenContractConstruction{
		Name:             "Test",
		Symbol:           "TEST",
		InitialSupplyMap: supply,
	}
	bs, _, err := bin.WriterToBytes(arg)
	if err != nil {
		return common.ZeroAddr, err
	}
	cont, err := ctx.DeployContract(adminAddress, ClassMap["Token"], bs)
	if err != nil {
		return common.ZeroAddr, err
	}
	ctx.SetMainToken(cont.Address())
	return cont.Address(), nil
}

// Sleep advances the clock of the chain
func (tc *TestContext) Sleep(seconds uint64) {
	tc.Clock.Advance(time.Duration(seconds) * time.Second)
}
