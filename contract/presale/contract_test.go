package presale_test

import (
	"errors"
	"testing"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/contract/presale"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/contract/whitelist"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/extern/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presaleFixture struct {
	tc      *util.TestContext
	nist    common.Address
	lambo   common.Address
	presale common.Address
}

// newFixture deploys the sale token NIST, the pay token Lambo and a presale holding escrow NIST
func newFixture(t *testing.T, escrow string, cfg *presale.PresaleContractConstruction) *presaleFixture {
	tc := util.NewTestContext()
	f := &presaleFixture{
		tc:    tc,
		nist:  tc.MakeToken("NIST", "NIST", "100000000"),
		lambo: tc.MakeToken("Lambo", "LAMBO", "100000000"),
	}
	if cfg == nil {
		cfg = &presale.PresaleContractConstruction{}
	}
	cfg.SaleToken = f.nist
	cfg.PayToken = f.lambo
	f.presale = tc.DeployContract(&presale.PresaleContract{}, cfg)
	tc.MustSendTx(util.Admin, f.nist, "Transfer", f.presale, amount.MustParseAmount(escrow))
	for _, u := range util.Users {
		tc.MustSendTx(util.Admin, f.lambo, "Transfer", u, amount.NewAmount(10000, 0))
	}
	return f
}

func (f *presaleFixture) phase(t *testing.T) presale.Phase {
	return f.tc.MustCall(util.Admin, f.presale, "CurrentPhase")[0].(presale.Phase)
}

func (f *presaleFixture) invested(t *testing.T, addr common.Address) *amount.Amount {
	return f.tc.MustCall(addr, f.presale, "GetInvestedAmount", addr)[0].(*amount.Amount)
}

func (f *presaleFixture) whitelist(addrs ...common.Address) {
	f.tc.MustSendTx(util.Admin, f.presale, "AddWhitelistAddresses", addrs)
}

// investToken approves and invests am pay tokens as from
func (f *presaleFixture) investToken(from common.Address, am *amount.Amount) (*amount.Amount, error) {
	f.tc.MustSendTx(from, f.lambo, "Approve", f.presale, am)
	is, err := f.tc.SendTx(from, f.presale, "InvestWithToken", am)
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

func (f *presaleFixture) investNative(from common.Address, am *amount.Amount) (*amount.Amount, error) {
	is, err := f.tc.SendTxWithValue(from, f.presale, am, "")
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

func TestCalibratedPayouts(t *testing.T) {
	f := newFixture(t, "1000000", nil)
	std, dev := util.Users[0], util.Users[1]
	f.whitelist(std, dev)
	f.tc.MustSendTx(util.Admin, f.presale, "AddDevAddresses", []common.Address{dev})

	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	require.Equal(t, presale.Phase1Active, f.phase(t))
	require.Equal(t, presale.AssetSaleToken, f.tc.MustCall(util.Admin, f.presale, "AcceptedAsset")[0])

	payout, err := f.investToken(std, amount.NewAmount(0, 1000))
	require.NoError(t, err)
	require.Equal(t, "1000", payout.Int.String())
	require.Equal(t, "1000", f.tc.BalanceOf(f.nist, std).Int.String())

	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	require.Equal(t, presale.AssetNativeCurrency, f.tc.MustCall(util.Admin, f.presale, "AcceptedAsset")[0])

	payout, err = f.investNative(std, amount.NewAmount(1, 0))
	require.NoError(t, err)
	require.Equal(t, "3571428571428571428", payout.Int.String())

	payout, err = f.investNative(dev, amount.NewAmount(1, 0))
	require.NoError(t, err)
	require.Equal(t, "5555555555555555555", payout.Int.String())
	require.Equal(t, "5555555555555555555", f.tc.BalanceOf(f.nist, dev).Int.String())

	quote := f.tc.MustCall(util.Admin, f.presale, "Quote", dev, amount.NewAmount(1, 0), presale.Phase2Active)[0].(*amount.Amount)
	require.Equal(t, "5555555555555555555", quote.Int.String())

	require.Equal(t, amount.NewAmount(1, 1000).String(), f.invested(t, std).String())
	require.Equal(t, []common.Address{std, dev}, f.tc.MustCall(util.Admin, f.presale, "InvestorList")[0])
}

func TestInactiveRejectsContributions(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]
	f.whitelist(user)

	_, err := f.investToken(user, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrPresaleNotActive), "%+v", err)

	_, err = f.investNative(user, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrPresaleNotActive), "%+v", err)
	require.True(t, f.invested(t, user).IsZero())
}

func TestAssetMismatch(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]
	f.whitelist(user)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPhase1")

	nativeBefore := f.tc.NativeBalance(user)
	_, err := f.investNative(user, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrPresaleNotActiveForAsset), "%+v", err)
	require.Contains(t, err.Error(), "only accepting token contributions")
	require.Equal(t, nativeBefore.String(), f.tc.NativeBalance(user).String())

	f.tc.MustSendTx(util.Admin, f.presale, "StartPhase2")
	_, err = f.investToken(user, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrPresaleNotActiveForAsset), "%+v", err)
	require.Contains(t, err.Error(), "only accepting native contributions")
	require.True(t, f.invested(t, user).IsZero())
}

func TestFailedContributionChangesNothing(t *testing.T) {
	f := newFixture(t, "10", nil)
	user, stranger := util.Users[0], util.Users[1]
	f.whitelist(user)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")

	lamboBefore := f.tc.BalanceOf(f.lambo, stranger)
	_, err := f.investToken(stranger, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrNotWhitelisted), "%+v", err)
	assert.Equal(t, lamboBefore.String(), f.tc.BalanceOf(f.lambo, stranger).String())
	assert.True(t, f.invested(t, stranger).IsZero())

	lamboBefore = f.tc.BalanceOf(f.lambo, user)
	_, err = f.investToken(user, amount.NewAmount(0, 0))
	require.True(t, errors.Is(err, presale.ErrZeroAmount), "%+v", err)
	assert.Equal(t, lamboBefore.String(), f.tc.BalanceOf(f.lambo, user).String())
	assert.True(t, f.tc.BalanceOf(f.lambo, f.presale).IsZero())
	assert.Equal(t, "10", f.tc.BalanceOf(f.nist, f.presale).String())
	assert.True(t, f.invested(t, user).IsZero())

	// the pay tokens are pulled before the escrow runs out, the whole call must unwind
	lamboBefore = f.tc.BalanceOf(f.lambo, user)
	receipt, err := f.tc.SendTxReceipt(user, f.lambo, nil, "Approve", f.presale, amount.NewAmount(11, 0))
	require.NoError(t, err)
	require.True(t, receipt.Status)
	receipt, err = f.tc.SendTxReceipt(user, f.presale, nil, "InvestWithToken", amount.NewAmount(11, 0))
	require.True(t, errors.Is(err, presale.ErrEscrowExhausted), "%+v", err)
	require.False(t, receipt.Status)
	require.Empty(t, receipt.Events)
	require.NotEmpty(t, receipt.Error)

	assert.Equal(t, lamboBefore.String(), f.tc.BalanceOf(f.lambo, user).String())
	assert.True(t, f.tc.BalanceOf(f.lambo, f.presale).IsZero())
	assert.Equal(t, "10", f.tc.BalanceOf(f.nist, f.presale).String())
	assert.True(t, f.invested(t, user).IsZero())
	assert.Empty(t, f.tc.MustCall(util.Admin, f.presale, "InvestorList")[0])

	f.tc.MustSendTx(user, f.lambo, "Approve", f.presale, amount.NewAmount(1, 0))
	_, err = f.tc.SendTx(user, f.presale, "InvestWithToken", amount.NewAmount(1, 0))
	require.NoError(t, err)
	_, err = f.tc.SendTx(user, f.presale, "InvestWithToken", amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, token.ErrInsufficientAllowance), "%+v", err)
	assert.Equal(t, "1", f.invested(t, user).String())
}

func TestPhaseMonotonicity(t *testing.T) {
	f := newFixture(t, "1000", nil)

	steps := []struct {
		method string
		from   common.Address
		err    error
		phase  presale.Phase
	}{
		{"StartPresalePhase2", util.Admin, presale.ErrInvalidPhaseTransition, presale.Inactive},
		{"EndSale", util.Admin, presale.ErrInvalidPhaseTransition, presale.Inactive},
		{"StartPresalePhase1", util.Users[0], presale.ErrUnauthorized, presale.Inactive},
		{"StartPresalePhase1", util.Admin, nil, presale.Phase1Active},
		{"StartPresalePhase1", util.Admin, presale.ErrInvalidPhaseTransition, presale.Phase1Active},
		{"EndSale", util.Admin, presale.ErrInvalidPhaseTransition, presale.Phase1Active},
		{"StartPresalePhase2", util.Admin, nil, presale.Phase2Active},
		{"StartPresalePhase1", util.Admin, presale.ErrInvalidPhaseTransition, presale.Phase2Active},
		{"EndSale", util.Users[0], presale.ErrUnauthorized, presale.Phase2Active},
		{"EndSale", util.Admin, nil, presale.Ended},
		{"StartPresalePhase2", util.Admin, presale.ErrInvalidPhaseTransition, presale.Ended},
		{"EndSale", util.Admin, presale.ErrInvalidPhaseTransition, presale.Ended},
	}
	last := presale.Inactive
	for i, s := range steps {
		_, err := f.tc.SendTx(s.from, f.presale, s.method)
		if s.err == nil {
			require.NoError(t, err, "step %v", i)
		} else {
			require.True(t, errors.Is(err, s.err), "step %v: %+v", i, err)
		}
		p := f.phase(t)
		require.Equal(t, s.phase, p, "step %v", i)
		require.GreaterOrEqual(t, uint8(p), uint8(last))
		last = p
	}

	_, err := f.tc.SendTx(util.Admin, f.presale, "AddWhitelistAddresses", []common.Address{util.Users[0]})
	require.True(t, errors.Is(err, presale.ErrPresaleEnded))
	_, err = f.tc.SendTx(util.Admin, f.presale, "AddDevAddresses", []common.Address{util.Users[1]})
	require.True(t, errors.Is(err, presale.ErrPresaleEnded), "%+v", err)
	require.Equal(t, false, f.tc.MustCall(util.Admin, f.presale, "IsDevAddress", util.Users[1])[0])
}

func TestValueWithTokenMethodRejected(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]
	f.whitelist(user)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	f.tc.MustSendTx(user, f.lambo, "Approve", f.presale, amount.NewAmount(1, 0))

	nativeBefore := f.tc.NativeBalance(user)
	lamboBefore := f.tc.BalanceOf(f.lambo, user)
	_, err := f.tc.SendTxWithValue(user, f.presale, amount.NewAmount(7, 0), "InvestWithToken", amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, chain.ErrNotPayable), "%+v", err)
	_, err = f.tc.SendTxWithValue(user, f.presale, amount.NewAmount(2, 0), "IsWhitelisted", user)
	require.True(t, errors.Is(err, chain.ErrNotPayable), "%+v", err)

	assert.Equal(t, nativeBefore.String(), f.tc.NativeBalance(user).String())
	assert.Equal(t, lamboBefore.String(), f.tc.BalanceOf(f.lambo, user).String())
	assert.True(t, f.tc.NativeBalance(f.presale).IsZero())
	assert.True(t, f.invested(t, user).IsZero())

	ownerNative := f.tc.NativeBalance(util.Admin)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	f.tc.MustSendTx(util.Admin, f.presale, "EndPresale")
	assert.Equal(t, ownerNative.String(), f.tc.NativeBalance(util.Admin).String())
}

func TestOwnerOnly(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]

	_, err := f.tc.SendTx(user, f.presale, "AddWhitelistAddresses", []common.Address{user})
	require.True(t, errors.Is(err, presale.ErrUnauthorized))
	_, err = f.tc.SendTx(user, f.presale, "AddDevAddresses", []common.Address{user})
	require.True(t, errors.Is(err, presale.ErrUnauthorized))
	_, err = f.tc.SendTx(user, f.presale, "EndPresale")
	require.True(t, errors.Is(err, presale.ErrUnauthorized))

	require.Equal(t, util.Admin, f.tc.MustCall(user, f.presale, "Owner")[0])
	require.Equal(t, false, f.tc.MustCall(user, f.presale, "IsWhitelisted", user)[0])
	require.Equal(t, false, f.tc.MustCall(user, f.presale, "IsDevAddress", user)[0])
}

func TestWhitelistIdempotence(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]

	f.whitelist(user)
	f.whitelist(user, user)
	require.Equal(t, true, f.tc.MustCall(util.Admin, f.presale, "IsWhitelisted", user)[0])

	f.tc.MustSendTx(util.Admin, f.presale, "AddDevAddresses", []common.Address{util.Users[1]})
	require.Equal(t, true, f.tc.MustCall(util.Admin, f.presale, "IsDevAddress", util.Users[1])[0])
	require.Equal(t, false, f.tc.MustCall(util.Admin, f.presale, "IsWhitelisted", util.Users[1])[0])
}

func TestEndPresaleSettles(t *testing.T) {
	f := newFixture(t, "1000", nil)
	a, b := util.Users[0], util.Users[1]
	f.whitelist(a, b)

	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	_, err := f.investToken(a, amount.NewAmount(100, 0))
	require.NoError(t, err)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	_, err = f.investNative(a, amount.NewAmount(1, 0))
	require.NoError(t, err)
	_, err = f.investNative(b, amount.MustParseAmount("2.5"))
	require.NoError(t, err)

	issued := f.tc.MustCall(util.Admin, f.presale, "TotalIssued")[0].(*amount.Amount)
	require.False(t, amount.MustParseAmount("1000").Less(issued))
	require.Equal(t, amount.MustParseAmount("1000").Sub(issued).String(), f.tc.BalanceOf(f.nist, f.presale).String())

	ownerNative := f.tc.NativeBalance(util.Admin)
	ownerLambo := f.tc.BalanceOf(f.lambo, util.Admin)
	f.tc.MustSendTx(util.Admin, f.presale, "EndPresale")

	require.Equal(t, presale.Ended, f.phase(t))
	require.Equal(t, true, f.tc.MustCall(util.Admin, f.presale, "Settled")[0])
	assert.Equal(t, ownerNative.Add(amount.MustParseAmount("3.5")).String(), f.tc.NativeBalance(util.Admin).String())
	assert.Equal(t, ownerLambo.Add(amount.NewAmount(100, 0)).String(), f.tc.BalanceOf(f.lambo, util.Admin).String())
	assert.True(t, f.tc.BalanceOf(f.nist, f.presale).IsZero())
	assert.True(t, f.tc.NativeBalance(f.presale).IsZero())
	assert.Equal(t, amount.MustParseAmount("1000").Sub(issued).String(), f.tc.BalanceOf(f.nist, f.nist).String())

	_, err = f.tc.SendTx(util.Admin, f.presale, "EndPresale")
	require.True(t, errors.Is(err, presale.ErrAlreadySettled))

	_, err = f.investNative(a, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrPresaleNotActive))
}

func TestEndFromPhase1(t *testing.T) {
	f := newFixture(t, "1000", nil)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	_, err := f.tc.SendTx(util.Admin, f.presale, "EndPresale")
	require.True(t, errors.Is(err, presale.ErrInvalidPhaseTransition), "%+v", err)
	require.Equal(t, presale.Phase1Active, f.phase(t))
	require.Equal(t, "1000", f.tc.BalanceOf(f.nist, f.presale).String())

	g := newFixture(t, "1000", &presale.PresaleContractConstruction{AllowEndFromPhase1: true})
	g.tc.MustSendTx(util.Admin, g.presale, "StartPresalePhase1")
	g.tc.MustSendTx(util.Admin, g.presale, "EndPresale")
	require.Equal(t, presale.Ended, g.phase(t))
	require.True(t, g.tc.BalanceOf(g.nist, g.presale).IsZero())
}

func TestEscrowBound(t *testing.T) {
	f := newFixture(t, "10", nil)
	std, dev := util.Users[0], util.Users[1]
	f.whitelist(std, dev)
	f.tc.MustSendTx(util.Admin, f.presale, "AddDevAddresses", []common.Address{dev})
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	require.Equal(t, "10", f.tc.MustCall(util.Admin, f.presale, "InitialEscrow")[0].(*amount.Amount).String())

	_, err := f.investNative(std, amount.NewAmount(3, 0))
	require.True(t, errors.Is(err, presale.ErrEscrowExhausted), "%+v", err)

	_, err = f.investNative(std, amount.NewAmount(2, 0))
	require.NoError(t, err)

	// tokens added after the start do not raise the standard bound
	f.tc.MustSendTx(util.Admin, f.nist, "Transfer", f.presale, amount.NewAmount(10, 0))
	_, err = f.investNative(std, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrEscrowExhausted), "%+v", err)

	payout, err := f.investNative(dev, amount.NewAmount(2, 0))
	require.NoError(t, err)
	require.Equal(t, "11111111111111111111", payout.Int.String())

	_, err = f.investNative(dev, amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, presale.ErrEscrowExhausted), "%+v", err)
}

func TestInvestmentLimit(t *testing.T) {
	f := newFixture(t, "1000", &presale.PresaleContractConstruction{InvestmentLimit: amount.NewAmount(5, 0)})
	user := util.Users[0]
	f.whitelist(user)
	require.Equal(t, "5", f.tc.MustCall(user, f.presale, "GetPresaleInvestmentLimit")[0].(*amount.Amount).String())

	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	_, err := f.investToken(user, amount.NewAmount(3, 0))
	require.NoError(t, err)
	_, err = f.investToken(user, amount.NewAmount(3, 0))
	require.True(t, errors.Is(err, presale.ErrOverInvestmentLimit), "%+v", err)
	_, err = f.investToken(user, amount.NewAmount(2, 0))
	require.NoError(t, err)

	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	_, err = f.investNative(user, amount.NewAmount(5, 0))
	require.NoError(t, err)
	_, err = f.investNative(user, amount.NewAmount(0, 1))
	require.True(t, errors.Is(err, presale.ErrOverInvestmentLimit), "%+v", err)
	require.Equal(t, "10", f.invested(t, user).String())
}

func TestRefund(t *testing.T) {
	f := newFixture(t, "1000", nil)
	user := util.Users[0]
	f.whitelist(user)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	_, err := f.investToken(user, amount.NewAmount(4, 0))
	require.NoError(t, err)
	_, err = f.tc.SendTx(user, f.presale, "Refund")
	require.True(t, errors.Is(err, presale.ErrRefundDisabled))

	g := newFixture(t, "1000", &presale.PresaleContractConstruction{RefundEnabled: true})
	g.whitelist(user)
	lamboBefore := g.tc.BalanceOf(g.lambo, user)
	nativeBefore := g.tc.NativeBalance(user)

	g.tc.MustSendTx(util.Admin, g.presale, "StartPresalePhase1")
	_, err = g.investToken(user, amount.NewAmount(4, 0))
	require.NoError(t, err)
	g.tc.MustSendTx(util.Admin, g.presale, "StartPresalePhase2")
	_, err = g.investNative(user, amount.NewAmount(1, 0))
	require.NoError(t, err)

	inv := g.tc.MustCall(user, g.presale, "GetInvestment", user)[0].(*presale.Investment)
	issued := g.tc.BalanceOf(g.nist, user)
	require.Equal(t, inv.Issued.String(), issued.String())

	_, err = g.tc.SendTx(user, g.presale, "Refund")
	require.True(t, errors.Is(err, token.ErrInsufficientAllowance), "%+v", err)

	g.tc.MustSendTx(user, g.nist, "Approve", g.presale, issued)
	g.tc.MustSendTx(user, g.presale, "Refund")

	assert.Equal(t, lamboBefore.String(), g.tc.BalanceOf(g.lambo, user).String())
	assert.Equal(t, nativeBefore.String(), g.tc.NativeBalance(user).String())
	assert.True(t, g.tc.BalanceOf(g.nist, user).IsZero())
	assert.Equal(t, "1000", g.tc.BalanceOf(g.nist, g.presale).String())
	assert.True(t, g.invested(t, user).IsZero())
	assert.True(t, g.tc.MustCall(util.Admin, g.presale, "TotalIssued")[0].(*amount.Amount).IsZero())

	_, err = g.tc.SendTx(user, g.presale, "Refund")
	require.True(t, errors.Is(err, presale.ErrNothingToRefund), "%+v", err)
}

func TestRefundAfterSettlement(t *testing.T) {
	f := newFixture(t, "1000", &presale.PresaleContractConstruction{RefundEnabled: true})
	user := util.Users[0]
	f.whitelist(user)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")
	issued, err := f.investToken(user, amount.NewAmount(4, 0))
	require.NoError(t, err)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase2")
	f.tc.MustSendTx(util.Admin, f.presale, "EndPresale")

	f.tc.MustSendTx(user, f.nist, "Approve", f.presale, issued)
	lamboBefore := f.tc.BalanceOf(f.lambo, user)
	_, err = f.tc.SendTx(user, f.presale, "Refund")
	require.True(t, errors.Is(err, presale.ErrAlreadySettled), "%+v", err)

	assert.Equal(t, lamboBefore.String(), f.tc.BalanceOf(f.lambo, user).String())
	assert.Equal(t, issued.String(), f.tc.BalanceOf(f.nist, user).String())
	assert.Equal(t, "4", f.invested(t, user).String())
}

func TestDelegatedWhitelist(t *testing.T) {
	tc := util.NewTestContext()
	wl := tc.DeployContract(&whitelist.WhiteListContract{}, &whitelist.WhiteListContractConstruction{})
	groupID := tc.MustSendTx(util.Admin, wl, "AddGroup", "presale")[0].(hash.Hash256)
	tc.MustSendTx(util.Admin, wl, "AddAddresses", groupID, []common.Address{util.Users[0]})

	nist := tc.MakeToken("NIST", "NIST", "1000")
	lambo := tc.MakeToken("Lambo", "LAMBO", "1000")
	ps := tc.DeployContract(&presale.PresaleContract{}, &presale.PresaleContractConstruction{
		SaleToken:        nist,
		PayToken:         lambo,
		WhiteListAddress: wl,
		WhiteListGroupId: groupID,
	})
	tc.MustSendTx(util.Admin, nist, "Transfer", ps, amount.NewAmount(100, 0))

	require.Equal(t, true, tc.MustCall(util.Admin, ps, "IsWhitelisted", util.Users[0])[0])
	require.Equal(t, false, tc.MustCall(util.Admin, ps, "IsWhitelisted", util.Users[1])[0])

	tc.MustSendTx(util.Admin, ps, "StartPresalePhase1")
	tc.MustSendTx(util.Admin, ps, "StartPresalePhase2")
	_, err := tc.SendTxWithValue(util.Users[0], ps, amount.NewAmount(1, 0), "")
	require.NoError(t, err)
	_, err = tc.SendTxWithValue(util.Users[1], ps, amount.NewAmount(1, 0), "")
	require.True(t, errors.Is(err, presale.ErrNotWhitelisted), "%+v", err)

	tc.MustSendTx(util.Admin, wl, "RemoveAddresses", groupID, []common.Address{util.Users[0]})
	_, err = tc.SendTxWithValue(util.Users[0], ps, amount.NewAmount(1, 0), "")
	require.True(t, errors.Is(err, presale.ErrNotWhitelisted), "%+v", err)
}

func TestStatus(t *testing.T) {
	f := newFixture(t, "1000", nil)
	f.tc.MustSendTx(util.Admin, f.presale, "StartPresalePhase1")

	st := f.tc.MustCall(util.Admin, f.presale, "Status")[0].(*presale.Status)
	assert.Equal(t, "Phase1Active", st.Phase)
	assert.Equal(t, "token", st.AcceptedAsset)
	assert.Equal(t, "25/7", st.Phase2Rate)
	assert.Equal(t, "50/9", st.Phase2DevRate)
	assert.Equal(t, "1", st.Phase1Rate)
	assert.Equal(t, "1000", st.InitialEscrow.String())
	assert.False(t, st.Settled)
}
