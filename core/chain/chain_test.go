package chain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/core/backend"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/core/types"
	"github.com/meverselabs/presale/extern/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/meverselabs/presale/core/backend/leveldb_driver"
	_ "github.com/meverselabs/presale/core/backend/memory_driver"
)

func TestExecuteStoresFailedReceipt(t *testing.T) {
	tc := util.NewTestContext()
	height := tc.Cn.Height()

	receipt, err := tc.SendTxReceipt(util.Users[0], tc.MainToken, nil, "Transfer", util.Users[1], util.NativeSupply.Add(amount.NewAmount(1, 0)))
	require.True(t, errors.Is(err, token.ErrInsufficientBalance), "%+v", err)
	require.False(t, receipt.Status)
	require.NotEmpty(t, receipt.Error)
	require.Equal(t, height+1, receipt.Height)
	require.Equal(t, height+1, tc.Cn.Height())

	stored, err := tc.Cn.Receipt(receipt.TxHash)
	require.NoError(t, err)
	require.False(t, stored.Status)
	require.Equal(t, receipt.Error, stored.Error)

	at, err := tc.Cn.Store().ReceiptAt(receipt.Height)
	require.NoError(t, err)
	require.Equal(t, receipt.TxHash, at.TxHash)

	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[0]).String())
	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[1]).String())
}

func TestReceiptLookup(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Lambo", "LAMBO", "10")

	receipt, err := tc.SendTxReceipt(util.Admin, tokenAddr, nil, "SetMinter", util.Users[0], true)
	require.NoError(t, err)
	require.True(t, receipt.Status)

	_, err = tc.Cn.Receipt(hash.Hash([]byte("missing")))
	require.True(t, errors.Is(err, chain.ErrNotExistReceipt))
}

func TestCallKeepsNoState(t *testing.T) {
	tc := util.NewTestContext()
	height := tc.Cn.Height()

	res, err := tc.Call(util.Users[0], tc.MainToken, "Transfer", util.Users[1], amount.NewAmount(5, 0))
	require.NoError(t, err)
	require.Equal(t, true, res[0])

	require.Equal(t, height, tc.Cn.Height())
	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[0]).String())
	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[1]).String())
}

func TestMethodToAccountFails(t *testing.T) {
	tc := util.NewTestContext()

	_, err := tc.SendTxWithValue(util.Admin, util.Users[0], amount.NewAmount(1, 0), "Receive")
	require.True(t, errors.Is(err, chain.ErrNotContract), "%+v", err)
	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[0]).String())

	_, err = tc.SendTx(util.Admin, tc.MainToken, "NoSuchMethod")
	require.True(t, errors.Is(err, types.ErrNotExistMethod), "%+v", err)
}

func TestValueRejectedByNonPayableMethod(t *testing.T) {
	tc := util.NewTestContext()
	height := tc.Cn.Height()

	receipt, err := tc.SendTxReceipt(util.Admin, tc.MainToken, amount.NewAmount(3, 0), "Transfer", util.Users[0], amount.NewAmount(1, 0))
	require.True(t, errors.Is(err, chain.ErrNotPayable), "%+v", err)
	require.False(t, receipt.Status)
	require.Equal(t, height+1, receipt.Height)

	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Admin).String())
	assert.Equal(t, util.NativeSupply.String(), tc.NativeBalance(util.Users[0]).String())
	assert.True(t, tc.NativeBalance(tc.MainToken).IsZero())
}

func TestTimestampsIncrease(t *testing.T) {
	tc := util.NewTestContext()

	tx := func() *types.Receipt {
		receipt, err := tc.Cn.Execute(&types.Transaction{
			From:   util.Admin,
			To:     tc.MainToken,
			Method: "Transfer",
			Args:   []interface{}{util.Users[0], amount.NewAmount(1, 0)},
		})
		require.NoError(t, err)
		return receipt
	}
	a := tx()
	b := tx()
	require.Greater(t, b.Timestamp, a.Timestamp)
	require.NotEqual(t, a.TxHash, b.TxHash)
}

func TestNotInitialized(t *testing.T) {
	db, err := backend.Create("memory", "")
	require.NoError(t, err)
	st, err := chain.NewStore(db, util.ChainID)
	require.NoError(t, err)
	cn := chain.NewChain(st, clockwork.NewFakeClock())

	_, err = cn.Execute(&types.Transaction{From: util.Admin, To: util.Users[0]})
	require.True(t, errors.Is(err, chain.ErrNotInitialized))

	require.NoError(t, cn.Init(func(ctx *types.Context) error { return nil }))
	require.True(t, errors.Is(cn.Init(func(ctx *types.Context) error { return nil }), chain.ErrAlreadyInitialized))

	cn.Close()
	_, err = cn.Execute(&types.Transaction{From: util.Admin, To: util.Users[0]})
	require.True(t, errors.Is(err, chain.ErrChainClosed))
}

func openChain(t *testing.T, path string) *chain.Chain {
	db, err := backend.Create("leveldb", path)
	require.NoError(t, err)
	st, err := chain.NewStore(db, util.ChainID)
	require.NoError(t, err)
	cn := chain.NewChain(st, clockwork.NewFakeClock())
	require.NoError(t, cn.Init(func(ctx *types.Context) error {
		_, err := util.InitMainToken(ctx, util.Admin)
		return err
	}))
	return cn
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain")

	cn := openChain(t, path)
	mainToken := *cn.MainToken()
	receipt, err := cn.Execute(&types.Transaction{
		From:   util.Admin,
		To:     mainToken,
		Method: "Transfer",
		Args:   []interface{}{util.Users[0], amount.NewAmount(7, 0)},
	})
	require.NoError(t, err)
	height := cn.Height()
	cn.Close()

	cn = openChain(t, path)
	defer cn.Close()
	require.Equal(t, height, cn.Height())
	require.Equal(t, mainToken, *cn.MainToken())

	res, err := cn.Call(util.Users[0], mainToken, "BalanceOf", []interface{}{util.Users[0]})
	require.NoError(t, err)
	require.Equal(t, util.NativeSupply.Add(amount.NewAmount(7, 0)).String(), res[0].(*amount.Amount).String())

	stored, err := cn.Receipt(receipt.TxHash)
	require.NoError(t, err)
	require.True(t, stored.Status)
	require.Equal(t, receipt.StateHash, stored.StateHash)
}

func TestGenesisMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain")
	openChain(t, path).Close()

	db, err := backend.Create("leveldb", path)
	require.NoError(t, err)
	st, err := chain.NewStore(db, util.ChainID)
	require.NoError(t, err)
	cn := chain.NewChain(st, clockwork.NewFakeClock())
	defer cn.Close()
	err = cn.Init(func(ctx *types.Context) error { return nil })
	require.True(t, errors.Is(err, chain.ErrInvalidGenesisHash))
}
