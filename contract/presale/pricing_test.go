package presale

import (
	"errors"
	"testing"

	"github.com/meverselabs/presale/common/amount"
	"github.com/stretchr/testify/require"
)

func TestConvertCalibration(t *testing.T) {
	one := amount.NewAmount(1, 0)

	payout, err := Convert(one, DefaultPhase2Rate, 18, 18)
	require.NoError(t, err)
	require.Equal(t, "3571428571428571428", payout.Int.String())

	payout, err = Convert(one, DefaultPhase2DevRate, 18, 18)
	require.NoError(t, err)
	require.Equal(t, "5555555555555555555", payout.Int.String())

	payout, err = Convert(amount.NewAmount(0, 1000), DefaultPhase1Rate, 18, 18)
	require.NoError(t, err)
	require.Equal(t, "1000", payout.Int.String())
}

func TestConvertScalesDecimals(t *testing.T) {
	// 1.5 units of a 6 decimal token into an 18 decimal sale token at 2/1
	payout, err := Convert(amount.NewAmount(0, 1500000), Rate{Num: 2, Den: 1}, 18, 6)
	require.NoError(t, err)
	require.Equal(t, "3", payout.String())

	payout, err = Convert(amount.NewAmount(0, 1), Rate{Num: 1, Den: 3}, 18, 18)
	require.NoError(t, err)
	require.True(t, payout.IsZero())
}

func TestConvertRejects(t *testing.T) {
	_, err := Convert(amount.NewAmount(0, 0), DefaultPhase1Rate, 18, 18)
	require.True(t, errors.Is(err, ErrZeroAmount))

	_, err = Convert(nil, DefaultPhase1Rate, 18, 18)
	require.True(t, errors.Is(err, ErrZeroAmount))

	_, err = Convert(amount.NewAmount(1, 0), Rate{Num: 1}, 18, 18)
	require.True(t, errors.Is(err, ErrInvalidRate))
}

func TestRateFor(t *testing.T) {
	cfg := &PresaleContractConstruction{
		SaleToken: [20]byte{1},
		PayToken:  [20]byte{2},
	}
	require.NoError(t, cfg.applyDefaults())
	require.Equal(t, DefaultPhase1Rate, cfg.Phase1DevRate)

	r, dec, err := rateFor(cfg, Phase2Active, true)
	require.NoError(t, err)
	require.Equal(t, DefaultPhase2DevRate, r)
	require.Equal(t, uint8(18), dec)

	_, _, err = rateFor(cfg, Inactive, false)
	require.True(t, errors.Is(err, ErrPresaleNotActive))
	_, _, err = rateFor(cfg, Ended, true)
	require.True(t, errors.Is(err, ErrPresaleNotActive))
}

func TestCanTransit(t *testing.T) {
	cfg := &PresaleContractConstruction{}
	require.True(t, canTransit(cfg, Inactive, Phase1Active))
	require.True(t, canTransit(cfg, Phase1Active, Phase2Active))
	require.True(t, canTransit(cfg, Phase2Active, Ended))
	require.False(t, canTransit(cfg, Inactive, Phase2Active))
	require.False(t, canTransit(cfg, Inactive, Ended))
	require.False(t, canTransit(cfg, Phase1Active, Ended))
	require.False(t, canTransit(cfg, Phase2Active, Phase1Active))
	require.False(t, canTransit(cfg, Ended, Ended))

	cfg.AllowEndFromPhase1 = true
	require.True(t, canTransit(cfg, Phase1Active, Ended))
	require.False(t, canTransit(cfg, Inactive, Ended))
}

func TestCheckAccepts(t *testing.T) {
	require.NoError(t, checkAccepts(Phase1Active, AssetSaleToken))
	require.NoError(t, checkAccepts(Phase2Active, AssetNativeCurrency))

	err := checkAccepts(Phase1Active, AssetNativeCurrency)
	require.True(t, errors.Is(err, ErrPresaleNotActiveForAsset))
	require.Contains(t, err.Error(), "only accepting token contributions")

	err = checkAccepts(Phase2Active, AssetSaleToken)
	require.True(t, errors.Is(err, ErrPresaleNotActiveForAsset))
	require.Contains(t, err.Error(), "only accepting native contributions")

	for _, p := range []Phase{Inactive, Ended} {
		err = checkAccepts(p, AssetSaleToken)
		require.True(t, errors.Is(err, ErrPresaleNotActive))
		require.False(t, errors.Is(err, ErrPresaleNotActiveForAsset))
	}
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("25/7")
	require.NoError(t, err)
	require.Equal(t, Rate{Num: 25, Den: 7}, r)

	r, err = ParseRate(" 3 ")
	require.NoError(t, err)
	require.Equal(t, Rate{Num: 3, Den: 1}, r)

	for _, s := range []string{"", "a/2", "1/0", "0/5", "1/-2"} {
		_, err := ParseRate(s)
		require.True(t, errors.Is(err, ErrInvalidRate), s)
	}
}
