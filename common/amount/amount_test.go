package amount

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	b := COIN.MulC(10000)
	assert.Equal(t, "0.001", a.String())
	assert.Equal(t, "10000", b.String())
	assert.Equal(t, "10000.001", a.Add(b).String())
	assert.Equal(t, "-9999.999", a.Sub(b).String())
	assert.Equal(t, "0.0000001", a.DivC(10000).String())
	assert.Equal(t, "90", a.MulC(90000).String())

	c, err := ParseAmount("10000.00121454")
	require.NoError(t, err)
	assert.Equal(t, "10000.00121454", c.String())
}

func TestNewAmount(t *testing.T) {
	assert.Equal(t, "1000", NewAmount(0, 1000).Int.String())
	assert.Equal(t, "1000000000000000000", NewAmount(1, 0).Int.String())
	assert.Equal(t, "1500000000000000000", NewAmount(1, 500000000000000000).Int.String())
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "abc", "1.2.3", "-1", "1.", "0.1234567890123456789"} {
		_, err := ParseAmount(s)
		assert.ErrorIs(t, err, ErrInvalidAmountFormat, s)
	}
}

func TestParseAmountLargeInteger(t *testing.T) {
	am, err := ParseAmount("100000000000000000000")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("100000000000000000000000000000000000000", 10)
	assert.Equal(t, 0, am.Cmp(want))
}

func TestMulDivFloors(t *testing.T) {
	one := NewAmount(1, 0)
	assert.Equal(t, "3571428571428571428", one.MulDiv(big.NewInt(25), big.NewInt(7)).Int.String())
	assert.Equal(t, "5555555555555555555", one.MulDiv(big.NewInt(50), big.NewInt(9)).Int.String())
	assert.Equal(t, "1000", NewAmount(0, 1000).MulDiv(big.NewInt(1), big.NewInt(1)).Int.String())
}

func TestJSONRoundTrip(t *testing.T) {
	am := MustParseAmount("3.5")
	bs, err := am.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"3.5"`, string(bs))

	var back Amount
	require.NoError(t, back.UnmarshalJSON(bs))
	assert.True(t, back.Equal(am))
}
