package whitelist_test

import (
	"errors"
	"testing"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/contract/whitelist"
	"github.com/meverselabs/presale/extern/test/util"
	"github.com/stretchr/testify/require"
)

func TestWhiteList(t *testing.T) {
	tc := util.NewTestContext()
	whiteListAddr := tc.DeployContract(&whitelist.WhiteListContract{}, &whitelist.WhiteListContractConstruction{})

	inf := tc.MustSendTx(util.Admin, whiteListAddr, "AddGroup", "presale")
	groupID := inf[0].(hash.Hash256)
	require.Equal(t, util.Admin, tc.MustCall(util.Admin, whiteListAddr, "GroupOwner", groupID)[0])

	users := []common.Address{util.Users[0], util.Users[1]}
	tc.MustSendTx(util.Admin, whiteListAddr, "AddAddresses", groupID, users)
	tc.MustSendTx(util.Admin, whiteListAddr, "AddAddresses", groupID, users)
	require.Equal(t, uint32(2), tc.MustCall(util.Admin, whiteListAddr, "GroupSize", groupID)[0])

	for _, u := range users {
		require.Equal(t, true, tc.MustCall(u, whiteListAddr, "IsAllow", groupID, u)[0])
	}
	require.Equal(t, false, tc.MustCall(util.Admin, whiteListAddr, "IsAllow", groupID, util.Users[2])[0])

	tc.MustSendTx(util.Admin, whiteListAddr, "RemoveAddresses", groupID, []common.Address{util.Users[1]})
	require.Equal(t, false, tc.MustCall(util.Admin, whiteListAddr, "IsAllow", groupID, util.Users[1])[0])
	require.Equal(t, uint32(1), tc.MustCall(util.Admin, whiteListAddr, "GroupSize", groupID)[0])
}

func TestWhiteListGroupOwnership(t *testing.T) {
	tc := util.NewTestContext()
	whiteListAddr := tc.DeployContract(&whitelist.WhiteListContract{}, &whitelist.WhiteListContractConstruction{})

	groupID := tc.MustSendTx(util.Admin, whiteListAddr, "AddGroup", "team")[0].(hash.Hash256)
	other := tc.MustSendTx(util.Users[0], whiteListAddr, "AddGroup", "team")[0].(hash.Hash256)
	require.NotEqual(t, groupID, other)

	_, err := tc.SendTx(util.Users[0], whiteListAddr, "AddAddresses", groupID, []common.Address{util.Users[0]})
	require.True(t, errors.Is(err, whitelist.ErrNotGroupOwner), "%+v", err)
	require.Equal(t, false, tc.MustCall(util.Admin, whiteListAddr, "IsAllow", groupID, util.Users[0])[0])

	tc.MustSendTx(util.Admin, whiteListAddr, "TransferGroup", groupID, util.Users[0])
	tc.MustSendTx(util.Users[0], whiteListAddr, "AddAddresses", groupID, []common.Address{util.Users[0]})
	require.Equal(t, true, tc.MustCall(util.Admin, whiteListAddr, "IsAllow", groupID, util.Users[0])[0])

	_, err = tc.SendTx(util.Admin, whiteListAddr, "AddAddresses", hash.Hash([]byte("unknown")), []common.Address{util.Users[1]})
	require.True(t, errors.Is(err, whitelist.ErrNotExistGroup))

	_, err = tc.SendTx(util.Admin, whiteListAddr, "AddGroup", "")
	require.True(t, errors.Is(err, whitelist.ErrInvalidGroupName))
}
