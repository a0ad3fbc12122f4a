package presale

import (
	"github.com/meverselabs/presale/common/bin"
)

var (
	tagConfig         = byte(0x01)
	tagPhase          = byte(0x02)
	tagInitialEscrow  = byte(0x03)
	tagSettled        = byte(0x04)
	tagStandardIssued = byte(0x05)
	tagTotalIssued    = byte(0x06)
	tagTotalRaised    = byte(0x07)
	tagInvestorCount  = byte(0x08)
	tagInvestorAt     = byte(0x09)

	tagWhitelisted = byte(0x10)
	tagDevAddress  = byte(0x11)
	tagInvestment  = byte(0x12)
)

func makeTotalRaisedKey(asset AssetKind) []byte {
	return []byte{tagTotalRaised, byte(asset)}
}

func makeInvestorAtKey(idx uint32) []byte {
	bs := make([]byte, 5)
	bs[0] = tagInvestorAt
	copy(bs[1:], bin.Uint32Bytes(idx))
	return bs
}
