package chain

import (
	"encoding/binary"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
)

var (
	tagHeight         = []byte{1, 0}
	tagLastHash       = []byte{1, 1}
	tagLastTimestamp  = []byte{1, 2}
	tagMainToken      = []byte{1, 3}
	tagGenesisHash    = []byte{1, 4}
	tagContract       = []byte{2, 0}
	tagData           = []byte{3, 0}
	tagReceipt        = []byte{4, 0}
	tagHeightReceipt  = []byte{4, 1}
	dataKeyHeaderSize = len(tagData)
)

func toContractKey(addr common.Address) []byte {
	bs := make([]byte, 2+common.AddressLength)
	copy(bs, tagContract)
	copy(bs[2:], addr[:])
	return bs
}

// toDataKey takes the key of the context data map, it already joins the contract, the account and the name
func toDataKey(key string) []byte {
	bs := make([]byte, dataKeyHeaderSize+len(key))
	copy(bs, tagData)
	copy(bs[dataKeyHeaderSize:], key)
	return bs
}

func toReceiptKey(h hash.Hash256) []byte {
	bs := make([]byte, 2+hash.HashLength)
	copy(bs, tagReceipt)
	copy(bs[2:], h[:])
	return bs
}

func toHeightReceiptKey(height uint32) []byte {
	bs := make([]byte, 6)
	copy(bs, tagHeightReceipt)
	binary.BigEndian.PutUint32(bs[2:], height)
	return bs
}
