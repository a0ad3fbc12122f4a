package whitelist

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
)

var (
	tagSeq        = byte(0x02)
	tagGroupOwner = byte(0x03)
	tagGroupData  = byte(0x04)
	tagMember     = byte(0x05)
)

func makeWhiteListKey(key byte, body []byte) []byte {
	bs := make([]byte, 1+len(body))
	bs[0] = key
	copy(bs[1:], body[:])
	return bs
}

func makeGroupOwnerKey(id hash.Hash256) []byte {
	return makeWhiteListKey(tagGroupOwner, id.Bytes())
}
func makeGroupDataKey(id hash.Hash256) []byte {
	return makeWhiteListKey(tagGroupData, id.Bytes())
}
func makeMemberKey(id hash.Hash256, user common.Address) []byte {
	body := make([]byte, 0, hash.HashLength+common.AddressLength)
	body = append(body, id[:]...)
	body = append(body, user[:]...)
	return makeWhiteListKey(tagMember, body)
}
