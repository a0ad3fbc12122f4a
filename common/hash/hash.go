package hash

import (
	ecommon "github.com/ethereum/go-ethereum/common"
	ecrypto "github.com/ethereum/go-ethereum/crypto"
)

type Hash256 = ecommon.Hash

// Lengths of hashes and addresses in bytes.
const (
	// HashLength is the expected length of the hash
	HashLength = ecommon.HashLength
)

// HexToHash sets byte representation of s to hash.
// If b is larger than len(h), b will be cropped from the left.
func HexToHash(s string) Hash256 {
	return Hash256(ecommon.HexToHash(s))
}

// Hash calculates and returns the Hash hash of the input data.
func Hash(data ...[]byte) Hash256 {
	return Hash256(ecrypto.Keccak256Hash(data...))
}

// Hashes returns the result of Hash(h1+'h'+...)
func Hashes(hs ...Hash256) Hash256 {
	data := make([]byte, 0, (HashLength+1)*len(hs))
	for i, h := range hs {
		data = append(data, h[:]...)
		if i < len(hs)-1 {
			data = append(data, 'h')
		}
	}
	return Hash(data)
}

// ParseHash parse the hash from the hex string
func ParseHash(str string) (Hash256, error) {
	bs := ecommon.FromHex(str)
	if len(bs) != HashLength {
		return Hash256{}, ErrInvalidHashSize
	}
	return ecommon.BytesToHash(bs), nil
}
