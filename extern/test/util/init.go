package util

import (
	"fmt"
	"math/big"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
	"github.com/meverselabs/presale/contract/presale"
	"github.com/meverselabs/presale/contract/token"
	"github.com/meverselabs/presale/contract/whitelist"
	"github.com/meverselabs/presale/core/types"
)

var (
	ChainID = big.NewInt(1)

	Admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	Users []common.Address
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&token.TokenContract{}, "Token")
	RegisterContractClass(&whitelist.WhiteListContract{}, "WhiteList")
	RegisterContractClass(&presale.PresaleContract{}, "Presale")

	Users = []common.Address{}
	for i := 998; i > 988; i-- {
		h := hash.Hash([]byte(fmt.Sprintf("user%3v", i)))
		Users = append(Users, common.BytesToAddress(h[12:]))
	}
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
