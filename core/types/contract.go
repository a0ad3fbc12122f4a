package types

import (
	"io"
	"reflect"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/bin"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// Contract defines chain Contract functions
// Front returns the value whose exported methods are callable through Exec
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}

// ContractDefine is the stored identity of a deployed contract
type ContractDefine struct {
	Address common.Address
	Owner   common.Address
	ClassID uint64
}

func (s *ContractDefine) Clone() *ContractDefine {
	c := *s
	return &c
}

func (s *ContractDefine) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Address); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.ClassID); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ContractDefine) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Address); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.ClassID); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

var gContractTypeMap = map[uint64]reflect.Type{}
var gContractNameMap = map[uint64]string{}

// ClassIDOf returns the class id derived from the package path and the type name of the contract
func ClassIDOf(cont interface{}) (uint64, string) {
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	return bin.Uint64(h[len(h)-8:]), name
}

// IMPORTANT: RegisterContractType must be called only at initialization time
// and never have to called concurrently with CreateContract, IsValidClassID, ContractName functions
func RegisterContractType(cont Contract) (uint64, error) {
	ClassID, name := ClassIDOf(cont)
	if v, has := gContractNameMap[ClassID]; has {
		if name != v {
			return 0, errors.WithStack(ErrExistContractType)
		}
		return ClassID, nil
	}
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	gContractNameMap[ClassID] = name
	gContractTypeMap[ClassID] = rt
	return ClassID, nil
}

func CreateContract(cd *ContractDefine) (Contract, error) {
	rt, has := gContractTypeMap[cd.ClassID]
	if !has {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	cont := reflect.New(rt).Interface().(Contract)
	cont.Init(cd.Address, cd.Owner)
	return cont, nil
}

func IsValidClassID(ClassID uint64) bool {
	_, has := gContractTypeMap[ClassID]
	return has
}

func ContractName(ClassID uint64) string {
	return gContractNameMap[ClassID]
}
