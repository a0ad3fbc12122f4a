package types

import (
	"encoding/hex"
	"math/big"
	"reflect"
	"strings"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// ExecFunc calls the method of the contract at Addr on behalf of the contract of Cc
type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
}

type interactor struct {
	ctx    *Context
	conMap map[common.Address]Contract
	exit   bool
}

// NewInteractor returns an interactor that resolves contracts from the context
func NewInteractor(ctx *Context) IInteractor {
	return &interactor{
		ctx:    ctx,
		conMap: map[common.Address]Contract{},
	}
}

func (i *interactor) Distroy() {
	i.exit = true
}

// Exec runs the method inside its own snapshot, an error reverts every change of the call
func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	if i.exit {
		return nil, errors.WithStack(ErrExpiredInteractor)
	}
	if MethodName == "" {
		return nil, errors.WithStack(ErrMethodNotGiven)
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(MethodName[:1]) + MethodName[1:]
	return _exec(i.currentContractContext(Cc, ContAddr), cont, MethodName, Args)
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) ([]interface{}, error) {
	ContAddr := cont.Address()
	rMethod, err := methodByName(cont, ContAddr, MethodName)
	if err != nil {
		return nil, err
	}
	in, err := ContractInputsConv(Args, rMethod)
	if err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()
	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = errors.Wrapf(ErrContractPanic, "call method(%v) of contract(%v) message: %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}
	result, err := getResults(rMethod.Type(), vs)
	if err != nil {
		ecc.ctx.Revert(sn)
		return nil, err
	}
	ecc.ctx.Commit(sn)
	return result, nil
}

func getResults(mType reflect.Type, vs []reflect.Value) (result []interface{}, err error) {
	result = []interface{}{}
	for i, v := range vs {
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if _err, ok := v.Interface().(error); ok && _err != nil {
				err = _err
			}
			continue
		}
		result = append(result, v.Interface())
	}
	return
}

func methodByName(cont Contract, Addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(cont.Front())
	if !vo.IsValid() || (vo.Kind() == reflect.Ptr && vo.IsNil()) {
		return reflect.Value{}, errors.Wrap(ErrNotExistContract, Addr.String())
	}
	method := vo.MethodByName(MethodName)
	if !method.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrNotExistMethod, "%v of contract %v", MethodName, Addr.String())
	}
	mType := method.Type()
	if mType.NumIn() < 1 || !contractContextType.AssignableTo(mType.In(0)) {
		return reflect.Value{}, errors.Wrapf(ErrNotExistMethod, "%v of contract %v", MethodName, Addr.String())
	}
	return method, nil
}

func (i *interactor) getContract(Addr common.Address) (Contract, error) {
	if cont, has := i.conMap[Addr]; has {
		return cont, nil
	}
	cont, err := i.ctx.Contract(Addr)
	if err != nil {
		return nil, err
	}
	i.conMap[Addr] = cont
	return cont, nil
}

// currentContractContext keeps the context of a self call and makes the caller contract the sender otherwise
func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		Exec: i.Exec,
	}
}

// ContractInputsConv converts the arguments to the parameter types of the method
// it accepts the loose forms that arrive from the json rpc as well
func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Wrapf(ErrInvalidArgumentCount, "got %v want %v", len(Args), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		mType := mt.In(i + 1)
		param, err := convertArg(v, mType)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %v", i)
		}
		in[i] = param
	}
	return in, nil
}

var (
	contractContextType = reflect.TypeOf(&ContractContext{})
	addressType         = reflect.TypeOf(common.Address{})
	hashType            = reflect.TypeOf(hash.Hash256{})
	amountType          = reflect.TypeOf(&amount.Amount{})
	bigIntType          = reflect.TypeOf(&big.Int{})
	addressesType       = reflect.TypeOf([]common.Address{})
	amountsType         = reflect.TypeOf([]*amount.Amount{})
	bytesType           = reflect.TypeOf([]byte{})
	interfacesType      = reflect.TypeOf([]interface{}{})
)

func convertArg(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(mType), nil
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	if param.Type().ConvertibleTo(mType) && param.Kind() != reflect.String && mType.Kind() != reflect.String {
		switch mType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return param.Convert(mType), nil
		}
	}
	switch pv := v.(type) {
	case *big.Int:
		switch mType {
		case amountType:
			return reflect.ValueOf(amount.NewAmountFromBig(pv)), nil
		case addressType:
			return reflect.ValueOf(common.BigToAddress(pv)), nil
		}
	case *amount.Amount:
		if mType == bigIntType {
			return reflect.ValueOf(new(big.Int).Set(pv.Int)), nil
		}
	case float64:
		switch mType.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if pv >= 0 && pv == float64(uint64(pv)) {
				return reflect.ValueOf(uint64(pv)).Convert(mType), nil
			}
		}
	case string:
		return convertString(pv, mType)
	case []byte:
		switch mType {
		case hashType:
			h := hash.Hash256{}
			copy(h[:], pv)
			return reflect.ValueOf(h), nil
		case addressType:
			return reflect.ValueOf(common.BytesToAddress(pv)), nil
		case amountType:
			return reflect.ValueOf(amount.NewAmountFromBytes(pv)), nil
		}
	case []interface{}:
		switch mType {
		case addressesType:
			as := make([]common.Address, 0, len(pv))
			for _, t := range pv {
				p, err := convertArg(t, addressType)
				if err != nil {
					return reflect.Value{}, err
				}
				as = append(as, p.Interface().(common.Address))
			}
			return reflect.ValueOf(as), nil
		case amountsType:
			as := make([]*amount.Amount, 0, len(pv))
			for _, t := range pv {
				p, err := convertArg(t, amountType)
				if err != nil {
					return reflect.Value{}, err
				}
				as = append(as, p.Interface().(*amount.Amount))
			}
			return reflect.ValueOf(as), nil
		case interfacesType:
			return param, nil
		}
	}
	return reflect.Value{}, errors.Wrapf(ErrInvalidArgumentType, "get %v want %v", param.Type(), mType)
}

func convertString(pv string, mType reflect.Type) (reflect.Value, error) {
	switch mType {
	case addressType:
		addr, err := common.ParseAddress(pv)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(addr), nil
	case hashType:
		h, err := hash.ParseHash(pv)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(h), nil
	case amountType:
		if strings.HasPrefix(pv, "0x") {
			tv := strings.TrimPrefix(pv, "0x")
			if len(tv)%2 == 1 {
				tv = "0" + tv
			}
			bs, err := hex.DecodeString(tv)
			if err != nil {
				return reflect.Value{}, errors.WithStack(err)
			}
			return reflect.ValueOf(amount.NewAmountFromBytes(bs)), nil
		}
		am, err := amount.ParseAmount(pv)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(am), nil
	case bigIntType:
		bi, ok := new(big.Int).SetString(pv, 0)
		if !ok {
			return reflect.Value{}, errors.Wrapf(ErrInvalidArgumentType, "invalid integer %v", pv)
		}
		return reflect.ValueOf(bi), nil
	case bytesType:
		bs, err := hex.DecodeString(strings.TrimPrefix(pv, "0x"))
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		return reflect.ValueOf(bs), nil
	}
	switch mType.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(strings.ToLower(pv) == "true"), nil
	case reflect.String:
		return reflect.ValueOf(pv).Convert(mType), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bi, ok := new(big.Int).SetString(pv, 0)
		if !ok || !bi.IsUint64() {
			return reflect.Value{}, errors.Wrapf(ErrInvalidArgumentType, "invalid unsigned integer %v", pv)
		}
		return reflect.ValueOf(bi.Uint64()).Convert(mType), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bi, ok := new(big.Int).SetString(pv, 0)
		if !ok || !bi.IsInt64() {
			return reflect.Value{}, errors.Wrapf(ErrInvalidArgumentType, "invalid integer %v", pv)
		}
		return reflect.ValueOf(bi.Int64()).Convert(mType), nil
	}
	return reflect.Value{}, errors.Wrapf(ErrInvalidArgumentType, "get string want %v", mType)
}
