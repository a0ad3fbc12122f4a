package apiserver

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

func (arg *Argument) get(index int) (interface{}, error) {
	if index < 0 || index >= len(arg.args) {
		return nil, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return a, nil
}

// IsNil returns true when the argument is missing or null
func (arg *Argument) IsNil(index int) bool {
	return index < 0 || index >= len(arg.args) || arg.args[index] == nil
}

// Uint8 returns a uint8 value of the index
func (arg *Argument) Uint8(index int) (uint8, error) {
	a, err := arg.get(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 8)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return uint8(n), nil
}

// Uint32 returns a uint32 value of the index
func (arg *Argument) Uint32(index int) (uint32, error) {
	a, err := arg.get(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return uint32(n), nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	a, err := arg.get(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", a), nil
}

// Address returns a address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	str, err := arg.String(index)
	if err != nil {
		return common.ZeroAddr, err
	}
	return common.ParseAddress(str)
}

// Amount returns a amount value of the index, it is given as a decimal string
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	str, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	am, err := amount.ParseAmount(str)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgumentType, "amount %v", str)
	}
	return am, nil
}

// Hash returns a hash value of the index
func (arg *Argument) Hash(index int) (hash.Hash256, error) {
	str, err := arg.String(index)
	if err != nil {
		return hash.Hash256{}, err
	}
	return hash.ParseHash(str)
}

// Array returns a array value of the index
func (arg *Argument) Array(index int) ([]interface{}, error) {
	a, err := arg.get(index)
	if err != nil {
		return nil, err
	}
	switch reflect.TypeOf(a).Kind() {
	case reflect.Slice:
		s := reflect.ValueOf(a)

		r := []interface{}{}
		for i := 0; i < s.Len(); i++ {
			r = append(r, s.Index(i).Interface())
		}
		return r, nil
	}
	return nil, errors.WithStack(ErrInvalidArgumentType)
}
