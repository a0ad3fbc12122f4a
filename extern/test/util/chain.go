package util

import (
	"fmt"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/core/types"
)

// SendTx executes the call as a transaction of from and returns its results
func (tc *TestContext) SendTx(from common.Address, to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.SendTxWithValue(from, to, nil, method, params...)
}

// SendTxWithValue executes the call carrying value of the main token
func (tc *TestContext) SendTxWithValue(from common.Address, to common.Address, value *amount.Amount, method string, params ...interface{}) ([]interface{}, error) {
	receipt, err := tc.SendTxReceipt(from, to, value, method, params...)
	if err != nil {
		return nil, err
	}
	return receipt.Result, nil
}

// SendTxReceipt executes the transaction and returns the stored receipt, a failed one is returned with the error
func (tc *TestContext) SendTxReceipt(from common.Address, to common.Address, value *amount.Amount, method string, params ...interface{}) (*types.Receipt, error) {
	if params == nil {
		params = []interface{}{}
	}
	tx := &types.Transaction{
		From:   from,
		To:     to,
		Method: method,
		Args:   params,
		Value:  value,
	}
	tc.Sleep(10)
	return tc.Cn.Execute(tx)
}

func (tc *TestContext) MakeTx(from common.Address, to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.SendTx(from, to, method, params...)
}

func (tc *TestContext) MustSendTx(from common.Address, to common.Address, method string, params ...interface{}) []interface{} {
	res, err := tc.SendTx(from, to, method, params...)
	if err != nil {
		fmt.Printf("%+v\n", err)
		panic(err)
	}
	return res
}

// Call runs the method on the committed state without keeping anything
func (tc *TestContext) Call(from common.Address, to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	if params == nil {
		params = []interface{}{}
	}
	return tc.Cn.Call(from, to, method, params)
}

func (tc *TestContext) MustCall(from common.Address, to common.Address, method string, params ...interface{}) []interface{} {
	res, err := tc.Call(from, to, method, params...)
	if err != nil {
		fmt.Printf("%+v\n", err)
		panic(err)
	}
	return res
}
