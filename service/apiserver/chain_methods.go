package apiserver

import (
	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/core/types"
	"github.com/pkg/errors"
)

// RegisterChain adds the chain, presale and token methods of cn to the server
func RegisterChain(s *APIServer, cn *chain.Chain) error {
	cs, err := s.JRPC("chain")
	if err != nil {
		return err
	}
	cs.Set("height", func(ID interface{}, arg *Argument) (interface{}, error) {
		return cn.Height(), nil
	})
	cs.Set("call", func(ID interface{}, arg *Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		to, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		method, err := arg.String(2)
		if err != nil {
			return nil, err
		}
		args, err := optionalArray(arg, 3)
		if err != nil {
			return nil, err
		}
		return cn.Call(from, to, method, args)
	})
	cs.Set("send", func(ID interface{}, arg *Argument) (interface{}, error) {
		tx, err := transactionOf(arg)
		if err != nil {
			return nil, err
		}
		receipt, err := cn.Execute(tx)
		if receipt == nil {
			return nil, err
		}
		ChainHeight.Set(float64(receipt.Height))
		if receipt.Status {
			TransactionsTotal.WithLabelValues("ok").Inc()
		} else {
			TransactionsTotal.WithLabelValues("reverted").Inc()
		}
		return receipt, nil
	})
	cs.Set("receipt", func(ID interface{}, arg *Argument) (interface{}, error) {
		TxHash, err := arg.Hash(0)
		if err != nil {
			return nil, err
		}
		return cn.Receipt(TxHash)
	})

	ps, err := s.JRPC("presale")
	if err != nil {
		return err
	}
	ps.Set("status", func(ID interface{}, arg *Argument) (interface{}, error) {
		cont, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return callOne(cn, cont, "Status")
	})
	ps.Set("quote", func(ID interface{}, arg *Argument) (interface{}, error) {
		cont, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		contributor, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		am, err := arg.Amount(2)
		if err != nil {
			return nil, err
		}
		phase, err := arg.Uint8(3)
		if err != nil {
			return nil, err
		}
		return callOne(cn, cont, "Quote", contributor, am, phase)
	})
	ps.Set("investment", func(ID interface{}, arg *Argument) (interface{}, error) {
		cont, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		addr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		return callOne(cn, cont, "GetInvestment", addr)
	})

	ts, err := s.JRPC("token")
	if err != nil {
		return err
	}
	ts.Set("balanceOf", func(ID interface{}, arg *Argument) (interface{}, error) {
		token, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		addr, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		return callOne(cn, token, "BalanceOf", addr)
	})
	ts.Set("nativeBalanceOf", func(ID interface{}, arg *Argument) (interface{}, error) {
		mt := cn.MainToken()
		if mt == nil {
			return nil, errors.WithStack(ErrNotExistMainToken)
		}
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return callOne(cn, *mt, "BalanceOf", addr)
	})
	return nil
}

func optionalArray(arg *Argument, index int) ([]interface{}, error) {
	if arg.IsNil(index) {
		return []interface{}{}, nil
	}
	return arg.Array(index)
}

// params are from, to, method, args and an optional value in coin units
func transactionOf(arg *Argument) (*types.Transaction, error) {
	from, err := arg.Address(0)
	if err != nil {
		return nil, err
	}
	to, err := arg.Address(1)
	if err != nil {
		return nil, err
	}
	method := ""
	if !arg.IsNil(2) {
		if method, err = arg.String(2); err != nil {
			return nil, err
		}
	}
	args, err := optionalArray(arg, 3)
	if err != nil {
		return nil, err
	}
	tx := &types.Transaction{
		From:   from,
		To:     to,
		Method: method,
		Args:   args,
	}
	if !arg.IsNil(4) {
		v, err := arg.Amount(4)
		if err != nil {
			return nil, err
		}
		tx.Value = v
	}
	return tx, nil
}

func callOne(cn *chain.Chain, to common.Address, method string, args ...interface{}) (interface{}, error) {
	if args == nil {
		args = []interface{}{}
	}
	rv, err := cn.Call(common.ZeroAddr, to, method, args)
	if err != nil {
		return nil, err
	}
	if len(rv) == 0 {
		return nil, nil
	}
	return rv[0], nil
}

