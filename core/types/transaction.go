package types

import (
	"encoding/json"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/amount"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// Transaction calls Method of the contract To on behalf of From
// a positive Value moves native currency from From to To before the call
type Transaction struct {
	Timestamp uint64         `json:"timestamp"`
	Seq       uint64         `json:"seq"`
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Method    string         `json:"method"`
	Args      []interface{}  `json:"args"`
	Value     *amount.Amount `json:"value,omitempty"`
}

// HasValue returns true when the transaction carries native currency
func (tx *Transaction) HasValue() bool {
	return tx.Value != nil && tx.Value.IsPlus()
}

// Hash returns the hash of the json form of the transaction
func (tx *Transaction) Hash() (hash.Hash256, error) {
	bs, err := json.Marshal(tx)
	if err != nil {
		return hash.Hash256{}, errors.WithStack(err)
	}
	return hash.Hash(bs), nil
}
