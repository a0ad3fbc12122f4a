package types

import (
	"encoding/json"

	"github.com/meverselabs/presale/common"
	"github.com/meverselabs/presale/common/hash"
	"github.com/pkg/errors"
)

// Receipt is the stored outcome of a transaction
// a failed transaction keeps its error and no events
type Receipt struct {
	TxHash    hash.Hash256   `json:"txHash"`
	Height    uint32         `json:"height"`
	Timestamp uint64         `json:"timestamp"`
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Method    string         `json:"method"`
	Status    bool           `json:"status"`
	Error     string         `json:"error,omitempty"`
	Result    []interface{}  `json:"result,omitempty"`
	Events    []*Event       `json:"events,omitempty"`
	StateHash hash.Hash256   `json:"stateHash"`
}

func (r *Receipt) MarshalBinary() ([]byte, error) {
	bs, err := json.Marshal(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

func (r *Receipt) UnmarshalBinary(bs []byte) error {
	return errors.WithStack(json.Unmarshal(bs, r))
}
