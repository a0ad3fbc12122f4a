package types

import (
	"fmt"

	"github.com/meverselabs/presale/common"
)

// Event is a record emitted by a contract during a transaction
// it lives in the snapshot that emitted it, so a reverted call drops its events
type Event struct {
	Index    uint16            `json:"index"`
	Contract common.Address    `json:"contract"`
	Name     string            `json:"name"`
	Params   map[string]string `json:"params,omitempty"`
}

// NewEvent builds an event from alternating key and value arguments
func NewEvent(cont common.Address, name string, kvs ...interface{}) *Event {
	en := &Event{
		Contract: cont,
		Name:     name,
	}
	if len(kvs) > 0 {
		en.Params = map[string]string{}
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		en.Params[fmt.Sprint(kvs[i])] = fmt.Sprint(kvs[i+1])
	}
	return en
}

// Param returns the value of the named param
func (en *Event) Param(key string) string {
	return en.Params[key]
}
