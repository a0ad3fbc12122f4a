package chain

import "errors"

// errors
var (
	ErrChainClosed        = errors.New("chain closed")
	ErrStoreClosed        = errors.New("store closed")
	ErrNotInitialized     = errors.New("chain not initialized")
	ErrAlreadyInitialized = errors.New("chain already initialized")
	ErrInvalidGenesisHash = errors.New("invalid genesis hash")
	ErrDirtyContext       = errors.New("dirty context")
	ErrNotExistReceipt    = errors.New("not exist receipt")
	ErrNotContract        = errors.New("target is not a contract")
	ErrNotPayable         = errors.New("method does not accept value")
)
