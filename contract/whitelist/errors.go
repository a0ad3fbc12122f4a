package whitelist

import "errors"

// whitelist errors
var (
	ErrNotExistGroup    = errors.New("not exist group")
	ErrNotGroupOwner    = errors.New("not group owner")
	ErrInvalidGroupName = errors.New("invalid group name")
)
