package token

import "errors"

// token errors
var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrZeroAddress           = errors.New("zero address")
	ErrNotTokenMaster        = errors.New("not token master")
	ErrNotTokenMinter        = errors.New("not token minter")
	ErrAlreadyTokenMinter    = errors.New("already token minter")
)
