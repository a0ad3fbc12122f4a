package types

import "errors"

// types errors
var (
	ErrInvalidClassID       = errors.New("invalid class id")
	ErrExistContractType    = errors.New("exist contract type")
	ErrNotExistContract     = errors.New("not exist contract")
	ErrExistContract        = errors.New("exist contract")
	ErrMethodNotGiven       = errors.New("method not given")
	ErrNotExistMethod       = errors.New("not exist method")
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	ErrInvalidArgumentType  = errors.New("invalid argument type")
	ErrContractPanic        = errors.New("contract panic")
	ErrExpiredInteractor    = errors.New("expired interactor")
	ErrNotExistMainToken    = errors.New("not exist main token")
)
