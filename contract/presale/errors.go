package presale

import (
	"errors"
	"fmt"
)

// presale errors
var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrNotWhitelisted         = errors.New("your address is not whitelisted")
	ErrPresaleNotActive       = errors.New("presale is currently not active")
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")
	ErrZeroAmount             = errors.New("zero amount")
	ErrOverInvestmentLimit    = errors.New("over investment limit")
	ErrEscrowExhausted        = errors.New("escrow exhausted")
	ErrAlreadySettled         = errors.New("already settled")
	ErrPresaleEnded           = errors.New("presale ended")
	ErrRefundDisabled         = errors.New("refund disabled")
	ErrNothingToRefund        = errors.New("nothing to refund")
	ErrInvalidRate            = errors.New("invalid rate")
	ErrInvalidConfig          = errors.New("invalid presale config")
	ErrTokenCallFailed        = errors.New("token call failed")
)

// ErrPresaleNotActiveForAsset matches every NotActiveForAssetError with errors.Is
var ErrPresaleNotActiveForAsset = &NotActiveForAssetError{}

// NotActiveForAssetError is returned when the running phase does not take the offered asset
type NotActiveForAssetError struct {
	Offered AssetKind
	Reason  string
}

func (e *NotActiveForAssetError) Error() string {
	if e.Reason == "" {
		return "presale is not active for the asset"
	}
	return fmt.Sprintf("presale is currently %v", e.Reason)
}

func (e *NotActiveForAssetError) Is(target error) bool {
	_, ok := target.(*NotActiveForAssetError)
	return ok
}

func notActiveForAsset(offered AssetKind, accepted AssetKind) error {
	return &NotActiveForAssetError{
		Offered: offered,
		Reason:  "only accepting " + accepted.Contributions(),
	}
}
