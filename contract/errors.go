package contract

// Revert symbols thrown back to callers via sdk.Revert. Watchers and frontends
// match on these, so the strings are part of the contract interface.
const (
	ErrUnauthorized      = "unauthorized"
	ErrInvalidQuantity   = "invalid_quantity"
	ErrExceedsPerCall    = "exceeds_per_call_limit"
	ErrSupplyExhausted   = "supply_exhausted"
	ErrMintingNotOpen    = "minting_not_open"
	ErrNotWhitelisted    = "not_whitelisted"
	ErrInsufficientPay   = "insufficient_payment"
	ErrNothingToWithdraw = "nothing_to_withdraw"
	ErrUnknownToken      = "unknown_token"
	ErrInvalidAmount     = "invalid_amount"
)
