package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Supply State
// -----------------------------------------------------------------------------

// loadSupplyState loads the mutable supply counters, defaulting to zero supply.
func loadSupplyState() *SupplyState {
	ptr := sdk.StateGetObject(SupplyStateKey)
	if ptr == nil || *ptr == "" {
		return &SupplyState{MaxMintAmount: FallbackMaxMintAmount}
	}
	state := &SupplyState{}
	FromJSON(*ptr, state, "supply state")
	return state
}

// saveSupplyState stores the supply counters back to state.
func saveSupplyState(state *SupplyState) {
	sdk.StateSetObject(SupplyStateKey, ToJSON(*state, "supply state"))
}

// reserveTokens is the single place total supply moves. All checks happen
// before the counter is written, so a revert never leaves a half reservation.
func reserveTokens(cfg *ContractConfig, quantity uint64) IDRange {
	if quantity < 1 {
		sdk.Revert("quantity must be at least 1", ErrInvalidQuantity)
	}
	state := loadSupplyState()
	if quantity > state.MaxMintAmount {
		sdk.Revert("quantity exceeds per-call mint limit", ErrExceedsPerCall)
	}
	if state.TotalSupply+quantity > cfg.MaxSupply {
		sdk.Revert("not enough supply left", ErrSupplyExhausted)
	}
	from := state.TotalSupply + 1
	state.TotalSupply += quantity
	saveSupplyState(state)
	return IDRange{From: from, To: state.TotalSupply}
}

// setMaxMintAmount updates the per-call limit, rejecting zero.
func setMaxMintAmount(amount uint64) {
	if amount < 1 {
		sdk.Revert("max mint amount must be at least 1", ErrInvalidAmount)
	}
	state := loadSupplyState()
	state.MaxMintAmount = amount
	saveSupplyState(state)
}
