package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the collection with the caller as owner.
// Must be called before any other function.
// Payload: "name|symbol|cost|maxSupply|allowMintingOn|baseURI"
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	args := decodeInitArgs(payload)

	// Store contract config with caller as owner. The whitelist gate starts
	// closed so the owner can stage approvals before opening up.
	cfg := ContractConfig{
		Owner:          getSenderAddress(),
		Name:           args.Name,
		Symbol:         args.Symbol,
		Cost:           args.Cost,
		MaxSupply:      args.MaxSupply,
		AllowMintingOn: args.AllowMintingOn,
		BaseURI:        args.BaseURI,
		WhitelistOnly:  true,
	}
	saveContractConfig(&cfg)
	saveSupplyState(&SupplyState{MaxMintAmount: FallbackMaxMintAmount})

	emitInitEvent(cfg.Owner.String())

	return strptr("initialized collection " + cfg.Name)
}
