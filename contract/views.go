package contract

// -----------------------------------------------------------------------------
// Aggregated Read Surface
// -----------------------------------------------------------------------------

// GetInfo returns the whole collection state as one JSON object so frontends
// need a single call instead of six.
// Payload: unused.
func GetInfo(payload *string) *string {
	requireInitialized()

	cfg := loadContractConfig()
	state := loadSupplyState()

	info := ContractInfo{
		Name:           cfg.Name,
		Symbol:         cfg.Symbol,
		Cost:           AmountToFloat(cfg.Cost),
		MaxSupply:      cfg.MaxSupply,
		TotalSupply:    state.TotalSupply,
		AllowMintingOn: cfg.AllowMintingOn,
		BaseURI:        cfg.BaseURI,
		Owner:          cfg.Owner,
		WhitelistOnly:  cfg.WhitelistOnly,
		MaxMintAmount:  state.MaxMintAmount,
	}
	return strptr(ToJSON(info, "contract info"))
}
