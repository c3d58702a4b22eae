package contract

import "dapp_punks/sdk"

// setWhitelistEntry stores an approval entry, reporting whether it was new.
func setWhitelistEntry(addr sdk.Address) bool {
	key := whitelistEntryKey(addr)
	if existing := sdk.StateGetObject(key); existing != nil && *existing != "" {
		return false
	}
	sdk.StateSetObject(key, "1")
	return true
}

// deleteWhitelistEntry removes an approval and reports whether it existed.
func deleteWhitelistEntry(addr sdk.Address) bool {
	key := whitelistEntryKey(addr)
	existing := sdk.StateGetObject(key)
	if existing == nil || *existing == "" {
		return false
	}
	sdk.StateDeleteObject(key)
	return true
}

// isWhitelisted reports whether an address holds a mint approval.
func isWhitelisted(addr sdk.Address) bool {
	key := whitelistEntryKey(addr)
	existing := sdk.StateGetObject(key)
	return existing != nil && *existing != ""
}

// isAuthorizedToMint combines the gate flag with membership: everyone passes
// while the gate is open, otherwise only approved addresses do.
func isAuthorizedToMint(cfg *ContractConfig, addr sdk.Address) bool {
	if !cfg.WhitelistOnly {
		return true
	}
	return isWhitelisted(addr)
}
