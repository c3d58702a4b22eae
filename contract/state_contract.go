package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := &ContractConfig{}
	FromJSON(*ptr, cfg, "contract config")
	return cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, ToJSON(*cfg, "contract config"))
}

// getContractOwner returns the contract owner address, or nil if not initialized.
func getContractOwner() *sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	owner := getContractOwner()
	return owner != nil && *owner == addr
}

// requireOwner reverts with the unauthorized symbol unless the sender owns the collection.
func requireOwner() sdk.Address {
	sender := getSenderAddress()
	if !isContractOwner(sender) {
		sdk.Revert("caller is not the contract owner", ErrUnauthorized)
	}
	return sender
}
