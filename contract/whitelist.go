package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Whitelist Management
// -----------------------------------------------------------------------------

// WhitelistAdd approves a single address for gated minting.
// Payload: address. Owner only, idempotent.
func WhitelistAdd(payload *string) *string {
	requireInitialized()
	requireOwner()

	addr := parseAddressField(unwrapPayload(payload, "payload requires address"), "whitelist address")
	if setWhitelistEntry(addr) {
		emitWhitelistAddedEvent(addr.String())
	}

	return strptr("whitelisted " + addr.String())
}

// WhitelistAddMany approves a batch of addresses in one call.
// Payload: "addr1;addr2;...". Owner only, duplicates and existing entries are skipped.
func WhitelistAddMany(payload *string) *string {
	requireInitialized()
	requireOwner()

	addresses := parseAddressList(unwrapPayload(payload, "payload requires addresses"))
	if len(addresses) == 0 {
		sdk.Abort("payload requires addresses")
	}

	added := 0
	for _, addr := range addresses {
		if setWhitelistEntry(addr) {
			emitWhitelistAddedEvent(addr.String())
			added++
		}
	}

	return strptr("whitelisted " + UInt64ToString(uint64(added)) + " addresses")
}

// WhitelistRemove revokes an approval. Removing an absent address is a no-op.
// Payload: address. Owner only.
func WhitelistRemove(payload *string) *string {
	requireInitialized()
	requireOwner()

	addr := parseAddressField(unwrapPayload(payload, "payload requires address"), "whitelist address")
	if deleteWhitelistEntry(addr) {
		emitWhitelistRemovedEvent(addr.String())
	}

	return strptr("removed " + addr.String())
}

// WhitelistSetOnly flips the gate between whitelist-only and open minting.
// Payload: "0"/"1" (also accepts true/false). Owner only.
func WhitelistSetOnly(payload *string) *string {
	requireInitialized()
	requireOwner()

	enabled := parseFlagField(unwrapPayload(payload, "payload requires flag"), "whitelist flag")

	cfg := loadContractConfig()
	if cfg.WhitelistOnly != enabled {
		cfg.WhitelistOnly = enabled
		saveContractConfig(cfg)
		emitWhitelistOnlyEvent(enabled)
	}

	if enabled {
		return strptr("minting restricted to whitelist")
	}
	return strptr("minting open to everyone")
}

// IsWhitelisted reports whether an address holds an approval.
// Payload: address.
func IsWhitelisted(payload *string) *string {
	requireInitialized()

	addr := parseAddressField(unwrapPayload(payload, "payload requires address"), "address")
	if isWhitelisted(addr) {
		return strptr("true")
	}
	return strptr("false")
}
