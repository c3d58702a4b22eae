package contract

import (
	"strings"

	"dapp_punks/sdk"
)

// -----------------------------------------------------------------------------
// Token Registry
// -----------------------------------------------------------------------------

// requireMintedToken resolves a token id to its owner, reverting for ids
// outside the minted range.
func requireMintedToken(id uint64) sdk.Address {
	owner := tokenOwner(id)
	if owner == nil {
		sdk.Revert("token does not exist", ErrUnknownToken)
	}
	return *owner
}

// Transfer moves a token between holders.
// Payload: "id|to". The caller must own the token.
func Transfer(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	raw := unwrapPayload(payload, "transfer payload requires id|to")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("transfer payload requires id|to")
	}
	id := parseUintField(parts[0], "token id")
	to := parseAddressField(parts[1], "recipient")

	owner := requireMintedToken(id)
	if owner != sender {
		sdk.Revert("caller does not own the token", ErrUnauthorized)
	}

	moveToken(id, sender, to)

	emitTransferEvent(id, sender.String(), to.String())

	return strptr("transferred token " + UInt64ToString(id))
}

// OwnerOf returns the owning address of a minted token.
// Payload: token id.
func OwnerOf(payload *string) *string {
	requireInitialized()

	id := parseUintField(unwrapPayload(payload, "payload requires token id"), "token id")
	owner := requireMintedToken(id)
	return strptr(owner.String())
}

// BalanceOf returns the number of tokens an address holds.
// Payload: address. Unknown addresses read as zero.
func BalanceOf(payload *string) *string {
	requireInitialized()

	addr := parseAddressField(unwrapPayload(payload, "payload requires address"), "address")
	return strptr(UInt64ToString(holderBalance(addr)))
}

// WalletOfOwner returns every token id an address holds, ascending, as a JSON array.
// Payload: address.
func WalletOfOwner(payload *string) *string {
	requireInitialized()

	addr := parseAddressField(unwrapPayload(payload, "payload requires address"), "address")
	return strptr(encodeIDList(holderTokenIDs(addr)))
}

// TokenURI builds the metadata URI for a minted token: baseURI + id + ".json".
// Payload: token id.
func TokenURI(payload *string) *string {
	requireInitialized()

	id := parseUintField(unwrapPayload(payload, "payload requires token id"), "token id")
	requireMintedToken(id)

	cfg := loadContractConfig()
	return strptr(cfg.BaseURI + UInt64ToString(id) + ".json")
}
