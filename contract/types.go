package contract

import (
	"math"

	"dapp_punks/sdk"
)

// -----------------------------------------------------------------------------
// Amounts
// -----------------------------------------------------------------------------

// Amount is an asset quantity scaled by AmountScale so storage stays integer.
type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled integer for host ledger calls.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// -----------------------------------------------------------------------------
// Stored Structs
// -----------------------------------------------------------------------------

// ContractConfig holds the collection parameters set at init. Owner and the
// mint parameters never change afterwards; WhitelistOnly is the only mutable
// field and lives here because it is read on every mint anyway.
//
//tinyjson:json
type ContractConfig struct {
	Owner          sdk.Address `json:"owner"`
	Name           string      `json:"name"`
	Symbol         string      `json:"symbol"`
	Cost           Amount      `json:"cost"`
	MaxSupply      uint64      `json:"maxSupply"`
	AllowMintingOn int64       `json:"allowMintingOn"`
	BaseURI        string      `json:"baseUri"`
	WhitelistOnly  bool        `json:"whitelistOnly"`
}

// SupplyState tracks the counters that move with every mint.
//
//tinyjson:json
type SupplyState struct {
	TotalSupply   uint64 `json:"totalSupply"`
	MaxMintAmount uint64 `json:"maxMintAmount"`
}

// IDRange is the inclusive token id span handed out by a single mint call.
//
//tinyjson:json
type IDRange struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

// ContractInfo is the full read surface returned by get_info.
//
//tinyjson:json
type ContractInfo struct {
	Name           string      `json:"name"`
	Symbol         string      `json:"symbol"`
	Cost           float64     `json:"cost"`
	MaxSupply      uint64      `json:"maxSupply"`
	TotalSupply    uint64      `json:"totalSupply"`
	AllowMintingOn int64       `json:"allowMintingOn"`
	BaseURI        string      `json:"baseUri"`
	Owner          sdk.Address `json:"owner"`
	WhitelistOnly  bool        `json:"whitelistOnly"`
	MaxMintAmount  uint64      `json:"maxMintAmount"`
}

// InitArgs carries the decoded contract_init payload.
type InitArgs struct {
	Name           string
	Symbol         string
	Cost           Amount
	MaxSupply      uint64
	AllowMintingOn int64
	BaseURI        string
}

// -----------------------------------------------------------------------------
// Wrapper Conversions
// -----------------------------------------------------------------------------

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
