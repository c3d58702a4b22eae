package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Payment Asset
// -----------------------------------------------------------------------------

// PaymentAsset is the only asset the collection accepts for mints and pays out
// on withdraw.
const PaymentAsset = sdk.AssetHive

// validAssets lists the asset tickers accepted inside transfer.allow intents.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits the collection name size.
	MaxNameLength = 100
	// MaxSymbolLength limits the ticker symbol size.
	MaxSymbolLength = 20
	// MaxURILength limits the base URI size.
	MaxURILength = 500
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackMaxMintAmount caps tokens per mint call until the owner changes it.
	FallbackMaxMintAmount = 5
)

// -----------------------------------------------------------------------------
// Singleton Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the immutable collection config blob.
	ContractConfigKey = "cfg"
	// SupplyStateKey stores the mutable supply counters.
	SupplyStateKey = "supply"
	// TreasuryKey stores the accumulated mint proceeds.
	TreasuryKey = "treasury"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kWhitelistEntry flags addresses approved for gated minting.
	kWhitelistEntry byte = 0x01
	// kTokenOwner stores the owning address per token id.
	kTokenOwner byte = 0x10
	// kHolderBalance counts tokens held per address.
	kHolderBalance byte = 0x11
	// kHolderTokens prefixes the chunked per-holder token id index.
	kHolderTokens byte = 0x12
)
