package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Minting
// -----------------------------------------------------------------------------

// Mint issues the requested number of tokens to the caller.
// Payload: quantity. Payment rides along as a transfer.allow intent whose
// limit is the attached amount.
//
// Every check runs before the first write so a revert never leaves partial
// state behind. Overpaying is allowed and the surplus stays in the treasury,
// there are no refunds.
func Mint(payload *string) *string {
	requireInitialized()
	cfg := loadContractConfig()
	sender := getSenderAddress()

	quantity := parseUintField(unwrapPayload(payload, "mint payload requires quantity"), "quantity")

	if nowUnix() < cfg.AllowMintingOn {
		sdk.Revert("minting has not opened yet", ErrMintingNotOpen)
	}
	if !isAuthorizedToMint(cfg, sender) {
		sdk.Revert("address is not whitelisted", ErrNotWhitelisted)
	}

	payment := attachedPayment()
	cost := cfg.Cost * Amount(quantity)
	if payment < cost {
		sdk.Revert("attached payment does not cover the mint cost", ErrInsufficientPay)
	}

	ids := reserveTokens(cfg, quantity)

	if payment > 0 {
		sdk.HiveDraw(AmountToInt64(payment), PaymentAsset)
	}
	for id := ids.From; id <= ids.To; id++ {
		assignToken(id, sender)
	}
	creditTreasury(payment)

	emitMintEvent(ids.From, ids.To, sender.String(), payment)

	return strptr(ToJSON(ids, "id range"))
}

// SetMaxMintAmount updates the per-call mint limit.
// Payload: amount (uint >= 1). Owner only.
func SetMaxMintAmount(payload *string) *string {
	requireInitialized()
	requireOwner()

	amount := parseUintField(unwrapPayload(payload, "payload requires amount"), "amount")
	setMaxMintAmount(amount)

	emitMaxMintEvent(amount)

	return strptr("max mint amount set to " + UInt64ToString(amount))
}
