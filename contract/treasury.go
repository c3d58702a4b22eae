package contract

import "dapp_punks/sdk"

// -----------------------------------------------------------------------------
// Treasury Withdrawal
// -----------------------------------------------------------------------------

// Withdraw sweeps the accumulated mint proceeds to the owner.
// Payload: unused. Owner only.
//
// The host transfer aborts the whole call on failure, so the zeroed balance
// never survives a transfer that did not happen.
func Withdraw(payload *string) *string {
	requireInitialized()
	owner := requireOwner()

	balance := getTreasuryBalance()
	if balance <= 0 {
		sdk.Revert("treasury is empty", ErrNothingToWithdraw)
	}

	sdk.HiveTransfer(owner, AmountToInt64(balance), PaymentAsset)
	setTreasuryBalance(0)

	emitWithdrawEvent(balance, owner.String())

	return strptr("withdrew treasury to " + owner.String())
}
