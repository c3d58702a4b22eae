package contract

import (
	"fmt"
	"strconv"

	"dapp_punks/sdk"
)

// getTreasuryBalance retrieves the accumulated mint proceeds held by the contract.
func getTreasuryBalance() Amount {
	dataPtr := sdk.StateGetObject(TreasuryKey)
	if dataPtr == nil {
		return 0
	}

	balance, err := strconv.ParseInt(*dataPtr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setTreasuryBalance sets the treasury balance.
func setTreasuryBalance(amount Amount) {
	value := fmt.Sprintf("%d", amount)
	sdk.StateSetObject(TreasuryKey, value)
}

// creditTreasury adds mint proceeds to the treasury. Internal only, there is
// no entry point that deposits into the treasury directly.
func creditTreasury(amount Amount) {
	current := getTreasuryBalance()
	setTreasuryBalance(current + amount)
}
