package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapp_punks/contract"
	"dapp_punks/sdk"
)

func TestWithdrawSweepsTreasuryToOwner(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)

	mintAs(minter, 3, 3*mintCost)

	empty := ""
	ret := callAs(deployer, openTime, nil, func() *string {
		return contract.Withdraw(&empty)
	})
	require.NotNil(t, ret)
	assert.Contains(t, *ret, deployer)

	assert.Equal(t, int64(30000), sdk.GetBalance(sdk.Address(deployer), sdk.AssetHive))
	assert.Equal(t, int64(0), sdk.GetBalance(sdk.MockContractAccount, sdk.AssetHive))

	logs := sdk.MockLogs()
	assert.Contains(t, logs[len(logs)-1], "wd|")
	assert.Contains(t, logs[len(logs)-1], "to:"+deployer)
}

func TestWithdrawRejectsEmptyTreasury(t *testing.T) {
	initCollection(t)

	empty := ""
	requireRevert(t, "nothing_to_withdraw", func() {
		callAs(deployer, openTime, nil, func() *string {
			return contract.Withdraw(&empty)
		})
	})
}

func TestWithdrawRejectsDrainedTreasury(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)

	mintAs(minter, 1, mintCost)

	empty := ""
	callAs(deployer, openTime, nil, func() *string {
		return contract.Withdraw(&empty)
	})

	// a second sweep finds nothing
	requireRevert(t, "nothing_to_withdraw", func() {
		callAs(deployer, openTime, nil, func() *string {
			return contract.Withdraw(&empty)
		})
	})
}

func TestWithdrawIsOwnerOnly(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)

	mintAs(minter, 1, mintCost)

	empty := ""
	requireRevert(t, "unauthorized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.Withdraw(&empty)
		})
	})

	// funds stayed put
	assert.Equal(t, int64(10000), sdk.GetBalance(sdk.MockContractAccount, sdk.AssetHive))
}

func TestTreasuryAccumulatesAcrossMints(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)
	fundMinter(stranger, 100)

	mintAs(minter, 2, 2*mintCost)
	mintAs(stranger, 1, mintCost+5)

	empty := ""
	callAs(deployer, openTime, nil, func() *string {
		return contract.Withdraw(&empty)
	})

	// 20 + 15 hive, overpayment included
	assert.Equal(t, int64(35000), sdk.GetBalance(sdk.Address(deployer), sdk.AssetHive))
}
