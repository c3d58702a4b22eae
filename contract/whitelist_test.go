package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapp_punks/contract"
	"dapp_punks/sdk"
)

func isWhitelistedView(addr string) string {
	a := addr
	ret := callAs(stranger, openTime, nil, func() *string {
		return contract.IsWhitelisted(&a)
	})
	return *ret
}

func TestWhitelistAddAndRemove(t *testing.T) {
	initCollection(t)

	addr := minter
	assert.Equal(t, "false", isWhitelistedView(minter))

	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistAdd(&addr)
	})
	assert.Equal(t, "true", isWhitelistedView(minter))

	// adding again is a no-op
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistAdd(&addr)
	})
	assert.Equal(t, "true", isWhitelistedView(minter))

	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistRemove(&addr)
	})
	assert.Equal(t, "false", isWhitelistedView(minter))

	// removing an absent address is a no-op as well
	ret := callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistRemove(&addr)
	})
	require.NotNil(t, ret)
}

func TestWhitelistAddMany(t *testing.T) {
	initCollection(t)

	payload := "hive:alice;hive:bob;hive:alice;hive:carol"
	ret := callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistAddMany(&payload)
	})
	require.NotNil(t, ret)
	assert.Contains(t, *ret, "3 addresses")

	assert.Equal(t, "true", isWhitelistedView("hive:alice"))
	assert.Equal(t, "true", isWhitelistedView("hive:bob"))
	assert.Equal(t, "true", isWhitelistedView("hive:carol"))
	assert.Equal(t, "false", isWhitelistedView("hive:dave"))
}

func TestWhitelistEntriesAreOwnerOnly(t *testing.T) {
	initCollection(t)

	addr := minter
	requireRevert(t, "unauthorized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.WhitelistAdd(&addr)
		})
	})
	requireRevert(t, "unauthorized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.WhitelistRemove(&addr)
		})
	})
	flag := "0"
	requireRevert(t, "unauthorized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.WhitelistSetOnly(&flag)
		})
	})
}

func TestWhitelistSetOnlyTogglesGate(t *testing.T) {
	initCollection(t)
	fundMinter(minter, 100)

	// gate starts closed
	requireRevert(t, "not_whitelisted", func() {
		mintAs(minter, 1, mintCost)
	})

	flag := "0"
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistSetOnly(&flag)
	})

	ret := mintAs(minter, 1, mintCost)
	require.NotNil(t, ret)

	flag = "1"
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistSetOnly(&flag)
	})

	requireRevert(t, "not_whitelisted", func() {
		mintAs(minter, 1, mintCost)
	})
}

func TestWhitelistSetOnlyRejectsGarbage(t *testing.T) {
	initCollection(t)

	flag := "maybe"
	requireAbort(t, "invalid whitelist flag", func() {
		callAs(deployer, openTime, nil, func() *string {
			return contract.WhitelistSetOnly(&flag)
		})
	})
}

func TestWhitelistEvents(t *testing.T) {
	initCollection(t)

	addr := minter
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistAdd(&addr)
	})
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistRemove(&addr)
	})
	flag := "0"
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistSetOnly(&flag)
	})

	logs := sdk.MockLogs()
	assert.Contains(t, logs, "wl+|"+minter)
	assert.Contains(t, logs, "wl-|"+minter)
	assert.Contains(t, logs, "wlo|0")
}
