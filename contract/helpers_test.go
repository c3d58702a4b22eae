package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dapp_punks/contract"
	"dapp_punks/sdk"
)

const (
	deployer = "hive:deployer"
	minter   = "hive:minter"
	stranger = "hive:stranger"

	// collection defaults used across scenarios
	mintCost  = 10.0
	maxSupply = 25
	openTime  = int64(1700000000)
	baseURI   = "ipfs://punks/"
)

var txCounter int

// callAs runs fn with a fresh transaction env for the given sender. Every call
// gets a unique tx.id so the contract's per-tx env cache never serves stale data.
func callAs(sender string, timestamp int64, intents []sdk.Intent, fn func() *string) *string {
	txCounter++
	sdk.MockSetEnv(sdk.Env{
		ContractId: sdk.MockContractAccount.String(),
		TxId:       fmt.Sprintf("tx-%d", txCounter),
		BlockId:    fmt.Sprintf("block-%d", txCounter),
		Timestamp:  fmt.Sprintf("%d", timestamp),
		Sender:     sdk.Sender{Address: sdk.Address(sender)},
		Caller:     sdk.Caller{Address: sdk.Address(sender)},
		Intents:    intents,
	})
	return fn()
}

// paymentIntent builds the transfer.allow intent carrying a hive payment.
func paymentIntent(limit float64) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": fmt.Sprintf("%.3f", limit),
			"token": sdk.AssetHive.String(),
		},
	}}
}

// initCollection resets the mock host and initializes a fresh collection as deployer.
func initCollection(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	payload := fmt.Sprintf("Dapp Punks|DP|%.3f|%d|%d|%s", mintCost, maxSupply, openTime, baseURI)
	ret := callAs(deployer, openTime, nil, func() *string {
		return contract.ContractInit(&payload)
	})
	require.NotNil(t, ret)
	require.Contains(t, *ret, "initialized")
}

// openMinting disables the whitelist gate so tests can focus on other checks.
func openMinting(t *testing.T) {
	t.Helper()
	payload := "0"
	callAs(deployer, openTime, nil, func() *string {
		return contract.WhitelistSetOnly(&payload)
	})
}

// mintAs runs a mint with payment attached, after the gate opened.
func mintAs(sender string, quantity uint64, payment float64) *string {
	payload := fmt.Sprintf("%d", quantity)
	return callAs(sender, openTime, paymentIntent(payment), func() *string {
		return contract.Mint(&payload)
	})
}

// requireRevert asserts fn panics with the given revert symbol.
func requireRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q but call succeeded", symbol)
		revertErr, ok := r.(*sdk.RevertError)
		require.True(t, ok, "expected revert %q but got panic %v", symbol, r)
		require.Equal(t, symbol, revertErr.Symbol)
	}()
	fn()
}

// requireAbort asserts fn panics with a host abort containing the message.
func requireAbort(t *testing.T, msgPart string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort but call succeeded")
		abortErr, ok := r.(*sdk.AbortError)
		require.True(t, ok, "expected abort but got panic %v", r)
		require.Contains(t, abortErr.Msg, msgPart)
	}()
	fn()
}
