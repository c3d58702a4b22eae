package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapp_punks/contract"
	"dapp_punks/sdk"
)

func TestInitStoresCollectionConfig(t *testing.T) {
	initCollection(t)

	empty := ""
	ret := callAs(stranger, openTime, nil, func() *string {
		return contract.GetInfo(&empty)
	})
	require.NotNil(t, ret)
	assert.Contains(t, *ret, `"name":"Dapp Punks"`)
	assert.Contains(t, *ret, `"symbol":"DP"`)
	assert.Contains(t, *ret, `"cost":10`)
	assert.Contains(t, *ret, fmt.Sprintf(`"maxSupply":%d`, maxSupply))
	assert.Contains(t, *ret, `"totalSupply":0`)
	assert.Contains(t, *ret, fmt.Sprintf(`"allowMintingOn":%d`, openTime))
	assert.Contains(t, *ret, fmt.Sprintf(`"owner":"%s"`, deployer))
	assert.Contains(t, *ret, `"whitelistOnly":true`)
	assert.Contains(t, *ret, `"maxMintAmount":5`)

	logs := sdk.MockLogs()
	require.NotEmpty(t, logs)
	assert.Equal(t, "in|by:"+deployer, logs[0])
}

func TestInitRejectsSecondCall(t *testing.T) {
	initCollection(t)

	payload := fmt.Sprintf("Other|OT|1.000|10|%d|ipfs://other/", openTime)
	requireAbort(t, "already initialized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.ContractInit(&payload)
		})
	})
}

func TestInitRejectsMalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"missing fields":  "Dapp Punks|DP|10.000",
		"empty name":      fmt.Sprintf("|DP|10.000|25|%d|ipfs://punks/", openTime),
		"empty symbol":    fmt.Sprintf("Dapp Punks||10.000|25|%d|ipfs://punks/", openTime),
		"zero max supply": fmt.Sprintf("Dapp Punks|DP|10.000|0|%d|ipfs://punks/", openTime),
		"bad timestamp":   "Dapp Punks|DP|10.000|25|soon|ipfs://punks/",
		"empty base uri":  fmt.Sprintf("Dapp Punks|DP|10.000|25|%d|", openTime),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			sdk.MockReset()
			p := payload
			requireAbort(t, "", func() {
				callAs(deployer, openTime, nil, func() *string {
					return contract.ContractInit(&p)
				})
			})
		})
	}
}

func TestCallsBeforeInitAbort(t *testing.T) {
	sdk.MockReset()

	payload := "1"
	requireAbort(t, "not initialized", func() {
		callAs(minter, openTime, nil, func() *string {
			return contract.Mint(&payload)
		})
	})
}
