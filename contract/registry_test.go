package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dapp_punks/contract"
	"dapp_punks/sdk"
)

func TestOwnerOfRejectsUnknownTokens(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)
	mintAs(minter, 2, 2*mintCost)

	for _, id := range []string{"0", "3", "9999"} {
		p := id
		requireRevert(t, "unknown_token", func() {
			callAs(stranger, openTime, nil, func() *string {
				return contract.OwnerOf(&p)
			})
		})
	}
}

func TestBalanceOfUnknownAddressIsZero(t *testing.T) {
	initCollection(t)

	addr := stranger
	ret := callAs(stranger, openTime, nil, func() *string {
		return contract.BalanceOf(&addr)
	})
	assert.Equal(t, "0", *ret)

	wallet := callAs(stranger, openTime, nil, func() *string {
		return contract.WalletOfOwner(&addr)
	})
	assert.Equal(t, "[]", *wallet)
}

func TestTokenURIBuildsFromBaseURI(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)
	mintAs(minter, 2, 2*mintCost)

	p := "2"
	ret := callAs(stranger, openTime, nil, func() *string {
		return contract.TokenURI(&p)
	})
	assert.Equal(t, baseURI+"2.json", *ret)

	p = "3"
	requireRevert(t, "unknown_token", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.TokenURI(&p)
		})
	})
}

func TestTransferMovesTokenBetweenHolders(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)
	mintAs(minter, 3, 3*mintCost)

	payload := "2|" + stranger
	ret := callAs(minter, openTime, nil, func() *string {
		return contract.Transfer(&payload)
	})
	require.NotNil(t, ret)

	p := "2"
	owner := callAs(stranger, openTime, nil, func() *string {
		return contract.OwnerOf(&p)
	})
	assert.Equal(t, stranger, *owner)

	addr := minter
	wallet := callAs(stranger, openTime, nil, func() *string {
		return contract.WalletOfOwner(&addr)
	})
	assert.Equal(t, "[1,3]", *wallet)

	addr = stranger
	wallet = callAs(stranger, openTime, nil, func() *string {
		return contract.WalletOfOwner(&addr)
	})
	assert.Equal(t, "[2]", *wallet)

	bal := callAs(stranger, openTime, nil, func() *string {
		return contract.BalanceOf(&addr)
	})
	assert.Equal(t, "1", *bal)

	logs := sdk.MockLogs()
	assert.Contains(t, logs, "tx|id:2|from:"+minter+"|to:"+stranger)
}

func TestTransferRequiresOwnership(t *testing.T) {
	initCollection(t)
	openMinting(t)
	fundMinter(minter, 100)
	mintAs(minter, 1, mintCost)

	payload := "1|" + minter
	requireRevert(t, "unauthorized", func() {
		callAs(stranger, openTime, nil, func() *string {
			return contract.Transfer(&payload)
		})
	})
}

func TestTransferRejectsUnknownToken(t *testing.T) {
	initCollection(t)
	openMinting(t)

	payload := "1|" + stranger
	requireRevert(t, "unknown_token", func() {
		callAs(minter, openTime, nil, func() *string {
			return contract.Transfer(&payload)
		})
	})
}
