package contract

import (
	"fmt"

	"dapp_punks/sdk"
)

// emitInitEvent leaves a single "in" line so explorers catch the collection birth.
func emitInitEvent(ownerAddress string) {
	sdk.Log(fmt.Sprintf(
		"in|by:%s",
		ownerAddress,
	))
}

// emitMintEvent logs the id span plus payment so supply can be replayed from logs only.
func emitMintEvent(fromID uint64, toID uint64, minterAddress string, payment Amount) {
	sdk.Log(fmt.Sprintf(
		"nm|from:%d|to:%d|by:%s|am:%f",
		fromID,
		toID,
		minterAddress,
		AmountToFloat(payment),
	))
}

// emitWithdrawEvent tells indexing bots the treasury got swept to the owner.
func emitWithdrawEvent(amount Amount, ownerAddress string) {
	sdk.Log(fmt.Sprintf(
		"wd|am:%f|to:%s",
		AmountToFloat(amount),
		ownerAddress,
	))
}

// emitWhitelistAddedEvent pings one short line per newly approved address.
func emitWhitelistAddedEvent(address string) {
	sdk.Log(fmt.Sprintf(
		"wl+|%s",
		address,
	))
}

// emitWhitelistRemovedEvent mirrors the add ping for revoked approvals.
func emitWhitelistRemovedEvent(address string) {
	sdk.Log(fmt.Sprintf(
		"wl-|%s",
		address,
	))
}

// emitWhitelistOnlyEvent marks gate flips with a single bool char.
func emitWhitelistOnlyEvent(enabled bool) {
	flag := "0"
	if enabled {
		flag = "1"
	}
	sdk.Log(fmt.Sprintf(
		"wlo|%s",
		flag,
	))
}

// emitMaxMintEvent records per-call limit changes so auditors can track sensitive flips.
func emitMaxMintEvent(amount uint64) {
	sdk.Log(fmt.Sprintf(
		"mm|%d",
		amount,
	))
}

// emitTransferEvent traces secondary token moves between holders.
func emitTransferEvent(tokenID uint64, fromAddress string, toAddress string) {
	sdk.Log(fmt.Sprintf(
		"tx|id:%d|from:%s|to:%s",
		tokenID,
		fromAddress,
		toAddress,
	))
}
