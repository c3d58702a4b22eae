//go:build wasm

package main

import "dapp_punks/contract"

// -----------------------------------------------------------------------------
// Wasm export surface
// -----------------------------------------------------------------------------
// Thin wrappers only - all logic lives in the contract package so it stays
// importable from host-side tests.

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return contract.ContractInit(payload) }

//go:wasmexport mint
func Mint(payload *string) *string { return contract.Mint(payload) }

//go:wasmexport withdraw
func Withdraw(payload *string) *string { return contract.Withdraw(payload) }

//go:wasmexport transfer
func Transfer(payload *string) *string { return contract.Transfer(payload) }

//go:wasmexport whitelist_add
func WhitelistAdd(payload *string) *string { return contract.WhitelistAdd(payload) }

//go:wasmexport whitelist_add_many
func WhitelistAddMany(payload *string) *string { return contract.WhitelistAddMany(payload) }

//go:wasmexport whitelist_remove
func WhitelistRemove(payload *string) *string { return contract.WhitelistRemove(payload) }

//go:wasmexport whitelist_set_only
func WhitelistSetOnly(payload *string) *string { return contract.WhitelistSetOnly(payload) }

//go:wasmexport set_max_mint_amount
func SetMaxMintAmount(payload *string) *string { return contract.SetMaxMintAmount(payload) }

//go:wasmexport get_info
func GetInfo(payload *string) *string { return contract.GetInfo(payload) }

//go:wasmexport is_whitelisted
func IsWhitelisted(payload *string) *string { return contract.IsWhitelisted(payload) }

//go:wasmexport owner_of
func OwnerOf(payload *string) *string { return contract.OwnerOf(payload) }

//go:wasmexport balance_of
func BalanceOf(payload *string) *string { return contract.BalanceOf(payload) }

//go:wasmexport wallet_of_owner
func WalletOfOwner(payload *string) *string { return contract.WalletOfOwner(payload) }

//go:wasmexport token_uri
func TokenURI(payload *string) *string { return contract.TokenURI(payload) }
