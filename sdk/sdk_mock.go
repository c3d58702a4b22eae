//go:build !wasm

package sdk

import "strconv"

// Host mock for non-wasm builds. It re-implements the whole host surface on
// top of an in-memory kv store and a tiny asset ledger so the contract can be
// exercised with plain `go test` - no chain node, no compiled wasm artifact.

// MockContractAccount is the account the mock ledger credits on HiveDraw and
// debits on HiveTransfer, standing in for the deployed contract address.
const MockContractAccount Address = "contract:dapppunks"

// AbortError is the panic value raised by Abort under the mock host.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string {
	return "abort: " + e.Msg
}

// RevertError is the panic value raised by Revert under the mock host. Tests
// match on Symbol to assert the failure kind.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

var (
	mockState    map[string]string
	mockBalances map[string]int64
	mockLogs     []string
	mockEnv      Env
)

func init() {
	MockReset()
}

// MockReset wipes kv storage, ledger balances, captured logs and the env so
// sequential tests never leak state into each other.
func MockReset() {
	mockState = map[string]string{}
	mockBalances = map[string]int64{}
	mockLogs = nil
	mockEnv = Env{
		ContractId: MockContractAccount.String(),
		TxId:       "tx-0",
		BlockId:    "block-0",
		Timestamp:  "2025-01-01T00:00:00",
	}
}

// MockSetEnv installs the environment returned by GetEnv for the next calls.
func MockSetEnv(env Env) {
	mockEnv = env
}

// MockDeposit seeds the ledger so callers have funds for transfer.allow draws.
func MockDeposit(addr Address, amount int64, asset Asset) {
	mockBalances[balanceKey(addr, asset)] += amount
}

// MockLogs returns a copy of every line written through Log so far.
func MockLogs() []string {
	return append([]string(nil), mockLogs...)
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// --- host surface, mock implementations ---

func Log(s string) {
	mockLogs = append(mockLogs, s)
}

func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return mockEnv
}

func GetEnvKey(key string) *string {
	switch key {
	case "contract.id":
		v := mockEnv.ContractId
		return &v
	case "tx.id":
		v := mockEnv.TxId
		return &v
	case "block.id":
		v := mockEnv.BlockId
		return &v
	case "block.timestamp":
		v := mockEnv.Timestamp
		return &v
	default:
		return nil
	}
}

func GetBalance(address Address, asset Asset) int64 {
	return mockBalances[balanceKey(address, asset)]
}

// HiveDraw mirrors the on-chain behavior: the whole call fails when the sender
// cannot cover the draw, so nothing written earlier survives.
func HiveDraw(amount int64, asset Asset) {
	from := mockEnv.Sender.Address
	key := balanceKey(from, asset)
	if mockBalances[key] < amount {
		Abort("insufficient balance for draw: " + strconv.FormatInt(amount, 10))
	}
	mockBalances[key] -= amount
	mockBalances[balanceKey(MockContractAccount, asset)] += amount
}

// HiveTransfer moves contract-held funds to a user address, failing the call
// when the contract account cannot cover it.
func HiveTransfer(to Address, amount int64, asset Asset) {
	key := balanceKey(MockContractAccount, asset)
	if mockBalances[key] < amount {
		Abort("insufficient contract balance for transfer: " + strconv.FormatInt(amount, 10))
	}
	mockBalances[key] -= amount
	mockBalances[balanceKey(to, asset)] += amount
}
