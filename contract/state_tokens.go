package contract

import (
	"sort"
	"strconv"
	"strings"

	"dapp_punks/sdk"
)

// -----------------------------------------------------------------------------
// Token Ownership State
// -----------------------------------------------------------------------------

// tokenOwner returns the owner of a minted token id, or nil for unminted slots.
func tokenOwner(id uint64) *sdk.Address {
	ptr := sdk.StateGetObject(tokenOwnerKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	addr := AddressFromString(*ptr)
	return &addr
}

// assignToken writes the owner slot for a freshly minted id. The slot must be
// empty, ids are reserved through the supply counter first.
func assignToken(id uint64, to sdk.Address) {
	key := tokenOwnerKey(id)
	if existing := sdk.StateGetObject(key); existing != nil && *existing != "" {
		sdk.Abort("token already assigned: " + UInt64ToString(id))
	}
	sdk.StateSetObject(key, AddressToString(to))
	setCount(holderBalanceKey(to), holderBalance(to)+1)
	addIDToHolderIndex(to, id)
}

// moveToken rewrites a single owner slot and keeps both holder indexes in sync.
func moveToken(id uint64, from sdk.Address, to sdk.Address) {
	sdk.StateSetObject(tokenOwnerKey(id), AddressToString(to))
	setCount(holderBalanceKey(from), holderBalance(from)-1)
	setCount(holderBalanceKey(to), holderBalance(to)+1)
	removeIDFromHolderIndex(from, id)
	addIDToHolderIndex(to, id)
}

// holderBalance counts tokens held by an address.
func holderBalance(addr sdk.Address) uint64 {
	return getCount(holderBalanceKey(addr))
}

// holderTokenIDs collects every id a holder owns, ascending.
func holderTokenIDs(addr sdk.Address) []uint64 {
	ids := getIDsFromHolderIndex(addr)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// -----------------------------------------------------------------------------
// Per-Holder Token Index
// -----------------------------------------------------------------------------
// The index is split into chunks of maxChunkSize entries to avoid overflowing
// the max size of a key/value in the contract state. Chunk values are
// comma-separated decimal ids.

const maxChunkSize = 2500

// chunkCounterKey stores number of chunks for a base index
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount reads the number of chunks for an index
func getChunkCount(baseKey string) int {
	ptr := sdk.StateGetObject(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

// setChunkCount stores the number of chunks
func setChunkCount(baseKey string, n int) {
	sdk.StateSetObject(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// decodeChunk splits a stored chunk value back into ids.
func decodeChunk(value string) []uint64 {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			sdk.Abort("corrupt holder index chunk")
		}
		ids = append(ids, id)
	}
	return ids
}

// encodeChunk joins ids into the stored comma-separated form.
func encodeChunk(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}

// addIDToHolderIndex ensures id exists across all chunks (no duplicates).
func addIDToHolderIndex(addr sdk.Address, id uint64) {
	baseKey := holderTokensBase(addr)
	chunks := getChunkCount(baseKey)
	// search existing chunks for duplicates or free space
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		ids := decodeChunk(*ptr)
		for _, e := range ids {
			if e == id {
				return // already present
			}
		}
		if len(ids) < maxChunkSize {
			ids = append(ids, id)
			sdk.StateSetObject(key, encodeChunk(ids))
			return
		}
	}
	// not found / no space -> create new chunk
	sdk.StateSetObject(chunkKey(baseKey, chunks), encodeChunk([]uint64{id}))
	setChunkCount(baseKey, chunks+1)
}

// removeIDFromHolderIndex removes id from whichever chunk it sits in.
func removeIDFromHolderIndex(addr sdk.Address, id uint64) {
	baseKey := holderTokensBase(addr)
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		ids := decodeChunk(*ptr)
		newIds := ids[:0]
		found := false
		for _, e := range ids {
			if e == id {
				found = true
				continue
			}
			newIds = append(newIds, e)
		}
		if found {
			sdk.StateSetObject(key, encodeChunk(newIds))
			return
		}
	}
}

// getIDsFromHolderIndex collects all ids across all chunks.
func getIDsFromHolderIndex(addr sdk.Address) []uint64 {
	baseKey := holderTokensBase(addr)
	all := []uint64{}
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		all = append(all, decodeChunk(*ptr)...)
	}
	return all
}
