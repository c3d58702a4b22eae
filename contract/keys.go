package contract

import "dapp_punks/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// whitelistEntryKey flags a single approved address under the 0x01 prefix.
func whitelistEntryKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kWhitelistEntry)
	buf = append(buf, addrStr...)
	return string(buf)
}

// tokenOwnerKey builds the storage key for a token's owner slot by id.
func tokenOwnerKey(id uint64) string {
	var buf [9]byte
	buf[0] = kTokenOwner
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// holderBalanceKey counts tokens per address under 0x11 so balance reads stay O(1).
func holderBalanceKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kHolderBalance)
	buf = append(buf, addrStr...)
	return string(buf)
}

// holderTokensBase is the chunked index base key listing a holder's token ids.
func holderTokensBase(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kHolderTokens)
	buf = append(buf, addrStr...)
	return string(buf)
}
