package contract

import (
	"fmt"
	"strconv"
	"strings"

	"dapp_punks/sdk"
)

// decodeInitArgs unpacks the pipe-delimited payload used for contract_init calls.
// Format: name|symbol|cost|maxSupply|allowMintingOn|baseURI
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 6 {
		sdk.Abort("init payload requires name|symbol|cost|maxSupply|allowMintingOn|baseURI")
	}

	args := &InitArgs{
		Name:   strings.TrimSpace(parts[0]),
		Symbol: strings.TrimSpace(parts[1]),
	}
	if args.Name == "" {
		sdk.Abort("collection name cannot be empty")
	}
	if len(args.Name) > MaxNameLength {
		sdk.Abort(fmt.Sprintf("collection name exceeds maximum length of %d characters", MaxNameLength))
	}
	if args.Symbol == "" {
		sdk.Abort("collection symbol cannot be empty")
	}
	if len(args.Symbol) > MaxSymbolLength {
		sdk.Abort(fmt.Sprintf("collection symbol exceeds maximum length of %d characters", MaxSymbolLength))
	}

	cost := parseFloatField(parts[2], "cost")
	if cost < 0 {
		sdk.Abort("invalid cost")
	}
	args.Cost = FloatToAmount(cost)

	args.MaxSupply = parseUintField(parts[3], "max supply")
	if args.MaxSupply < 1 {
		sdk.Abort("max supply must be at least 1")
	}

	allowOn := strings.TrimSpace(parts[4])
	ts, ok := parseTimestamp(allowOn)
	if !ok {
		sdk.Abort("invalid minting open timestamp")
	}
	args.AllowMintingOn = ts

	args.BaseURI = strings.TrimSpace(parts[5])
	if args.BaseURI == "" {
		sdk.Abort("base URI cannot be empty")
	}
	if len(args.BaseURI) > MaxURILength {
		sdk.Abort(fmt.Sprintf("base URI exceeds maximum length of %d characters", MaxURILength))
	}
	return args
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseFloatField trims the input and aborts with a friendly field name on errors.
func parseFloatField(val string, field string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return -1
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return f
}

// parseUintField is the uint variant used for quantities and ids.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAddressField validates the address shape before handing it to state helpers.
func parseAddressField(val string, field string) sdk.Address {
	addr := AddressFromString(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return addr
}

// parseFlagField only accepts explicit truthy/falsy tokens so typos dont flip gates silently.
func parseFlagField(val string, field string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return false
}

// parseAddressList accepts comma/semicolon separated addresses and normalizes them.
func parseAddressList(val string) []sdk.Address {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	parts := strings.FieldsFunc(val, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n' || r == '\t'
	})
	seen := map[string]struct{}{}
	addresses := make([]sdk.Address, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		addresses = append(addresses, parseAddressField(part, "whitelist address"))
	}
	if len(addresses) == 0 {
		return nil
	}
	return addresses
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }
