package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:dapppunks").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:init").Domain())
}

func TestAddressType(t *testing.T) {
	assert.Equal(t, AddressTypeHive, Address("hive:alice").Type())
	assert.Equal(t, AddressTypeEVM, Address("did:pkh:eip155:1:0xabc").Type())
	assert.Equal(t, AddressTypeKey, Address("did:key:z6Mk").Type())
	assert.Equal(t, AddressTypeUnknown, Address("alice").Type())
}

func TestAddressIsValid(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("alice").IsValid())
}
