package abi

import (
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	table := []struct {
		name     string
		expected Type
	}{
		{"bool", Boolean{}},
		{"string", String{}},
		{"address", Address{}},
		{"bytes", Bytes{}},
		{"bytes1", Bytes{Size: 1}},
		{"bytes32", Bytes{Size: 32}},
		{"uint", UnsignedInteger{Bits: 256}},
		{"uint8", UnsignedInteger{Bits: 8}},
		{"uint256", UnsignedInteger{Bits: 256}},
		{"int", SignedInteger{Bits: 256}},
		{"int64", SignedInteger{Bits: 64}},
		{"address[]", Array{Item: Address{}}},
		{"bytes32[4]", Array{Item: Bytes{Size: 32}, Size: 4}},
		{"uint256[3][]", Array{Item: Array{Item: UnsignedInteger{Bits: 256}, Size: 3}}},
		{"bool[][2]", Array{Item: Array{Item: Boolean{}}, Size: 2}},
		{"string[][][]", Array{Item: Array{Item: Array{Item: String{}}}}},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := ParseType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.expected, typ)
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	table := []struct {
		name     string
		expected error
	}{
		{"foo", ErrUnknownType},
		{"", ErrUnknownType},
		{"uintx", ErrUnknownType},
		{"tuple", ErrUnknownType},
		{"fixed128x18", ErrUnknownType},
		{"[]", ErrUnknownType},
		{"uint256]", ErrUnknownType},
		{"uint256[x]", ErrUnknownType},
		{"foo[]", ErrUnknownType},
		{"uint7", ErrInvalidTypeParameter},
		{"uint0", ErrInvalidTypeParameter},
		{"uint264", ErrInvalidTypeParameter},
		{"int12", ErrInvalidTypeParameter},
		{"uint08", ErrInvalidTypeParameter},
		{"bytes0", ErrInvalidTypeParameter},
		{"bytes33", ErrInvalidTypeParameter},
		{"address[0]", ErrInvalidTypeParameter},
		{"uint7[]", ErrInvalidTypeParameter},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseType(tt.name)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestTypeStringMatchesGeth(t *testing.T) {
	names := []string{
		"bool",
		"string",
		"address",
		"bytes",
		"bytes32",
		"uint8",
		"uint256",
		"int128",
		"address[]",
		"bytes32[4]",
		"uint256[3][]",
		"bool[][2]",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			typ, err := ParseType(name)
			require.NoError(t, err)

			expected, err := gethabi.NewType(name, "", nil)
			require.NoError(t, err)
			require.Equal(t, expected.String(), typ.String())
		})
	}
}

func TestTypeStringCanonical(t *testing.T) {
	typ, err := ParseType("uint")
	require.NoError(t, err)
	require.Equal(t, "uint256", typ.String())

	typ, err = ParseType("int[2]")
	require.NoError(t, err)
	require.Equal(t, "int256[2]", typ.String())
}
