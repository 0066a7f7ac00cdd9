package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const transferStateABI = `[
	{"constant": false, "inputs": [{"name": "txId", "type": "string"}], "name": "start", "outputs": [], "payable": false, "type": "function"},
	{"constant": true, "inputs": [{"name": "txId", "type": "string"}], "name": "getStateOf", "outputs": [{"name": "", "type": "string"}], "payable": false, "type": "function"},
	{"anonymous": false, "inputs": [{"indexed": false, "name": "txId", "type": "string"}], "name": "TransferStarted", "type": "event"}
]`

func TestExtract(t *testing.T) {
	bare, err := Extract([]byte(transferStateABI))
	require.NoError(t, err)
	require.Len(t, bare, 3)
	require.Equal(t, RawDeclaration{
		Kind:     KindFunction,
		Name:     "getStateOf",
		Constant: true,
		Inputs:   []RawParameter{{Name: "txId", Type: "string"}},
		Outputs:  []RawParameter{{Name: "", Type: "string"}},
	}, bare[1])
	require.Equal(t, KindEvent, bare[2].Kind)

	wrapped, err := Extract([]byte(`{"contractName": "TransferStateRepository", "abi": ` + transferStateABI + `}`))
	require.NoError(t, err)
	require.Equal(t, bare, wrapped)
}

func TestExtractEmptyList(t *testing.T) {
	decls, err := Extract([]byte(" [] "))
	require.NoError(t, err)
	require.Empty(t, decls)
}

func TestExtractDefaultsKindToFunction(t *testing.T) {
	decls, err := Extract([]byte(`[{"name": "owner", "stateMutability": "view", "inputs": [], "outputs": [{"name": "", "type": "address"}]}]`))
	require.NoError(t, err)
	require.Len(t, decls, 1)
	require.Equal(t, KindFunction, decls[0].Kind)
	require.True(t, decls[0].IsConstant())
	require.False(t, decls[0].IsPayable())
}

func TestExtractMalformed(t *testing.T) {
	table := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"NotJSON", "abi: []"},
		{"Truncated", `[{"type": "function"`},
		{"Null", "null"},
		{"False", "false"},
		{"Zero", "0"},
		{"EmptyString", `""`},
		{"Number", "42"},
		{"String", `"abi"`},
		{"ObjectWithoutABI", `{"bytecode": "0x"}`},
		{"ABINotAList", `{"abi": {"type": "function"}}`},
		{"ABINull", `{"abi": null}`},
		{"DeclarationNotAnObject", `[1, 2]`},
		{"NullDeclaration", `[null]`},
		{"NullDeclarationAfterValid", `[{"type": "event", "name": "Transfer"}, null]`},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte(tt.input))
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}
