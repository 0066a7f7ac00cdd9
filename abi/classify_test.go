package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	decls, err := Extract([]byte(transferStateABI))
	require.NoError(t, err)

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Empty(t, diagnostics)

	require.Empty(t, contract.Constants)
	require.Equal(t, []ConstantFunctionDeclaration{{
		Name:        "getStateOf",
		Inputs:      []Parameter{{Name: "txId", Type: String{}}},
		Outputs:     []Type{String{}},
		OutputNames: []string{""},
	}}, contract.ConstantFunctions)
	require.Equal(t, []FunctionDeclaration{{
		Name:        "start",
		Inputs:      []Parameter{{Name: "txId", Type: String{}}},
		Outputs:     []Type{Void{}},
		OutputNames: []string{""},
		Payable:     false,
	}}, contract.Functions)
}

func TestClassifyBuckets(t *testing.T) {
	decls := []RawDeclaration{
		{
			Kind:     KindFunction,
			Name:     "totalSupply",
			Constant: true,
			Outputs:  []RawParameter{{Name: "", Type: "uint256"}},
		},
		{
			Kind:     KindFunction,
			Name:     "reserves",
			Constant: true,
			Outputs: []RawParameter{
				{Name: "reserve0", Type: "uint112"},
				{Name: "reserve1", Type: "uint112"},
			},
		},
		{
			Kind:     KindFunction,
			Name:     "ping",
			Constant: true,
		},
		{
			Kind:    KindFunction,
			Name:    "deposit",
			Payable: true,
		},
		{
			Kind:            KindFunction,
			Name:            "balanceOf",
			StateMutability: "view",
			Inputs:          []RawParameter{{Name: "owner", Type: "address"}},
			Outputs:         []RawParameter{{Name: "", Type: "uint256"}},
		},
		{
			Kind:            KindFunction,
			Name:            "mint",
			StateMutability: "payable",
			Inputs:          []RawParameter{{Name: "to", Type: "address"}},
		},
	}

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Empty(t, diagnostics)

	require.Equal(t, []ConstantDeclaration{
		{Name: "totalSupply", Output: UnsignedInteger{Bits: 256}},
	}, contract.Constants)

	require.Len(t, contract.ConstantFunctions, 3)
	reserves := contract.ConstantFunctions[0]
	require.Equal(t, "reserves", reserves.Name)
	require.Empty(t, reserves.Inputs)
	require.Equal(t, []Type{UnsignedInteger{Bits: 112}, UnsignedInteger{Bits: 112}}, reserves.Outputs)
	require.Equal(t, []string{"reserve0", "reserve1"}, reserves.OutputNames)

	ping := contract.ConstantFunctions[1]
	require.Equal(t, "ping", ping.Name)
	require.Equal(t, []Type{Void{}}, ping.Outputs)

	balanceOf := contract.ConstantFunctions[2]
	require.Equal(t, []Parameter{{Name: "owner", Type: Address{}}}, balanceOf.Inputs)

	require.Len(t, contract.Functions, 2)
	require.Equal(t, "deposit", contract.Functions[0].Name)
	require.True(t, contract.Functions[0].Payable)
	require.Equal(t, "mint", contract.Functions[1].Name)
	require.True(t, contract.Functions[1].Payable)
}

func TestClassifyOverloadDropped(t *testing.T) {
	decls := []RawDeclaration{
		{
			Kind:   KindFunction,
			Name:   "transfer",
			Inputs: []RawParameter{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
		},
		{
			Kind:     KindFunction,
			Name:     "transfer",
			Constant: true,
			Inputs:   []RawParameter{{Name: "to", Type: "address"}},
			Outputs:  []RawParameter{{Name: "", Type: "bool"}},
		},
	}

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Equal(t, []Diagnostic{{Kind: OverloadDropped, Name: "transfer"}}, diagnostics)
	require.Empty(t, contract.ConstantFunctions)
	require.Len(t, contract.Functions, 1)
	require.Equal(t, []Parameter{
		{Name: "to", Type: Address{}},
		{Name: "amount", Type: UnsignedInteger{Bits: 256}},
	}, contract.Functions[0].Inputs)
}

func TestClassifyOverloadAcrossBuckets(t *testing.T) {
	decls := []RawDeclaration{
		{Kind: KindFunction, Name: "owner", Constant: true, Outputs: []RawParameter{{Type: "address"}}},
		{Kind: KindFunction, Name: "owner", Inputs: []RawParameter{{Name: "next", Type: "address"}}},
	}

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)
	require.Equal(t, OverloadDropped, diagnostics[0].Kind)
	require.Len(t, contract.Constants, 1)
	require.Empty(t, contract.Functions)
}

func TestClassifyTypeParseFailure(t *testing.T) {
	decls := []RawDeclaration{
		{Kind: KindFunction, Name: "broken", Inputs: []RawParameter{{Name: "x", Type: "uint7"}}},
		{Kind: KindFunction, Name: "unknown", Constant: true, Outputs: []RawParameter{{Type: "tuple"}}},
		{Kind: KindFunction, Name: "fine", Inputs: []RawParameter{{Name: "x", Type: "uint8"}}},
		{Kind: KindFunction, Name: "broken", Inputs: []RawParameter{{Name: "x", Type: "uint8"}}},
	}

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Len(t, diagnostics, 2)

	require.Equal(t, TypeParseFailed, diagnostics[0].Kind)
	require.Equal(t, "broken", diagnostics[0].Name)
	require.ErrorIs(t, diagnostics[0].Err, ErrInvalidTypeParameter)

	require.Equal(t, TypeParseFailed, diagnostics[1].Kind)
	require.Equal(t, "unknown", diagnostics[1].Name)
	require.ErrorIs(t, diagnostics[1].Err, ErrUnknownType)

	// A dropped declaration does not claim its name.
	require.Len(t, contract.Functions, 2)
	require.Equal(t, "fine", contract.Functions[0].Name)
	require.Equal(t, "broken", contract.Functions[1].Name)
	require.Empty(t, contract.Constants)
}

func TestClassifySkipsNonFunctions(t *testing.T) {
	decls := []RawDeclaration{
		{Kind: KindConstructor, Name: "", Inputs: []RawParameter{{Name: "owner", Type: "address"}}},
		{Kind: KindEvent, Name: "Transfer", Inputs: []RawParameter{{Name: "from", Type: "not-a-type"}}},
		{Kind: KindFallback, Payable: true},
		{Kind: KindEvent, Name: "Transfer"},
	}

	contract, diagnostics, err := Classify(decls)
	require.NoError(t, err)
	require.Empty(t, diagnostics)
	require.Empty(t, contract.Constants)
	require.Empty(t, contract.ConstantFunctions)
	require.Empty(t, contract.Functions)
}

func TestClassifyUnrecognizedKind(t *testing.T) {
	decls := []RawDeclaration{
		{Kind: KindFunction, Name: "ok"},
		{Kind: "receive"},
	}

	contract, _, err := Classify(decls)
	require.ErrorIs(t, err, ErrUnrecognizedDeclarationKind)
	require.Nil(t, contract)
}

func TestClassifyNamelessFunction(t *testing.T) {
	decls, err := Extract([]byte(`[{}]`))
	require.NoError(t, err)

	contract, _, err := Classify(decls)
	require.ErrorIs(t, err, ErrMalformedInput)
	require.Nil(t, contract)

	contract, _, err = Classify([]RawDeclaration{
		{Kind: KindFunction, Name: "ok"},
		{Kind: KindFunction, Constant: true, Outputs: []RawParameter{{Type: "uint256"}}},
	})
	require.ErrorIs(t, err, ErrMalformedInput)
	require.Nil(t, contract)
}

func TestDiagnosticString(t *testing.T) {
	require.Equal(t, "overloaded function transfer dropped",
		Diagnostic{Kind: OverloadDropped, Name: "transfer"}.String())

	_, err := ParseType("uint7")
	d := Diagnostic{Kind: TypeParseFailed, Name: "broken", Err: err}
	require.Contains(t, d.String(), "function broken skipped")
	require.Contains(t, d.String(), "invalid type parameter")
}
