package abi

import (
	"github.com/pkg/errors"
)

// Classify sorts function declarations into constants, constant functions and
// functions, preserving their order of appearance.
//
// Constructors, events and fallbacks are skipped. A declaration whose name was
// already classified, or whose types cannot be parsed, is dropped and reported
// as a Diagnostic. An unknown declaration kind or a function without a name
// fails the whole classification.
func Classify(decls []RawDeclaration) (*Contract, []Diagnostic, error) {
	contract := &Contract{
		Constants:         []ConstantDeclaration{},
		ConstantFunctions: []ConstantFunctionDeclaration{},
		Functions:         []FunctionDeclaration{},
	}
	var diagnostics []Diagnostic

	for _, decl := range decls {
		if !decl.Kind.Known() {
			return nil, diagnostics, errors.Wrapf(ErrUnrecognizedDeclarationKind, "%q", decl.Kind)
		}
		if decl.Kind != KindFunction {
			continue
		}
		if decl.Name == "" {
			return nil, diagnostics, errors.Wrap(ErrMalformedInput, "function without name")
		}

		if contract.Has(decl.Name) {
			diagnostics = append(diagnostics, Diagnostic{Kind: OverloadDropped, Name: decl.Name})
			continue
		}

		err := classifyFunction(contract, decl)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Kind: TypeParseFailed, Name: decl.Name, Err: err})
		}
	}

	return contract, diagnostics, nil
}

func classifyFunction(contract *Contract, decl RawDeclaration) error {
	if decl.IsConstant() && len(decl.Inputs) == 0 && len(decl.Outputs) == 1 {
		output, err := ParseType(decl.Outputs[0].Type)
		if err != nil {
			return errors.Wrapf(err, "output %q", decl.Outputs[0].Name)
		}
		contract.Constants = append(contract.Constants, ConstantDeclaration{
			Name:   decl.Name,
			Output: output,
		})
		return nil
	}

	inputs, err := parseParameters(decl.Inputs)
	if err != nil {
		return err
	}
	outputs, names, err := parseOutputs(decl.Outputs)
	if err != nil {
		return err
	}

	if decl.IsConstant() {
		contract.ConstantFunctions = append(contract.ConstantFunctions, ConstantFunctionDeclaration{
			Name:        decl.Name,
			Inputs:      inputs,
			Outputs:     outputs,
			OutputNames: names,
		})
		return nil
	}

	contract.Functions = append(contract.Functions, FunctionDeclaration{
		Name:        decl.Name,
		Inputs:      inputs,
		Outputs:     outputs,
		OutputNames: names,
		Payable:     decl.IsPayable(),
	})
	return nil
}

func parseParameters(raw []RawParameter) ([]Parameter, error) {
	params := make([]Parameter, 0, len(raw))
	for _, p := range raw {
		typ, err := ParseType(p.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "input %q", p.Name)
		}
		params = append(params, Parameter{Name: p.Name, Type: typ})
	}
	return params, nil
}

// parseOutputs parses each output independently. A declaration without
// outputs has a single Void output.
func parseOutputs(raw []RawParameter) ([]Type, []string, error) {
	if len(raw) == 0 {
		return []Type{Void{}}, []string{""}, nil
	}

	types := make([]Type, 0, len(raw))
	names := make([]string, 0, len(raw))
	for _, p := range raw {
		typ, err := ParseType(p.Type)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "output %q", p.Name)
		}
		types = append(types, typ)
		names = append(names, p.Name)
	}
	return types, names, nil
}
