package abi

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Extract reads the declaration list from a JSON document. The document is
// either the list itself or an object carrying it under "abi", as compiler
// artifacts do.
func Extract(raw []byte) ([]RawDeclaration, error) {
	var value json.RawMessage
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errors.Wrap(ErrMalformedInput, "not a json")
	}
	value = bytes.TrimSpace(value)
	if falsy(value) {
		return nil, errors.Wrap(ErrMalformedInput, "not a json")
	}

	switch value[0] {
	case '[':
		return decodeDeclarations(value)
	case '{':
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(value, &artifact); err != nil {
			return nil, errors.Wrap(ErrMalformedInput, "decoding artifact")
		}
		if len(artifact.ABI) > 0 && artifact.ABI[0] == '[' {
			return decodeDeclarations(artifact.ABI)
		}
	}
	return nil, errors.Wrap(ErrMalformedInput, "not a valid ABI")
}

func decodeDeclarations(list json.RawMessage) ([]RawDeclaration, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(list, &elements); err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "decoding declarations: %s", err)
	}

	decls := make([]RawDeclaration, 0, len(elements))
	for i, element := range elements {
		if string(bytes.TrimSpace(element)) == "null" {
			return nil, errors.Wrapf(ErrMalformedInput, "declaration %d is null", i)
		}

		var decl RawDeclaration
		if err := json.Unmarshal(element, &decl); err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "decoding declaration %d: %s", i, err)
		}
		if decl.Kind == "" {
			decl.Kind = KindFunction
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func falsy(value json.RawMessage) bool {
	switch string(value) {
	case "null", "false", `""`:
		return true
	}
	var n float64
	if err := json.Unmarshal(value, &n); err == nil {
		return n == 0
	}
	return false
}
