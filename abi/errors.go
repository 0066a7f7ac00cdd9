package abi

import "github.com/pkg/errors"

var (
	// ErrMalformedInput is returned when a document is not JSON or carries no
	// declaration list.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnrecognizedDeclarationKind is returned when a declaration's type is
	// outside the known vocabulary.
	ErrUnrecognizedDeclarationKind = errors.New("unrecognized declaration kind")

	ErrUnknownType          = errors.New("unknown type")
	ErrInvalidTypeParameter = errors.New("invalid type parameter")
)
