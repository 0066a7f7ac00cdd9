package abi

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	maxIntegerBits = 256
	maxBytesSize   = 32
)

// ParseType parses an ABI type name such as "uint8", "bytes32" or
// "address[2][]" into a Type.
//
// Array suffixes are stripped from the right: the rightmost suffix becomes the
// outermost Array.
func ParseType(name string) (Type, error) {
	if !strings.HasSuffix(name, "]") {
		return parseBaseType(name)
	}

	open := strings.LastIndexByte(name, '[')
	if open <= 0 {
		return nil, errors.Wrapf(ErrUnknownType, "%q", name)
	}

	size := 0
	if digits := name[open+1 : len(name)-1]; digits != "" {
		var err error
		size, err = parseNumber(name, digits)
		if err != nil {
			return nil, err
		}
	}

	item, err := ParseType(name[:open])
	if err != nil {
		return nil, err
	}
	return Array{Item: item, Size: size}, nil
}

func parseBaseType(name string) (Type, error) {
	switch name {
	case "bool":
		return Boolean{}, nil
	case "string":
		return String{}, nil
	case "address":
		return Address{}, nil
	case "bytes":
		return Bytes{}, nil
	case "uint":
		return UnsignedInteger{Bits: maxIntegerBits}, nil
	case "int":
		return SignedInteger{Bits: maxIntegerBits}, nil
	}

	if digits, ok := strings.CutPrefix(name, "bytes"); ok {
		size, err := parseNumber(name, digits)
		if err != nil {
			return nil, err
		}
		if size > maxBytesSize {
			return nil, errors.Wrapf(ErrInvalidTypeParameter, "%q: size must be at most %d", name, maxBytesSize)
		}
		return Bytes{Size: size}, nil
	}

	if digits, ok := strings.CutPrefix(name, "uint"); ok {
		bits, err := parseBits(name, digits)
		if err != nil {
			return nil, err
		}
		return UnsignedInteger{Bits: bits}, nil
	}

	if digits, ok := strings.CutPrefix(name, "int"); ok {
		bits, err := parseBits(name, digits)
		if err != nil {
			return nil, err
		}
		return SignedInteger{Bits: bits}, nil
	}

	return nil, errors.Wrapf(ErrUnknownType, "%q", name)
}

func parseBits(name, digits string) (int, error) {
	bits, err := parseNumber(name, digits)
	if err != nil {
		return 0, err
	}
	if bits%8 != 0 || bits > maxIntegerBits {
		return 0, errors.Wrapf(ErrInvalidTypeParameter, "%q: bits must be a multiple of 8 up to %d", name, maxIntegerBits)
	}
	return bits, nil
}

// parseNumber parses the numeric parameter of a type. Anything that is not a
// plain decimal is an unknown type; zero and leading zeros are out of range.
func parseNumber(name, digits string) (int, error) {
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errors.Wrapf(ErrUnknownType, "%q", name)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTypeParameter, "%q: %s", name, err)
	}
	if n == 0 || digits[0] == '0' {
		return 0, errors.Wrapf(ErrInvalidTypeParameter, "%q: %s is out of range", name, digits)
	}
	return n, nil
}
