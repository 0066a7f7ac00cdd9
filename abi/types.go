package abi

import "strconv"

// Type is a parsed EVM type. The set of implementations is closed: Boolean,
// SignedInteger, UnsignedInteger, Void, String, Bytes, Address and Array.
type Type interface {
	// String returns the canonical ABI name of the type, e.g. "uint256[3][]".
	String() string

	evmType()
}

type Boolean struct{}

// SignedInteger is intN. Bits is a multiple of 8 in 8..256.
type SignedInteger struct {
	Bits int
}

// UnsignedInteger is uintN. Bits is a multiple of 8 in 8..256.
type UnsignedInteger struct {
	Bits int
}

// Void is the output type of a read without outputs.
type Void struct{}

type String struct{}

// Bytes is bytesN when Size is set, the dynamic byte string otherwise.
type Bytes struct {
	Size int
}

type Address struct{}

// Array wraps Item. Size is zero for dynamic-length arrays.
type Array struct {
	Item Type
	Size int
}

func (Boolean) evmType()         {}
func (SignedInteger) evmType()   {}
func (UnsignedInteger) evmType() {}
func (Void) evmType()            {}
func (String) evmType()          {}
func (Bytes) evmType()           {}
func (Address) evmType()         {}
func (Array) evmType()           {}

func (Boolean) String() string { return "bool" }

func (t SignedInteger) String() string { return "int" + strconv.Itoa(t.Bits) }

func (t UnsignedInteger) String() string { return "uint" + strconv.Itoa(t.Bits) }

func (Void) String() string { return "void" }

func (String) String() string { return "string" }

func (t Bytes) String() string {
	if t.Dynamic() {
		return "bytes"
	}
	return "bytes" + strconv.Itoa(t.Size)
}

// Dynamic reports whether the byte string has no fixed size.
func (t Bytes) Dynamic() bool { return t.Size == 0 }

func (Address) String() string { return "address" }

func (t Array) String() string {
	if t.Dynamic() {
		return t.Item.String() + "[]"
	}
	return t.Item.String() + "[" + strconv.Itoa(t.Size) + "]"
}

// Dynamic reports whether the array has no fixed length.
func (t Array) Dynamic() bool { return t.Size == 0 }
