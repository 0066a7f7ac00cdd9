package abi

// Kind is the type field of a raw declaration.
type Kind string

const (
	KindConstructor Kind = "constructor"
	KindEvent       Kind = "event"
	KindFallback    Kind = "fallback"
	KindFunction    Kind = "function"
)

// Known reports whether k belongs to the closed declaration vocabulary.
func (k Kind) Known() bool {
	switch k {
	case KindConstructor, KindEvent, KindFallback, KindFunction:
		return true
	}
	return false
}

type RawParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RawDeclaration is a single unparsed entry of an interface description.
type RawDeclaration struct {
	Kind            Kind           `json:"type"`
	Name            string         `json:"name"`
	Constant        bool           `json:"constant"`
	Payable         bool           `json:"payable"`
	StateMutability string         `json:"stateMutability,omitempty"`
	Inputs          []RawParameter `json:"inputs"`
	Outputs         []RawParameter `json:"outputs"`
}

// IsConstant reports whether the declaration does not modify state, either
// through the legacy constant flag or a view/pure state mutability.
func (d RawDeclaration) IsConstant() bool {
	return d.Constant || d.StateMutability == "view" || d.StateMutability == "pure"
}

// IsPayable reports whether the declaration accepts an attached value.
func (d RawDeclaration) IsPayable() bool {
	return d.Payable || d.StateMutability == "payable"
}

type Parameter struct {
	Name string
	Type Type
}

// ConstantDeclaration is a read without inputs and with a single output.
type ConstantDeclaration struct {
	Name   string
	Output Type
}

// ConstantFunctionDeclaration is a read with inputs or with zero or several
// outputs. A read without outputs has a single Void output.
type ConstantFunctionDeclaration struct {
	Name    string
	Inputs  []Parameter
	Outputs []Type
	// OutputNames holds the declared output names, parallel to Outputs.
	OutputNames []string
}

// FunctionDeclaration is a state-mutating call.
type FunctionDeclaration struct {
	Name        string
	Inputs      []Parameter
	Outputs     []Type
	OutputNames []string
	Payable     bool
}

// Contract is the classified callable surface of a contract. A name appears at
// most once across all three collections.
type Contract struct {
	Constants         []ConstantDeclaration
	ConstantFunctions []ConstantFunctionDeclaration
	Functions         []FunctionDeclaration
}

// Has reports whether a declaration named name was classified.
func (c *Contract) Has(name string) bool {
	for _, d := range c.Constants {
		if d.Name == name {
			return true
		}
	}
	for _, d := range c.ConstantFunctions {
		if d.Name == name {
			return true
		}
	}
	for _, d := range c.Functions {
		if d.Name == name {
			return true
		}
	}
	return false
}
