package abi

import "fmt"

// DiagnosticKind identifies a non-fatal classification finding.
type DiagnosticKind string

const (
	// OverloadDropped is recorded when a function reuses the name of an
	// earlier declaration. The first declaration wins.
	OverloadDropped DiagnosticKind = "OverloadDropped"

	// TypeParseFailed is recorded when a parameter type of a declaration
	// cannot be parsed. The declaration is skipped.
	TypeParseFailed DiagnosticKind = "TypeParseFailed"
)

// Diagnostic is a warning produced while classifying declarations.
type Diagnostic struct {
	Kind DiagnosticKind
	Name string
	Err  error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case OverloadDropped:
		return fmt.Sprintf("overloaded function %s dropped", d.Name)
	case TypeParseFailed:
		return fmt.Sprintf("function %s skipped: %v", d.Name, d.Err)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Name)
}
