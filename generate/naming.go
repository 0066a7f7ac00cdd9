package generate

import (
	"fmt"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Identifiers used by the generated method bodies.
var locals = map[string]bool{
	"c":        true,
	"ctx":      true,
	"err":      true,
	"out":      true,
	"values":   true,
	"backend":  true,
	"address":  true,
	"big":      true,
	"context":  true,
	"contract": true,
}

// File name suffixes the go tool reads as a test file or a build constraint.
var constrainedSuffixes = map[string]bool{
	"test": true,

	"aix": true, "android": true, "darwin": true, "dragonfly": true,
	"freebsd": true, "hurd": true, "illumos": true, "ios": true, "js": true,
	"linux": true, "nacl": true, "netbsd": true, "openbsd": true, "plan9": true,
	"solaris": true, "wasip1": true, "windows": true, "zos": true,

	"386": true, "amd64": true, "amd64p32": true, "arm": true, "armbe": true,
	"arm64": true, "arm64be": true, "loong64": true, "mips": true, "mipsle": true,
	"mips64": true, "mips64le": true, "mips64p32": true, "mips64p32le": true,
	"ppc": true, "ppc64": true, "ppc64le": true, "riscv": true, "riscv64": true,
	"s390": true, "s390x": true, "sparc": true, "sparc64": true, "wasm": true,
}

// FileName returns the name of the file holding the binding of a contract.
// Names ending in a test or build constraint suffix get a "_binding" suffix.
func FileName(contract string) string {
	name := strcase.ToSnake(contract)
	if i := strings.LastIndexByte(name, '_'); i >= 0 && constrainedSuffixes[name[i+1:]] {
		name += "_binding"
	}
	return name + ".go"
}

// names hands out unique identifiers within one scope.
type names map[string]bool

func newNames(reserved ...string) names {
	n := names{}
	for _, r := range reserved {
		n[r] = true
	}
	return n
}

// claim returns name, or name with the first free numeric suffix.
func (n names) claim(name string) string {
	unique := name
	for i := 2; n[unique]; i++ {
		unique = name + strconv.Itoa(i)
	}
	n[unique] = true
	return unique
}

// exportedName converts an ABI name into an exported Go identifier.
func exportedName(name, fallback string) string {
	ident := strcase.ToCamel(name)
	if ident == "" {
		return fallback
	}
	if !token.IsIdentifier(ident) {
		return "X" + ident
	}
	return ident
}

// paramName converts an ABI parameter name into an unexported Go identifier
// that does not shadow keywords, predeclared identifiers or the locals of the
// generated code.
func paramName(name string, i int) string {
	ident := strcase.ToLowerCamel(name)
	if ident == "" {
		return fmt.Sprintf("arg%d", i)
	}
	if !token.IsIdentifier(ident) {
		ident = "p" + ident
	}
	if token.IsKeyword(ident) || locals[ident] || types.Universe.Lookup(ident) != nil {
		ident += "_"
	}
	return ident
}
