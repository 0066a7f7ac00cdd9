package contract

import _ "embed"

// FileName is the name under which Source is written next to bindings.
const FileName = "contract.go"

// Source is the source of this package, copied next to generated bindings.
//
//go:embed contract.go
var Source []byte

//go:generate go run github.com/vektra/mockery/v2 --name Backend --output ../mocks --case underscore --with-expecter
