package generate

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/mathieupost/chainbind/abi"
)

// goType returns the Go type used for t in bindings.
func goType(t abi.Type) (string, error) {
	switch t := t.(type) {
	case abi.Boolean:
		return "bool", nil
	case abi.SignedInteger, abi.UnsignedInteger:
		return "*big.Int", nil
	case abi.String, abi.Address, abi.Bytes:
		return "string", nil
	case abi.Array:
		item, err := goType(t.Item)
		if err != nil {
			return "", err
		}
		return "[]" + item, nil
	case abi.Void:
		return "", errors.New("void has no Go type")
	}
	return "", errors.Errorf("unsupported type %T", t)
}

// signature returns the canonical signature of a method, e.g.
// "transfer(address,uint256)".
func signature(name string, inputs []abi.Parameter) string {
	types := make([]string, len(inputs))
	for i, input := range inputs {
		types[i] = input.Type.String()
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// selector returns the 4-byte method id of a signature as hex.
func selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}
