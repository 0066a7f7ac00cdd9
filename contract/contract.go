// Package contract is the runtime support for bindings generated by
// chainbind. Generated code calls into it; a Backend talks to the chain.
//
// This file is copied verbatim next to generated bindings, so it only depends
// on the standard library.
package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// Backend executes calls against a deployed contract.
type Backend interface {
	// CodeAt returns the code deployed at address.
	CodeAt(ctx context.Context, address string) ([]byte, error)
	// Call executes a read and returns the decoded outputs.
	Call(ctx context.Context, call Call) ([]any, error)
	// SendTransaction submits a state-mutating call and returns the
	// transaction hash.
	SendTransaction(ctx context.Context, call Call, params PayableTxParams) (string, error)
}

// Call is a method invocation on a contract.
type Call struct {
	Address  string
	Method   string
	Selector string
	Args     []any
}

// TxParams configures a non-payable transaction.
type TxParams struct {
	From     string
	Gas      uint64
	GasPrice *big.Int
}

// PayableTxParams configures a payable transaction. Value is the amount sent
// along with the call.
type PayableTxParams struct {
	TxParams
	Value *big.Int
}

func (p TxParams) payable() PayableTxParams { return PayableTxParams{TxParams: p} }

func (p PayableTxParams) payable() PayableTxParams { return p }

// Params is implemented by the transaction parameter types.
type Params interface {
	TxParams | PayableTxParams
	payable() PayableTxParams
}

// ErrNoCode is returned when no contract is deployed at an address.
var ErrNoCode = errors.New("no contract code at address")

// Contract is a contract bound to an address.
type Contract struct {
	backend Backend
	address string
}

func New(backend Backend, address string) *Contract {
	return &Contract{backend: backend, address: address}
}

func (c *Contract) Address() string { return c.address }

// Validate checks that code is deployed at the contract address.
func (c *Contract) Validate(ctx context.Context) error {
	code, err := c.backend.CodeAt(ctx, c.address)
	if err != nil {
		return fmt.Errorf("getting code at %s: %w", c.address, err)
	}
	if len(code) == 0 {
		return fmt.Errorf("contract at %s doesn't exist: %w", c.address, ErrNoCode)
	}
	return nil
}

// Read executes a read-only method and returns its outputs.
func (c *Contract) Read(ctx context.Context, method, selector string, args ...any) ([]any, error) {
	values, err := c.backend.Call(ctx, c.call(method, selector, args))
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	return values, nil
}

func (c *Contract) call(method, selector string, args []any) Call {
	return Call{
		Address:  c.address,
		Method:   method,
		Selector: selector,
		Args:     args,
	}
}

// Output returns the i-th output converted to T.
func Output[T any](values []any, i int) (T, error) {
	var zero T
	if i >= len(values) {
		return zero, fmt.Errorf("output %d: only %d values returned", i, len(values))
	}
	value, ok := values[i].(T)
	if !ok {
		return zero, fmt.Errorf("output %d: expected %T, got %T", i, zero, values[i])
	}
	return value, nil
}

// DeferredTransaction is a prepared state-mutating call that is only
// submitted by Send.
type DeferredTransaction[P Params] struct {
	contract *Contract
	call     Call
}

func NewDeferredTransaction[P Params](c *Contract, method, selector string, args ...any) *DeferredTransaction[P] {
	return &DeferredTransaction[P]{
		contract: c,
		call:     c.call(method, selector, args),
	}
}

// Data returns the call the transaction will submit.
func (d *DeferredTransaction[P]) Data() Call {
	return d.call
}

// Send submits the transaction and returns its hash.
func (d *DeferredTransaction[P]) Send(ctx context.Context, params P) (string, error) {
	hash, err := d.contract.backend.SendTransaction(ctx, d.call, params.payable())
	if err != nil {
		return "", fmt.Errorf("sending %s: %w", d.call.Method, err)
	}
	return hash, nil
}
