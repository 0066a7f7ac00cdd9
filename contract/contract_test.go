package contract_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mathieupost/chainbind/contract"
	"github.com/mathieupost/chainbind/mocks"
)

const address = "0x62d69f6867a0a084c6d313943dc22023bc263691"

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deployed", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		backend.EXPECT().CodeAt(mock.Anything, address).Return([]byte{0x60, 0x80}, nil)

		err := contract.New(backend, address).Validate(ctx)
		require.NoError(t, err)
	})

	t.Run("NoCode", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		backend.EXPECT().CodeAt(mock.Anything, address).Return(nil, nil)

		err := contract.New(backend, address).Validate(ctx)
		require.ErrorIs(t, err, contract.ErrNoCode)
		require.ErrorContains(t, err, "doesn't exist")
	})

	t.Run("BackendError", func(t *testing.T) {
		backendErr := errors.New("connection refused")
		backend := mocks.NewBackend(t)
		backend.EXPECT().CodeAt(mock.Anything, address).Return(nil, backendErr)

		err := contract.New(backend, address).Validate(ctx)
		require.ErrorIs(t, err, backendErr)
	})
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewBackend(t)
	backend.EXPECT().
		Call(mock.Anything, contract.Call{
			Address:  address,
			Method:   "getStateOf",
			Selector: "0x12345678",
			Args:     []any{"tx1"},
		}).
		Return([]any{"started"}, nil)

	c := contract.New(backend, address)
	values, err := c.Read(ctx, "getStateOf", "0x12345678", "tx1")
	require.NoError(t, err)

	state, err := contract.Output[string](values, 0)
	require.NoError(t, err)
	require.Equal(t, "started", state)
}

func TestOutput(t *testing.T) {
	values := []any{big.NewInt(7), true}

	n, err := contract.Output[*big.Int](values, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Int64())

	_, err = contract.Output[string](values, 1)
	require.ErrorContains(t, err, "expected string, got bool")

	_, err = contract.Output[bool](values, 2)
	require.ErrorContains(t, err, "only 2 values returned")
}

func TestDeferredTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("NonPayable", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		c := contract.New(backend, address)
		tx := contract.NewDeferredTransaction[contract.TxParams](c, "start", "0xaabbccdd", "tx1")

		expectedCall := contract.Call{
			Address:  address,
			Method:   "start",
			Selector: "0xaabbccdd",
			Args:     []any{"tx1"},
		}
		require.Equal(t, expectedCall, tx.Data())

		params := contract.TxParams{From: "0x00a329c0648769A73afAc7F9381E08FB43dBEA72", Gas: 21000}
		backend.EXPECT().
			SendTransaction(mock.Anything, expectedCall, contract.PayableTxParams{TxParams: params}).
			Return("0xhash", nil)

		hash, err := tx.Send(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "0xhash", hash)
	})

	t.Run("Payable", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		c := contract.New(backend, address)
		tx := contract.NewDeferredTransaction[contract.PayableTxParams](c, "deposit", "0xd0e30db0")

		params := contract.PayableTxParams{Value: big.NewInt(1000)}
		backend.EXPECT().
			SendTransaction(mock.Anything, tx.Data(), params).
			Return("0xhash", nil)

		hash, err := tx.Send(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "0xhash", hash)
	})

	t.Run("Rejected", func(t *testing.T) {
		backend := mocks.NewBackend(t)
		c := contract.New(backend, address)
		tx := contract.NewDeferredTransaction[contract.TxParams](c, "complete", "0x01020304", "tx1")

		backend.EXPECT().
			SendTransaction(mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("reverted"))

		_, err := tx.Send(ctx, contract.TxParams{})
		require.ErrorContains(t, err, "sending complete: reverted")
	})
}

func TestSource(t *testing.T) {
	require.Contains(t, string(contract.Source), "package contract")
	require.Contains(t, string(contract.Source), "type DeferredTransaction[P Params] struct")
}
