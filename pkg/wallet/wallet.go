// Package wallet establishes the session with the wallet provider: the
// account-access handshake, balance queries, and the signer handle used for
// contract calls. The provider itself (browser extension, remote signer, or a
// locally keyed RPC connection) sits behind the Provider interface.
package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoProvider is returned when no wallet provider is reachable
	// (no RPC endpoint configured, or the dial failed).
	ErrNoProvider = errors.New("no wallet provider available")

	// ErrUserRejected is returned when the provider declines the
	// account-access handshake.
	ErrUserRejected = errors.New("wallet connection rejected")

	// ErrNotConnected is returned by any operation that requires an active
	// signer handle when the session is disconnected.
	ErrNotConnected = errors.New("wallet not connected")
)

// Backend is the chain connection handed to contract bindings: call and
// transact capabilities plus receipt retrieval for mined-transaction waits.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Provider abstracts the wallet provider capability surface: request-accounts
// handshake, balance query, and transaction signing.
type Provider interface {
	// RequestAccounts performs the account-access handshake and returns the
	// granted accounts, first entry active.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// BalanceAt returns the native-currency balance of account in wei.
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)

	// NewTransactor returns a signer handle bound to account.
	NewTransactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error)

	// Backend exposes the chain connection for contract bindings.
	Backend() Backend

	// Close releases the provider connection.
	Close()
}
