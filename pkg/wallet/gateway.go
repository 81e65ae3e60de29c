package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// weiPerEther converts wei balances to the decimal ETH strings shown to users.
const weiDecimals = 18

// Session holds the live connection produced by a successful Connect. The
// signer handle is a capability: it is owned by the session layer and
// invalidated on disconnect, never persisted.
type Session struct {
	Account common.Address
	Balance string
	Signer  *bind.TransactOpts
}

// Gateway mediates between the session layer and the wallet provider.
type Gateway struct {
	provider Provider
	logger   *zap.Logger
}

// NewGateway creates a gateway over the given provider.
func NewGateway(provider Provider, logger *zap.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		logger:   logger,
	}
}

// Connect performs the account-access handshake and returns a live session.
// Fails with ErrNoProvider when no provider is reachable and ErrUserRejected
// when the handshake is declined.
func (g *Gateway) Connect(ctx context.Context) (*Session, error) {
	if g.provider == nil {
		return nil, ErrNoProvider
	}

	accounts, err := g.provider.RequestAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrUserRejected
	}
	account := accounts[0]

	balance, err := g.GetBalance(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	signer, err := g.provider.NewTransactor(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	g.logger.Info("Wallet connected",
		zap.String("account", account.Hex()),
		zap.String("balance", balance))

	return &Session{
		Account: account,
		Balance: balance,
		Signer:  signer,
	}, nil
}

// GetBalance returns the native-currency balance of account as a decimal
// string in ether units. Re-derivable at any time while connected.
func (g *Gateway) GetBalance(ctx context.Context, account common.Address) (string, error) {
	if g.provider == nil {
		return "", ErrNoProvider
	}
	wei, err := g.provider.BalanceAt(ctx, account)
	if err != nil {
		return "", fmt.Errorf("failed to query balance: %w", err)
	}
	return FormatWei(wei), nil
}

// Backend exposes the provider's chain connection for contract bindings.
// Returns nil when no provider is configured.
func (g *Gateway) Backend() Backend {
	if g.provider == nil {
		return nil
	}
	return g.provider.Backend()
}

// FormatWei renders a wei amount as a decimal ether string.
func FormatWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -weiDecimals).String()
}
