package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// MockProvider is a mock implementation of Provider
type MockProvider struct {
	RequestAccountsFunc func(ctx context.Context) ([]common.Address, error)
	BalanceAtFunc       func(ctx context.Context, account common.Address) (*big.Int, error)
	NewTransactorFunc   func(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
}

func (m *MockProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if m.RequestAccountsFunc != nil {
		return m.RequestAccountsFunc(ctx)
	}
	return []common.Address{common.HexToAddress("0x1111111111111111111111111111111111111111")}, nil
}

func (m *MockProvider) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	if m.BalanceAtFunc != nil {
		return m.BalanceAtFunc(ctx, account)
	}
	return big.NewInt(1500000000000000000), nil // 1.5 ETH
}

func (m *MockProvider) NewTransactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	if m.NewTransactorFunc != nil {
		return m.NewTransactorFunc(ctx, account)
	}
	return &bind.TransactOpts{From: account}, nil
}

func (m *MockProvider) Backend() Backend { return nil }

func (m *MockProvider) Close() {}

func TestGateway_Connect(t *testing.T) {
	g := NewGateway(&MockProvider{}, zap.NewNop())

	session, err := g.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if session.Account != common.HexToAddress("0x1111111111111111111111111111111111111111") {
		t.Errorf("Unexpected account %s", session.Account.Hex())
	}
	if session.Balance != "1.5" {
		t.Errorf("Expected balance 1.5, got %s", session.Balance)
	}
	if session.Signer == nil {
		t.Errorf("Expected signer handle")
	}
}

func TestGateway_ConnectWithoutProvider(t *testing.T) {
	g := NewGateway(nil, zap.NewNop())

	_, err := g.Connect(context.Background())
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("Expected ErrNoProvider, got %v", err)
	}
}

func TestGateway_ConnectRejected(t *testing.T) {
	t.Run("no accounts granted", func(t *testing.T) {
		provider := &MockProvider{
			RequestAccountsFunc: func(ctx context.Context) ([]common.Address, error) {
				return nil, nil
			},
		}
		g := NewGateway(provider, zap.NewNop())

		_, err := g.Connect(context.Background())
		if !errors.Is(err, ErrUserRejected) {
			t.Fatalf("Expected ErrUserRejected, got %v", err)
		}
	})

	t.Run("handshake error", func(t *testing.T) {
		provider := &MockProvider{
			RequestAccountsFunc: func(ctx context.Context) ([]common.Address, error) {
				return nil, ErrUserRejected
			},
		}
		g := NewGateway(provider, zap.NewNop())

		_, err := g.Connect(context.Background())
		if !errors.Is(err, ErrUserRejected) {
			t.Fatalf("Expected ErrUserRejected, got %v", err)
		}
	})
}

func TestFormatWei(t *testing.T) {
	cases := []struct {
		wei  string
		want string
	}{
		{"0", "0"},
		{"1000000000000000000", "1"},
		{"1500000000000000000", "1.5"},
		{"5000000000000000", "0.005"},
		{"1", "0.000000000000000001"},
	}

	for _, tc := range cases {
		wei, _ := new(big.Int).SetString(tc.wei, 10)
		if got := FormatWei(wei); got != tc.want {
			t.Errorf("FormatWei(%s) = %s, want %s", tc.wei, got, tc.want)
		}
	}

	if got := FormatWei(nil); got != "0" {
		t.Errorf("FormatWei(nil) = %s, want 0", got)
	}
}
