package session

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/viaandina/ticketchain/pkg/ticket"
	"github.com/viaandina/ticketchain/pkg/wallet"
)

// MockGateway is a mock implementation of walletGateway
type MockGateway struct {
	ConnectFunc    func(ctx context.Context) (*wallet.Session, error)
	GetBalanceFunc func(ctx context.Context, account common.Address) (string, error)
}

func (m *MockGateway) Connect(ctx context.Context) (*wallet.Session, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return &wallet.Session{
		Account: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Balance: "1.5",
		Signer:  &bind.TransactOpts{},
	}, nil
}

func (m *MockGateway) GetBalance(ctx context.Context, account common.Address) (string, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, account)
	}
	return "1.5", nil
}

// MockContract is a mock implementation of contractClient
type MockContract struct {
	MintFunc       func(ctx context.Context, signer *bind.TransactOpts, origin, destination string, seat uint64, priceWei *big.Int) (*ticket.MintResult, error)
	MarkUsedFunc   func(ctx context.Context, signer *bind.TransactOpts, tokenID *big.Int) error
	ReadUsedFunc   func(ctx context.Context, tokenID *big.Int) (bool, error)
	ReadTicketFunc func(ctx context.Context, tokenID *big.Int) (*ticket.Record, error)
	ListOwnedFunc  func(ctx context.Context, owner common.Address) ([]ticket.Record, error)
}

func (m *MockContract) Mint(ctx context.Context, signer *bind.TransactOpts, origin, destination string, seat uint64, priceWei *big.Int) (*ticket.MintResult, error) {
	if m.MintFunc != nil {
		return m.MintFunc(ctx, signer, origin, destination, seat, priceWei)
	}
	return &ticket.MintResult{TokenID: "1"}, nil
}

func (m *MockContract) MarkUsed(ctx context.Context, signer *bind.TransactOpts, tokenID *big.Int) error {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, signer, tokenID)
	}
	return nil
}

func (m *MockContract) ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error) {
	if m.ReadUsedFunc != nil {
		return m.ReadUsedFunc(ctx, tokenID)
	}
	return false, nil
}

func (m *MockContract) ReadTicket(ctx context.Context, tokenID *big.Int) (*ticket.Record, error) {
	if m.ReadTicketFunc != nil {
		return m.ReadTicketFunc(ctx, tokenID)
	}
	return &ticket.Record{TokenID: tokenID.String()}, nil
}

func (m *MockContract) ListOwned(ctx context.Context, owner common.Address) ([]ticket.Record, error) {
	if m.ListOwnedFunc != nil {
		return m.ListOwnedFunc(ctx, owner)
	}
	return nil, nil
}
