package ticket

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/viaandina/ticketchain/pkg/ticket/contracts"
)

// MockBusTicket is a mock implementation of the contract interface
type MockBusTicket struct {
	MintTicketFunc          func(opts *bind.TransactOpts, origin string, destination string, seat *big.Int) (*types.Transaction, error)
	MarkAsUsedFunc          func(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error)
	IsUsedFunc              func(opts *bind.CallOpts, tokenId *big.Int) (bool, error)
	GetTicketFunc           func(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error)
	BalanceOfFunc           func(opts *bind.CallOpts, owner common.Address) (*big.Int, error)
	TokenOfOwnerByIndexFunc func(opts *bind.CallOpts, owner common.Address, index *big.Int) (*big.Int, error)
	ParseTicketMintedFunc   func(log types.Log) (*contracts.BusTicketTicketMinted, error)
}

func (m *MockBusTicket) MintTicket(opts *bind.TransactOpts, origin string, destination string, seat *big.Int) (*types.Transaction, error) {
	if m.MintTicketFunc != nil {
		return m.MintTicketFunc(opts, origin, destination, seat)
	}
	return types.NewTx(&types.LegacyTx{Nonce: 1}), nil
}

func (m *MockBusTicket) MarkAsUsed(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error) {
	if m.MarkAsUsedFunc != nil {
		return m.MarkAsUsedFunc(opts, tokenId)
	}
	return types.NewTx(&types.LegacyTx{Nonce: 2}), nil
}

func (m *MockBusTicket) IsUsed(opts *bind.CallOpts, tokenId *big.Int) (bool, error) {
	if m.IsUsedFunc != nil {
		return m.IsUsedFunc(opts, tokenId)
	}
	return false, nil
}

func (m *MockBusTicket) GetTicket(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(opts, tokenId)
	}
	return ticketData{}, nil
}

func (m *MockBusTicket) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	if m.BalanceOfFunc != nil {
		return m.BalanceOfFunc(opts, owner)
	}
	return big.NewInt(0), nil
}

func (m *MockBusTicket) TokenOfOwnerByIndex(opts *bind.CallOpts, owner common.Address, index *big.Int) (*big.Int, error) {
	if m.TokenOfOwnerByIndexFunc != nil {
		return m.TokenOfOwnerByIndexFunc(opts, owner, index)
	}
	return big.NewInt(0), nil
}

func (m *MockBusTicket) ParseTicketMinted(log types.Log) (*contracts.BusTicketTicketMinted, error) {
	if m.ParseTicketMintedFunc != nil {
		return m.ParseTicketMintedFunc(log)
	}
	return nil, nil
}
