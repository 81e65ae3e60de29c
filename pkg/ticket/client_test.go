package ticket

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/pkg/ticket/contracts"
)

func newTestClient(mock *MockBusTicket, receipt *types.Receipt, waitErr error) *Client {
	return &Client{
		contract: mock,
		logger:   zap.NewNop(),
		waitMined: func(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error) {
			return receipt, waitErr
		},
	}
}

func TestClient_MintRecoversTokenFromEvent(t *testing.T) {
	mock := &MockBusTicket{
		ParseTicketMintedFunc: func(log types.Log) (*contracts.BusTicketTicketMinted, error) {
			if log.Index != 1 {
				return nil, errors.New("not a TicketMinted log")
			}
			return &contracts.BusTicketTicketMinted{
				Passenger: common.HexToAddress("0x1111111111111111111111111111111111111111"),
				TokenId:   big.NewInt(42),
			}, nil
		},
	}
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Index: 0}, // unrelated log, e.g. the ERC-721 Transfer
			{Index: 1},
		},
	}
	client := newTestClient(mock, receipt, nil)

	result, err := client.Mint(context.Background(), &bind.TransactOpts{}, "Lima", "Cusco", 12, DisplayPriceToWei(50))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if result.TokenID != "42" {
		t.Errorf("Expected token id 42, got %s", result.TokenID)
	}
}

func TestClient_MintCarriesValue(t *testing.T) {
	var value *big.Int
	mock := &MockBusTicket{
		MintTicketFunc: func(opts *bind.TransactOpts, origin, destination string, seat *big.Int) (*types.Transaction, error) {
			value = opts.Value
			return types.NewTx(&types.LegacyTx{Nonce: 1}), nil
		},
		ParseTicketMintedFunc: func(log types.Log) (*contracts.BusTicketTicketMinted, error) {
			return &contracts.BusTicketTicketMinted{TokenId: big.NewInt(1)}, nil
		},
	}
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, Logs: []*types.Log{{}}}
	client := newTestClient(mock, receipt, nil)

	if _, err := client.Mint(context.Background(), &bind.TransactOpts{}, "Lima", "Cusco", 1, DisplayPriceToWei(80)); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if value.Cmp(DisplayPriceToWei(80)) != 0 {
		t.Errorf("Expected mint to carry %s wei, got %s", DisplayPriceToWei(80), value)
	}
}

func TestClient_MintWithoutEventFails(t *testing.T) {
	mock := &MockBusTicket{
		ParseTicketMintedFunc: func(log types.Log) (*contracts.BusTicketTicketMinted, error) {
			return nil, errors.New("not a TicketMinted log")
		},
	}
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, Logs: []*types.Log{{}}}
	client := newTestClient(mock, receipt, nil)

	_, err := client.Mint(context.Background(), &bind.TransactOpts{}, "Lima", "Cusco", 1, DisplayPriceToWei(50))
	if !errors.Is(err, ErrMintEventNotFound) {
		t.Fatalf("Expected ErrMintEventNotFound, got %v", err)
	}
}

func TestClient_MintRevertFails(t *testing.T) {
	receipt := &types.Receipt{Status: types.ReceiptStatusFailed}
	client := newTestClient(&MockBusTicket{}, receipt, nil)

	_, err := client.Mint(context.Background(), &bind.TransactOpts{}, "Lima", "Cusco", 1, DisplayPriceToWei(50))
	if !errors.Is(err, ErrTransactionFailed) {
		t.Fatalf("Expected ErrTransactionFailed, got %v", err)
	}
}

func TestClient_MarkUsedIsNoOpWhenAlreadyUsed(t *testing.T) {
	transacted := false
	mock := &MockBusTicket{
		IsUsedFunc: func(opts *bind.CallOpts, tokenId *big.Int) (bool, error) {
			return true, nil
		},
		MarkAsUsedFunc: func(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error) {
			transacted = true
			return types.NewTx(&types.LegacyTx{}), nil
		},
	}
	client := newTestClient(mock, &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	if err := client.MarkUsed(context.Background(), &bind.TransactOpts{}, big.NewInt(1)); err != nil {
		t.Fatalf("MarkUsed on used ticket: %v", err)
	}
	if transacted {
		t.Errorf("Expected no transaction for already-used ticket")
	}
}

func TestClient_MarkUsedRevertMapsToUnauthorized(t *testing.T) {
	mock := &MockBusTicket{
		MarkAsUsedFunc: func(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error) {
			return nil, errors.New("execution reverted: NotInspector")
		},
	}
	client := newTestClient(mock, nil, nil)

	err := client.MarkUsed(context.Background(), &bind.TransactOpts{}, big.NewInt(1))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_ReadTicketNotFound(t *testing.T) {
	t.Run("revert", func(t *testing.T) {
		mock := &MockBusTicket{
			GetTicketFunc: func(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
				return ticketData{}, errors.New("execution reverted: TicketNotFound")
			},
		}
		client := newTestClient(mock, nil, nil)

		_, err := client.ReadTicket(context.Background(), big.NewInt(99))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("zero passenger", func(t *testing.T) {
		client := newTestClient(&MockBusTicket{}, nil, nil)

		_, err := client.ReadTicket(context.Background(), big.NewInt(99))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestClient_ReadTicketMapsFields(t *testing.T) {
	mock := &MockBusTicket{
		GetTicketFunc: func(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
			return ticketData{
				Passenger:   common.HexToAddress("0x1111111111111111111111111111111111111111"),
				Origin:      "Lima",
				Destination: "Cusco",
				Seat:        big.NewInt(12),
				Timestamp:   big.NewInt(1700000000),
				Used:        true,
			}, nil
		},
	}
	client := newTestClient(mock, nil, nil)

	record, err := client.ReadTicket(context.Background(), big.NewInt(7))
	if err != nil {
		t.Fatalf("ReadTicket: %v", err)
	}
	if record.TokenID != "7" || record.Origin != "Lima" || record.Destination != "Cusco" {
		t.Errorf("Unexpected record %+v", record)
	}
	if record.Seat != 12 || record.Timestamp != 1700000000 || !record.Used {
		t.Errorf("Unexpected record %+v", record)
	}
}

func TestClient_ListOwnedEnumerates(t *testing.T) {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	tokens := []int64{5, 9, 11}
	var indexCalls, readCalls int

	mock := &MockBusTicket{
		BalanceOfFunc: func(opts *bind.CallOpts, o common.Address) (*big.Int, error) {
			if o != owner {
				t.Errorf("Expected balanceOf for %s, got %s", owner.Hex(), o.Hex())
			}
			return big.NewInt(int64(len(tokens))), nil
		},
		TokenOfOwnerByIndexFunc: func(opts *bind.CallOpts, o common.Address, index *big.Int) (*big.Int, error) {
			indexCalls++
			return big.NewInt(tokens[index.Int64()]), nil
		},
		GetTicketFunc: func(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
			readCalls++
			return ticketData{
				Passenger: owner,
				Seat:      big.NewInt(1),
				Timestamp: tokenId, // distinct timestamps
			}, nil
		},
	}
	client := newTestClient(mock, nil, nil)

	records, err := client.ListOwned(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if indexCalls != 3 || readCalls != 3 {
		t.Errorf("Expected one index+read round-trip per token, got %d/%d", indexCalls, readCalls)
	}

	seen := map[string]bool{}
	for _, r := range records {
		if seen[r.TokenID] {
			t.Errorf("Duplicate record for token %s", r.TokenID)
		}
		seen[r.TokenID] = true
	}
}

func TestClient_ListOwnedHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mock := &MockBusTicket{
		BalanceOfFunc: func(opts *bind.CallOpts, o common.Address) (*big.Int, error) {
			return big.NewInt(100), nil
		},
		TokenOfOwnerByIndexFunc: func(opts *bind.CallOpts, o common.Address, index *big.Int) (*big.Int, error) {
			cancel() // cancel mid-enumeration
			return big.NewInt(index.Int64()), nil
		},
		GetTicketFunc: func(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
			return ticketData{Passenger: common.HexToAddress("0x1"), Seat: big.NewInt(1), Timestamp: big.NewInt(1)}, nil
		},
	}
	client := newTestClient(mock, nil, nil)

	_, err := client.ListOwned(ctx, common.HexToAddress("0x1"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}
