// Package ticket wraps the BusTicket contract binding with the operations the
// storefront needs: minting, usage marking, reads, and owner enumeration.
// Every method talks to the chain; nothing here caches.
package ticket

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/pkg/ticket/contracts"
)

// ticketData mirrors the getTicket return shape of the generated binding.
type ticketData = struct {
	Passenger   common.Address
	Origin      string
	Destination string
	Seat        *big.Int
	Timestamp   *big.Int
	Used        bool
}

// contract is the slice of the generated binding the client uses. Narrowed to
// an interface so tests can stand in for the chain.
type contract interface {
	MintTicket(opts *bind.TransactOpts, origin string, destination string, seat *big.Int) (*types.Transaction, error)
	MarkAsUsed(opts *bind.TransactOpts, tokenId *big.Int) (*types.Transaction, error)
	IsUsed(opts *bind.CallOpts, tokenId *big.Int) (bool, error)
	GetTicket(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error)
	BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error)
	TokenOfOwnerByIndex(opts *bind.CallOpts, owner common.Address, index *big.Int) (*big.Int, error)
	ParseTicketMinted(log types.Log) (*contracts.BusTicketTicketMinted, error)
}

// boundContract adapts *contracts.BusTicket to the contract interface. The
// generated type spreads the methods over embedded Caller/Transactor/Filterer,
// which is why the flattening wrapper exists.
type boundContract struct {
	*contracts.BusTicket
}

func (b boundContract) GetTicket(opts *bind.CallOpts, tokenId *big.Int) (ticketData, error) {
	return b.BusTicket.GetTicket(opts, tokenId)
}

// Backend is the chain connection the client needs: binding capabilities plus
// receipt retrieval for mined-transaction waits.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// MintResult reports a successful mint: the token id recovered from the
// TicketMinted event and the transaction that carried it.
type MintResult struct {
	TokenID string
	TxHash  common.Hash
}

// Client is the contract-facing ticket client.
type Client struct {
	contract contract
	backend  bind.DeployBackend
	address  common.Address
	logger   *zap.Logger

	// waitMined is swapped out in tests.
	waitMined func(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error)
}

// NewClient binds the BusTicket contract at address over the given backend.
func NewClient(address common.Address, backend Backend, logger *zap.Logger) (*Client, error) {
	bound, err := contracts.NewBusTicket(address, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind ticket contract: %w", err)
	}

	logger.Info("Bound ticket contract", zap.String("contract", address.Hex()))

	return &Client{
		contract:  boundContract{bound},
		backend:   backend,
		address:   address,
		logger:    logger,
		waitMined: bind.WaitMined,
	}, nil
}

// Mint purchases a ticket: submits the payable mintTicket transaction, waits
// for the receipt, and recovers the new token id from the TicketMinted event.
// A mined-but-reverted transaction returns ErrTransactionFailed; a successful
// receipt without the event returns ErrMintEventNotFound.
func (c *Client) Mint(ctx context.Context, signer *bind.TransactOpts, origin, destination string, seat uint64, priceWei *big.Int) (*MintResult, error) {
	opts := *signer
	opts.Context = ctx
	opts.Value = priceWei

	tx, err := c.contract.MintTicket(&opts, origin, destination, new(big.Int).SetUint64(seat))
	if err != nil {
		return nil, fmt.Errorf("failed to submit mint transaction: %w", err)
	}

	c.logger.Info("Mint transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.Uint64("seat", seat),
		zap.String("value_wei", priceWei.String()))

	receipt, err := c.waitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for mint receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("mint transaction %s reverted: %w", tx.Hash().Hex(), ErrTransactionFailed)
	}

	for _, log := range receipt.Logs {
		event, err := c.contract.ParseTicketMinted(*log)
		if err != nil {
			continue // not a TicketMinted log
		}
		c.logger.Info("Ticket minted",
			zap.String("token_id", event.TokenId.String()),
			zap.String("passenger", event.Passenger.Hex()))
		return &MintResult{
			TokenID: event.TokenId.String(),
			TxHash:  tx.Hash(),
		}, nil
	}

	return nil, fmt.Errorf("receipt %s: %w", tx.Hash().Hex(), ErrMintEventNotFound)
}

// MarkUsed marks a ticket used. Calling it on an already-used ticket is a
// no-op, checked against the chain before submitting. A revert from the
// contract means the signer lacks the inspector role and maps to
// ErrUnauthorized.
func (c *Client) MarkUsed(ctx context.Context, signer *bind.TransactOpts, tokenID *big.Int) error {
	used, err := c.ReadUsed(ctx, tokenID)
	if err != nil {
		return err
	}
	if used {
		c.logger.Debug("Ticket already used, skipping markAsUsed",
			zap.String("token_id", tokenID.String()))
		return nil
	}

	opts := *signer
	opts.Context = ctx

	tx, err := c.contract.MarkAsUsed(&opts, tokenID)
	if err != nil {
		if isRevert(err) {
			return fmt.Errorf("markAsUsed rejected for token %s: %w", tokenID, ErrUnauthorized)
		}
		return fmt.Errorf("failed to submit markAsUsed transaction: %w", err)
	}

	receipt, err := c.waitMined(ctx, c.backend, tx)
	if err != nil {
		return fmt.Errorf("failed waiting for markAsUsed receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("markAsUsed transaction %s reverted: %w", tx.Hash().Hex(), ErrUnauthorized)
	}

	c.logger.Info("Ticket marked as used",
		zap.String("token_id", tokenID.String()),
		zap.String("tx_hash", tx.Hash().Hex()))
	return nil
}

// ReadUsed reads the used flag from the chain. Always a live read, never
// served from any cache, so verification decisions see current state.
func (c *Client) ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error) {
	used, err := c.contract.IsUsed(&bind.CallOpts{Context: ctx}, tokenID)
	if err != nil {
		if isRevert(err) {
			return false, fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
		}
		return false, fmt.Errorf("failed to read used flag: %w", err)
	}
	return used, nil
}

// ReadTicket reads the full ticket record for tokenID. A zero passenger
// address or a contract revert means the token does not exist.
func (c *Client) ReadTicket(ctx context.Context, tokenID *big.Int) (*Record, error) {
	data, err := c.contract.GetTicket(&bind.CallOpts{Context: ctx}, tokenID)
	if err != nil {
		if isRevert(err) {
			return nil, fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read ticket: %w", err)
	}
	if data.Passenger == (common.Address{}) {
		return nil, fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
	}

	return &Record{
		TokenID:     tokenID.String(),
		Origin:      data.Origin,
		Destination: data.Destination,
		Seat:        data.Seat.Uint64(),
		Timestamp:   data.Timestamp.Int64(),
		Passenger:   data.Passenger.Hex(),
		Used:        data.Used,
	}, nil
}

// ListOwned enumerates every ticket owned by owner: one balanceOf call, then
// one tokenOfOwnerByIndex + getTicket pair per token. The context cancels the
// enumeration between round-trips.
func (c *Client) ListOwned(ctx context.Context, owner common.Address) ([]Record, error) {
	balance, err := c.contract.BalanceOf(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticket balance: %w", err)
	}

	count := balance.Int64()
	records := make([]Record, 0, count)
	for i := int64(0); i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tokenID, err := c.contract.TokenOfOwnerByIndex(&bind.CallOpts{Context: ctx}, owner, big.NewInt(i))
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate token at index %d: %w", i, err)
		}

		record, err := c.ReadTicket(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, nil
}

// isRevert reports whether err looks like an EVM revert rather than a
// transport failure.
func isRevert(err error) bool {
	return err != nil && strings.Contains(err.Error(), "execution reverted")
}
