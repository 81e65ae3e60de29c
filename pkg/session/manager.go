// Package session owns the wallet session state machine and the client-side
// view of the ticket inventory: connection lifecycle, purchase orchestration,
// the ticket cache, and the frequent-route list. All state lives behind a
// single manager so handles have exactly one owner.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/internal/metrics"
	apperrors "github.com/viaandina/ticketchain/pkg/app/errors"
	"github.com/viaandina/ticketchain/pkg/localstore"
	"github.com/viaandina/ticketchain/pkg/ticket"
	"github.com/viaandina/ticketchain/pkg/wallet"
)

// Persisted hint keys. Hints only: actual connection state is always
// re-established through the provider handshake, never restored from disk.
const (
	keyIsConnected    = "isConnected"
	keyAccount        = "account"
	keyFrequentRoutes = "frequentRoutes"
)

// Seat numbering on every coach.
const (
	minSeat = 1
	maxSeat = 50
)

// walletGateway is the slice of wallet.Gateway the manager uses.
type walletGateway interface {
	Connect(ctx context.Context) (*wallet.Session, error)
	GetBalance(ctx context.Context, account common.Address) (string, error)
}

// contractClient is the slice of ticket.Client the manager uses.
type contractClient interface {
	Mint(ctx context.Context, signer *bind.TransactOpts, origin, destination string, seat uint64, priceWei *big.Int) (*ticket.MintResult, error)
	MarkUsed(ctx context.Context, signer *bind.TransactOpts, tokenID *big.Int) error
	ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error)
	ReadTicket(ctx context.Context, tokenID *big.Int) (*ticket.Record, error)
	ListOwned(ctx context.Context, owner common.Address) ([]ticket.Record, error)
}

// Snapshot is the externally visible session state.
type Snapshot struct {
	Status  Status `json:"status"`
	Account string `json:"account,omitempty"`
	Balance string `json:"balance,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PurchaseRequest describes one ticket purchase. Price is in display units.
type PurchaseRequest struct {
	Origin      string `json:"from" validate:"required"`
	Destination string `json:"to" validate:"required,nefield=Origin"`
	Seat        uint64 `json:"seat" validate:"required,min=1,max=50"`
	Price       int64  `json:"price" validate:"required,gt=0"`
}

// Manager is the single owner of the wallet session and its derived state.
type Manager struct {
	gateway  walletGateway
	contract contractClient
	store    localstore.Store
	logger   *zap.Logger

	// connectMu serializes provider handshakes so concurrent callers share
	// one connection attempt's outcome.
	connectMu sync.Mutex

	mu      sync.Mutex
	status  Status
	session *wallet.Session
	lastErr error
	loadGen uint64
	cache   map[common.Address][]ticket.Record
	routes  []Route
}

// NewManager builds a manager in the Disconnected state. Persisted hints
// (frequent routes, last-account marker) are loaded; the wallet connection is
// established lazily on first use.
func NewManager(gateway walletGateway, contract contractClient, store localstore.Store, logger *zap.Logger) (*Manager, error) {
	routes, err := loadRoutes(store)
	if err != nil {
		return nil, err
	}
	metrics.FrequentRoutes.Set(float64(len(routes)))

	m := &Manager{
		gateway:  gateway,
		contract: contract,
		store:    store,
		logger:   logger,
		status:   StatusDisconnected,
		cache:    make(map[common.Address][]ticket.Record),
		routes:   routes,
	}

	if connected, err := store.Get(keyIsConnected); err == nil && connected == "true" {
		if account, err := store.Get(keyAccount); err == nil {
			logger.Info("Previous session hint found, will reconnect on demand",
				zap.String("last_account", account))
		}
	}

	return m, nil
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{Status: m.status}
	if m.session != nil {
		snap.Account = m.session.Account.Hex()
		snap.Balance = m.session.Balance
	}
	if m.lastErr != nil {
		snap.Error = m.lastErr.Error()
	}
	return snap
}

// Connect establishes the wallet session. Already-connected is a no-op.
// On failure the session moves to the Error state; the next attempt retries
// from scratch.
func (m *Manager) Connect(ctx context.Context) (Snapshot, error) {
	m.connectMu.Lock()
	defer m.connectMu.Unlock()

	m.mu.Lock()
	if m.status == StatusConnected && m.session != nil {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, nil
	}
	m.status = StatusConnecting
	m.lastErr = nil
	m.mu.Unlock()

	sess, err := m.gateway.Connect(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.status = StatusError
		m.lastErr = err
		m.session = nil
		metrics.WalletConnectsTotal.WithLabelValues("error").Inc()
		return m.snapshotLocked(), err
	}

	m.status = StatusConnected
	m.session = sess
	metrics.WalletConnectsTotal.WithLabelValues("ok").Inc()

	if err := m.store.Set(keyIsConnected, "true"); err != nil {
		m.logger.Warn("Failed to persist connection marker", zap.Error(err))
	}
	if err := m.store.Set(keyAccount, sess.Account.Hex()); err != nil {
		m.logger.Warn("Failed to persist account marker", zap.Error(err))
	}

	return m.snapshotLocked(), nil
}

// Disconnect resets the session locally. The provider connection itself is
// left alone; only the handles, the cache, and the persisted hints are
// cleared. In-flight loads are superseded and will not commit.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	m.status = StatusDisconnected
	m.lastErr = nil
	m.loadGen++
	m.cache = make(map[common.Address][]ticket.Record)

	if err := m.store.Delete(keyIsConnected); err != nil && !errors.Is(err, localstore.ErrKeyNotFound) {
		m.logger.Warn("Failed to clear connection marker", zap.Error(err))
	}
	if err := m.store.Delete(keyAccount); err != nil && !errors.Is(err, localstore.ErrKeyNotFound) {
		m.logger.Warn("Failed to clear account marker", zap.Error(err))
	}

	m.logger.Info("Wallet disconnected")
}

// ensureConnected returns the live session, connecting first if necessary.
func (m *Manager) ensureConnected(ctx context.Context) (*wallet.Session, error) {
	m.mu.Lock()
	if m.status == StatusConnected && m.session != nil {
		sess := m.session
		m.mu.Unlock()
		return sess, nil
	}
	m.mu.Unlock()

	if _, err := m.Connect(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, wallet.ErrNotConnected
	}
	return m.session, nil
}

// PurchaseTicket validates the request, mints the ticket, reads the minted
// record back from the chain, and updates the frequent-route list. The ticket
// cache for the buying account is invalidated, not patched.
func (m *Manager) PurchaseTicket(ctx context.Context, req PurchaseRequest) (*ticket.Record, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, apperrors.BadRequestError(nil, "origin and destination are required")
	}
	if req.Origin == req.Destination {
		return nil, apperrors.BadRequestError(nil, "origin and destination must differ")
	}
	if req.Seat < minSeat || req.Seat > maxSeat {
		return nil, apperrors.BadRequestError(nil, "seat must be between 1 and 50")
	}
	if req.Price <= 0 {
		return nil, apperrors.BadRequestError(nil, "price must be positive")
	}

	sess, err := m.ensureConnected(ctx)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("not_connected").Inc()
		return nil, err
	}

	start := time.Now()
	result, err := m.contract.Mint(ctx, sess.Signer, req.Origin, req.Destination, req.Seat, ticket.DisplayPriceToWei(req.Price))
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("error").Inc()
		metrics.ContractErrorsTotal.WithLabelValues("mint").Inc()
		return nil, err
	}
	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	metrics.PurchaseDuration.Observe(time.Since(start).Seconds())

	tokenID, ok := new(big.Int).SetString(result.TokenID, 10)
	if !ok {
		return nil, apperrors.GeneralError(fmt.Errorf("minted token id %q is not decimal", result.TokenID))
	}
	record, err := m.contract.ReadTicket(ctx, tokenID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.recordRoute(Route{Origin: req.Origin, Destination: req.Destination})
	delete(m.cache, sess.Account)
	m.mu.Unlock()

	m.logger.Info("Ticket purchased",
		zap.String("token_id", record.TokenID),
		zap.String("from", record.Origin),
		zap.String("to", record.Destination),
		zap.Uint64("seat", record.Seat))

	return record, nil
}

// LoadTickets returns the account's tickets, newest first. Served from the
// cache when valid; otherwise enumerated from the chain. Each load captures a
// generation token, and a load that has been superseded (by a newer load or a
// disconnect) returns its records without committing them to the cache.
func (m *Manager) LoadTickets(ctx context.Context) ([]ticket.Record, error) {
	sess, err := m.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if cached, ok := m.cache[sess.Account]; ok {
		out := make([]ticket.Record, len(cached))
		copy(out, cached)
		m.mu.Unlock()
		metrics.TicketLoadsTotal.WithLabelValues("cached").Inc()
		return out, nil
	}
	m.loadGen++
	gen := m.loadGen
	m.mu.Unlock()

	records, err := m.contract.ListOwned(ctx, sess.Account)
	if err != nil {
		metrics.TicketLoadsTotal.WithLabelValues("error").Inc()
		metrics.ContractErrorsTotal.WithLabelValues("list_owned").Inc()
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].TokenID > records[j].TokenID
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.loadGen || m.session == nil || m.session.Account != sess.Account {
		// A newer load or a disconnect superseded this one.
		metrics.TicketLoadsTotal.WithLabelValues("superseded").Inc()
		return records, nil
	}
	m.cache[sess.Account] = records
	metrics.TicketLoadsTotal.WithLabelValues("ok").Inc()

	out := make([]ticket.Record, len(records))
	copy(out, records)
	return out, nil
}

// RefreshBalance re-reads the connected account's balance and folds it into
// the session snapshot.
func (m *Manager) RefreshBalance(ctx context.Context) (string, error) {
	sess, err := m.ensureConnected(ctx)
	if err != nil {
		return "", err
	}

	balance, err := m.gateway.GetBalance(ctx, sess.Account)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	if m.session != nil && m.session.Account == sess.Account {
		m.session.Balance = balance
	}
	m.mu.Unlock()

	return balance, nil
}

// FrequentRoutes returns the remembered routes, most recent first.
func (m *Manager) FrequentRoutes() []Route {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Route, len(m.routes))
	copy(out, m.routes)
	return out
}

// ReadTicket reads one ticket from the chain, connecting first if necessary.
func (m *Manager) ReadTicket(ctx context.Context, tokenID *big.Int) (*ticket.Record, error) {
	if _, err := m.ensureConnected(ctx); err != nil {
		return nil, err
	}
	return m.contract.ReadTicket(ctx, tokenID)
}

// ReadUsed reads the live used flag, connecting first if necessary.
func (m *Manager) ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error) {
	if _, err := m.ensureConnected(ctx); err != nil {
		return false, err
	}
	return m.contract.ReadUsed(ctx, tokenID)
}

// MarkTicketUsed marks the ticket used on chain and invalidates any cached
// view of it. No-op for already-used tickets (handled by the contract client).
func (m *Manager) MarkTicketUsed(ctx context.Context, tokenID *big.Int) error {
	sess, err := m.ensureConnected(ctx)
	if err != nil {
		return err
	}

	if err := m.contract.MarkUsed(ctx, sess.Signer, tokenID); err != nil {
		metrics.ContractErrorsTotal.WithLabelValues("mark_used").Inc()
		return err
	}
	metrics.TicketsMarkedUsed.Inc()

	m.mu.Lock()
	m.cache = make(map[common.Address][]ticket.Record)
	m.mu.Unlock()

	return nil
}
