package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/pkg/config"
)

// KeyedProvider implements Provider over an Ethereum RPC connection with a
// locally held signing key. It is the headless analogue of a browser wallet:
// the handshake always grants the single keyed account.
type KeyedProvider struct {
	config     *config.EthereumConfig
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	logger     *zap.Logger
}

// NewKeyedProvider dials the configured RPC endpoint and loads the signing key.
func NewKeyedProvider(cfg *config.EthereumConfig, logger *zap.Logger) (*KeyedProvider, error) {
	if cfg.RPCURL == "" {
		return nil, ErrNoProvider
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoProvider, err)
	}

	privateKey, err := crypto.HexToECDSA(cfg.SignerPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("signer_address", address.Hex()))

	return &KeyedProvider{
		config:     cfg,
		client:     client,
		privateKey: privateKey,
		address:    address,
		logger:     logger,
	}, nil
}

// RequestAccounts grants the keyed account. A locally keyed provider has no
// access prompt to decline.
func (p *KeyedProvider) RequestAccounts(_ context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

// BalanceAt returns the current balance of account in wei.
func (p *KeyedProvider) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return p.client.BalanceAt(ctx, account, nil)
}

// NewTransactor returns a signer handle for the keyed account with the
// configured gas settings applied.
func (p *KeyedProvider) NewTransactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	if account != p.address {
		return nil, fmt.Errorf("account %s is not held by this provider", account.Hex())
	}

	chainID := big.NewInt(p.config.ChainID)
	auth, err := bind.NewKeyedTransactorWithChainID(p.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := p.client.PendingNonceAt(ctx, p.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = p.config.GasLimit

	// Cap the suggested gas price when a maximum is configured.
	if p.config.MaxGasPrice != "" {
		maxGasPrice := new(big.Int)
		maxGasPrice.SetString(p.config.MaxGasPrice, 10)

		gasPrice, err := p.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			p.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// Backend exposes the RPC client for contract bindings.
func (p *KeyedProvider) Backend() Backend {
	return p.client
}

// Close closes the RPC connection.
func (p *KeyedProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}
