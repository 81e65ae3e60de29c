package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/viaandina/ticketchain/pkg/app/http"
	"github.com/viaandina/ticketchain/pkg/config"
	"github.com/viaandina/ticketchain/pkg/localstore"
	"github.com/viaandina/ticketchain/pkg/session"
	"github.com/viaandina/ticketchain/pkg/storefront"
	"github.com/viaandina/ticketchain/pkg/ticket"
	"github.com/viaandina/ticketchain/pkg/verify"
	"github.com/viaandina/ticketchain/pkg/wallet"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting ticket gateway")

	// Initialize local store
	store, err := localstore.NewBadgerStore(cfg.Storage.Path, "storefront")
	if err != nil {
		logger.Fatal("Failed to open local store", zap.Error(err))
	}
	defer store.Close()

	// Initialize wallet provider and gateway
	provider, err := wallet.NewKeyedProvider(&cfg.Ethereum, logger)
	if err != nil {
		logger.Fatal("Failed to initialize wallet provider", zap.Error(err))
	}
	defer provider.Close()

	gateway := wallet.NewGateway(provider, logger)

	// Bind the ticket contract
	contract, err := ticket.NewClient(common.HexToAddress(cfg.Ethereum.TicketContract), provider.Backend(), logger)
	if err != nil {
		logger.Fatal("Failed to bind ticket contract", zap.Error(err))
	}

	// Session manager and verifier
	sessions, err := session.NewManager(gateway, contract, store, logger)
	if err != nil {
		logger.Fatal("Failed to initialize session manager", zap.Error(err))
	}
	verifier := verify.NewVerifier(sessions, logger)

	// Setup HTTP server
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Ethereum.MintTimeout + 30*time.Second))

	// Health check endpoint (liveness)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		storefront.RegisterRoutes(r, sessions, verifier, logger)
	})

	// Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := apphttp.ServeAndWait(ctx, r, logger, &cfg.Server); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Ticket gateway stopped")
}
