package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WalletConnectsTotal counts wallet connection attempts by outcome
	WalletConnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketchain_wallet_connects_total",
			Help: "Total number of wallet connection attempts",
		},
		[]string{"status"},
	)

	// PurchasesTotal counts ticket purchases by outcome
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketchain_purchases_total",
			Help: "Total number of ticket purchase attempts",
		},
		[]string{"status"},
	)

	// PurchaseDuration tracks end-to-end purchase time including receipt wait
	PurchaseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticketchain_purchase_duration_seconds",
			Help:    "Ticket purchase duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// TicketLoadsTotal counts ticket history loads by outcome
	TicketLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketchain_ticket_loads_total",
			Help: "Total number of ticket history loads",
		},
		[]string{"status"},
	)

	// VerificationsTotal counts ticket verifications by result
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketchain_verifications_total",
			Help: "Total number of ticket verifications",
		},
		[]string{"result"},
	)

	// TicketsMarkedUsed counts successful markAsUsed operations
	TicketsMarkedUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketchain_tickets_marked_used_total",
			Help: "Total number of tickets marked as used",
		},
	)

	// FrequentRoutes tracks the number of routes currently remembered
	FrequentRoutes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticketchain_frequent_routes",
			Help: "Number of frequent routes currently tracked",
		},
	)

	// ContractErrorsTotal counts contract call failures by operation
	ContractErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketchain_contract_errors_total",
			Help: "Total number of contract call failures",
		},
		[]string{"operation"},
	)
)
