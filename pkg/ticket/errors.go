package ticket

import "errors"

var (
	// ErrUnauthorized is returned when the contract rejects a state change
	// from the calling account, e.g. markAsUsed from a non-inspector.
	ErrUnauthorized = errors.New("caller not authorized for this operation")

	// ErrNotFound is returned when the queried token does not exist.
	ErrNotFound = errors.New("ticket not found")

	// ErrMintEventNotFound is returned when a mint transaction was mined but
	// its receipt carried no TicketMinted event, so the new token id cannot
	// be determined.
	ErrMintEventNotFound = errors.New("mint succeeded but TicketMinted event not found")

	// ErrTransactionFailed is returned when a transaction reverted on chain.
	ErrTransactionFailed = errors.New("transaction failed")
)
