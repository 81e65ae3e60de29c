// Package verify implements gate-side ticket verification: look a ticket up
// by token id, decide validity, and mark it used after travel. Verification
// never fails the caller; every outcome, including lookup failures, is folded
// into the result object.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/internal/metrics"
	apperrors "github.com/viaandina/ticketchain/pkg/app/errors"
	"github.com/viaandina/ticketchain/pkg/ticket"
)

// sessionManager is the slice of the session manager the verifier uses.
type sessionManager interface {
	ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error)
	ReadTicket(ctx context.Context, tokenID *big.Int) (*ticket.Record, error)
	MarkTicketUsed(ctx context.Context, tokenID *big.Int) error
}

// Result is one verification outcome. ID tags the attempt for log and API
// correlation. IsValid means the ticket exists and has not been used; the
// Error slot carries lookup failures instead of propagating them.
type Result struct {
	ID      string         `json:"id"`
	TokenID string         `json:"tokenId"`
	IsValid bool           `json:"isValid"`
	Used    bool           `json:"used"`
	Ticket  *ticket.Record `json:"ticket,omitempty"`
	Error   string         `json:"error,omitempty"`
	UsedAt  *time.Time     `json:"usedAt,omitempty"`
}

// Verifier runs the verification flow against the live chain state.
type Verifier struct {
	session sessionManager
	logger  *zap.Logger
}

// NewVerifier creates a verifier over the session manager.
func NewVerifier(session sessionManager, logger *zap.Logger) *Verifier {
	return &Verifier{
		session: session,
		logger:  logger,
	}
}

// Verify checks the ticket identified by tokenID. The used flag is always a
// live chain read. Verify does not return an error: a failed lookup produces
// a result with IsValid false and the failure in the Error slot.
func (v *Verifier) Verify(ctx context.Context, tokenID string) *Result {
	result := &Result{
		ID:      uuid.New().String(),
		TokenID: tokenID,
	}

	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok || id.Sign() < 0 {
		result.Error = "token id must be a decimal number"
		metrics.VerificationsTotal.WithLabelValues("invalid_id").Inc()
		return result
	}

	used, err := v.session.ReadUsed(ctx, id)
	if err != nil {
		v.fail(result, "failed to read ticket state", err)
		return result
	}
	result.Used = used

	record, err := v.session.ReadTicket(ctx, id)
	if err != nil {
		v.fail(result, "failed to read ticket", err)
		return result
	}
	result.Ticket = record
	result.IsValid = !used

	outcome := "valid"
	if used {
		outcome = "used"
	}
	metrics.VerificationsTotal.WithLabelValues(outcome).Inc()
	v.logger.Info("Ticket verified",
		zap.String("verification_id", result.ID),
		zap.String("token_id", tokenID),
		zap.Bool("is_valid", result.IsValid))

	return result
}

// MarkUsed marks a verified ticket as used. Only valid tickets can be marked;
// the new state is confirmed with a fresh chain read before UsedAt is set, so
// a reported UsedAt always reflects committed chain state.
func (v *Verifier) MarkUsed(ctx context.Context, tokenID string) (*Result, error) {
	result := v.Verify(ctx, tokenID)
	if result.Error != "" {
		return nil, apperrors.DependencyError(errors.New(result.Error), "verification failed")
	}
	if !result.IsValid {
		return nil, apperrors.PreconditionFailedError(nil, "ticket is not valid for travel")
	}

	id, _ := new(big.Int).SetString(tokenID, 10)
	if err := v.session.MarkTicketUsed(ctx, id); err != nil {
		return nil, err
	}

	used, err := v.session.ReadUsed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm used state: %w", err)
	}
	if !used {
		return nil, apperrors.DependencyError(nil, "used flag not visible after markAsUsed")
	}

	now := time.Now().UTC()
	result.Used = true
	result.IsValid = false
	result.UsedAt = &now
	if result.Ticket != nil {
		result.Ticket.Used = true
	}

	v.logger.Info("Ticket marked as used",
		zap.String("verification_id", result.ID),
		zap.String("token_id", tokenID))

	return result, nil
}

func (v *Verifier) fail(result *Result, message string, err error) {
	result.Error = fmt.Sprintf("%s: %v", message, err)
	metrics.VerificationsTotal.WithLabelValues("error").Inc()
	v.logger.Warn("Verification failed",
		zap.String("verification_id", result.ID),
		zap.String("token_id", result.TokenID),
		zap.Error(err))
}
