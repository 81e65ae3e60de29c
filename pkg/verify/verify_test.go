package verify

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/viaandina/ticketchain/pkg/app/errors"
	"github.com/viaandina/ticketchain/pkg/ticket"
)

// MockSession is a mock implementation of sessionManager
type MockSession struct {
	ReadUsedFunc       func(ctx context.Context, tokenID *big.Int) (bool, error)
	ReadTicketFunc     func(ctx context.Context, tokenID *big.Int) (*ticket.Record, error)
	MarkTicketUsedFunc func(ctx context.Context, tokenID *big.Int) error
}

func (m *MockSession) ReadUsed(ctx context.Context, tokenID *big.Int) (bool, error) {
	if m.ReadUsedFunc != nil {
		return m.ReadUsedFunc(ctx, tokenID)
	}
	return false, nil
}

func (m *MockSession) ReadTicket(ctx context.Context, tokenID *big.Int) (*ticket.Record, error) {
	if m.ReadTicketFunc != nil {
		return m.ReadTicketFunc(ctx, tokenID)
	}
	return &ticket.Record{TokenID: tokenID.String(), Origin: "Lima", Destination: "Cusco"}, nil
}

func (m *MockSession) MarkTicketUsed(ctx context.Context, tokenID *big.Int) error {
	if m.MarkTicketUsedFunc != nil {
		return m.MarkTicketUsedFunc(ctx, tokenID)
	}
	return nil
}

func TestVerify_ValidTicket(t *testing.T) {
	v := NewVerifier(&MockSession{}, zap.NewNop())

	result := v.Verify(context.Background(), "7")
	if !result.IsValid {
		t.Errorf("Expected unused ticket to be valid")
	}
	if result.Used {
		t.Errorf("Expected used false")
	}
	if result.Ticket == nil || result.Ticket.TokenID != "7" {
		t.Errorf("Expected ticket record in result, got %+v", result.Ticket)
	}
	if result.ID == "" {
		t.Errorf("Expected verification id")
	}
	if result.Error != "" {
		t.Errorf("Expected no error, got %q", result.Error)
	}
}

func TestVerify_UsedTicketIsInvalid(t *testing.T) {
	session := &MockSession{
		ReadUsedFunc: func(ctx context.Context, tokenID *big.Int) (bool, error) {
			return true, nil
		},
	}
	v := NewVerifier(session, zap.NewNop())

	result := v.Verify(context.Background(), "7")
	if result.IsValid {
		t.Errorf("Expected used ticket to be invalid")
	}
	if !result.Used {
		t.Errorf("Expected used true")
	}
}

func TestVerify_LookupFailureLandsInErrorSlot(t *testing.T) {
	session := &MockSession{
		ReadTicketFunc: func(ctx context.Context, tokenID *big.Int) (*ticket.Record, error) {
			return nil, ticket.ErrNotFound
		},
	}
	v := NewVerifier(session, zap.NewNop())

	result := v.Verify(context.Background(), "99")
	if result.IsValid {
		t.Errorf("Expected failed lookup to be invalid")
	}
	if result.Error == "" {
		t.Errorf("Expected error slot populated")
	}
}

func TestVerify_BadTokenID(t *testing.T) {
	v := NewVerifier(&MockSession{}, zap.NewNop())

	for _, id := range []string{"", "abc", "-1", "1.5"} {
		result := v.Verify(context.Background(), id)
		if result.IsValid || result.Error == "" {
			t.Errorf("Expected %q rejected, got %+v", id, result)
		}
	}
}

func TestMarkUsed_ConfirmsBeforeSettingUsedAt(t *testing.T) {
	var marked bool
	usedOnChain := false
	session := &MockSession{
		ReadUsedFunc: func(ctx context.Context, tokenID *big.Int) (bool, error) {
			return usedOnChain, nil
		},
		MarkTicketUsedFunc: func(ctx context.Context, tokenID *big.Int) error {
			marked = true
			usedOnChain = true
			return nil
		},
	}
	v := NewVerifier(session, zap.NewNop())

	result, err := v.MarkUsed(context.Background(), "7")
	if err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}
	if !marked {
		t.Errorf("Expected markAsUsed submitted")
	}
	if !result.Used || result.IsValid {
		t.Errorf("Expected result flipped to used, got %+v", result)
	}
	if result.UsedAt == nil {
		t.Errorf("Expected UsedAt set after confirmation")
	}
}

func TestMarkUsed_RejectsAlreadyUsedTicket(t *testing.T) {
	session := &MockSession{
		ReadUsedFunc: func(ctx context.Context, tokenID *big.Int) (bool, error) {
			return true, nil
		},
	}
	v := NewVerifier(session, zap.NewNop())

	_, err := v.MarkUsed(context.Background(), "7")
	if !apperrors.Is(err, apperrors.CategoryPreconditionFailed) {
		t.Fatalf("Expected precondition failure for used ticket, got %v", err)
	}
}

func TestMarkUsed_UnconfirmedWriteFails(t *testing.T) {
	session := &MockSession{
		// markAsUsed "succeeds" but the read-back still reports unused.
	}
	v := NewVerifier(session, zap.NewNop())

	_, err := v.MarkUsed(context.Background(), "7")
	if err == nil {
		t.Fatalf("Expected error when used flag is not visible after write")
	}
}

func TestMarkUsed_PropagatesUnauthorized(t *testing.T) {
	session := &MockSession{
		MarkTicketUsedFunc: func(ctx context.Context, tokenID *big.Int) error {
			return ticket.ErrUnauthorized
		},
	}
	v := NewVerifier(session, zap.NewNop())

	_, err := v.MarkUsed(context.Background(), "7")
	if !errors.Is(err, ticket.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}
