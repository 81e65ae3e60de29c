// Package storefront exposes the ticket storefront over HTTP for UI
// front-ends: session lifecycle, purchases, history, frequent routes, and
// gate-side verification.
package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/viaandina/ticketchain/pkg/app/errors"
	apphttp "github.com/viaandina/ticketchain/pkg/app/http"
	"github.com/viaandina/ticketchain/pkg/session"
	"github.com/viaandina/ticketchain/pkg/ticket"
	"github.com/viaandina/ticketchain/pkg/verify"
	"github.com/viaandina/ticketchain/pkg/wallet"
)

// HTTP wraps the session manager and verifier with HTTP endpoints
type HTTP struct {
	sessions *session.Manager
	verifier *verify.Verifier
	validate *validator.Validate
	logger   *zap.Logger
}

// RegisterRoutes registers the storefront endpoints on the given chi router
func RegisterRoutes(r chi.Router, sessions *session.Manager, verifier *verify.Verifier, logger *zap.Logger) {
	h := &HTTP{
		sessions: sessions,
		verifier: verifier,
		validate: validator.New(),
		logger:   logger,
	}

	r.Post("/connect", apphttp.HandleError(h.connect))
	r.Post("/disconnect", apphttp.HandleError(h.disconnect))
	r.Get("/session", apphttp.HandleError(h.session))
	r.Post("/tickets", apphttp.HandleError(h.purchase))
	r.Get("/tickets", apphttp.HandleError(h.listTickets))
	r.Get("/routes/frequent", apphttp.HandleError(h.frequentRoutes))
	r.Post("/verify", apphttp.HandleError(h.verify))
	r.Post("/verify/{tokenID}/use", apphttp.HandleError(h.markUsed))
}

func (h *HTTP) connect(w http.ResponseWriter, r *http.Request) error {
	snap, err := h.sessions.Connect(r.Context())
	if err != nil {
		return toServiceError(err)
	}
	h.writeJSON(w, http.StatusOK, snap)
	return nil
}

func (h *HTTP) disconnect(w http.ResponseWriter, r *http.Request) error {
	h.sessions.Disconnect()
	h.writeJSON(w, http.StatusOK, h.sessions.Snapshot())
	return nil
}

func (h *HTTP) session(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Query().Get("refresh") == "true" {
		if _, err := h.sessions.RefreshBalance(r.Context()); err != nil {
			return toServiceError(err)
		}
	}
	h.writeJSON(w, http.StatusOK, h.sessions.Snapshot())
	return nil
}

func (h *HTTP) purchase(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req session.PurchaseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "invalid purchase request")
	}

	record, err := h.sessions.PurchaseTicket(r.Context(), req)
	if err != nil {
		return toServiceError(err)
	}

	h.writeJSON(w, http.StatusCreated, record)
	return nil
}

func (h *HTTP) listTickets(w http.ResponseWriter, r *http.Request) error {
	records, err := h.sessions.LoadTickets(r.Context())
	if err != nil {
		return toServiceError(err)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"tickets": records})
	return nil
}

func (h *HTTP) frequentRoutes(w http.ResponseWriter, r *http.Request) error {
	h.writeJSON(w, http.StatusOK, map[string]any{"routes": h.sessions.FrequentRoutes()})
	return nil
}

func (h *HTTP) verify(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req struct {
		TokenID string `json:"tokenId"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if req.TokenID == "" {
		return apperrors.BadRequestError(nil, "tokenId is required")
	}

	// Verification outcomes, including failed lookups, are 200s: the result
	// object carries the outcome.
	h.writeJSON(w, http.StatusOK, h.verifier.Verify(r.Context(), req.TokenID))
	return nil
}

func (h *HTTP) markUsed(w http.ResponseWriter, r *http.Request) error {
	tokenID := chi.URLParam(r, "tokenID")

	result, err := h.verifier.MarkUsed(r.Context(), tokenID)
	if err != nil {
		return toServiceError(err)
	}

	h.writeJSON(w, http.StatusOK, result)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// toServiceError maps domain sentinel errors onto HTTP-facing service errors.
// Errors that are already ServiceErrors pass through untouched.
func toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	switch {
	case errors.Is(err, wallet.ErrNoProvider):
		return apperrors.DependencyError(err, "no wallet provider available")
	case errors.Is(err, wallet.ErrUserRejected):
		return apperrors.UnAuthorizedError(err, "wallet connection rejected")
	case errors.Is(err, wallet.ErrNotConnected):
		return apperrors.PreconditionFailedError(err, "wallet not connected")
	case errors.Is(err, ticket.ErrNotFound):
		return apperrors.ResourceNotFoundError(err, "ticket not found")
	case errors.Is(err, ticket.ErrUnauthorized):
		return apperrors.UnAuthorizedError(err, "not authorized for this operation")
	case errors.Is(err, ticket.ErrMintEventNotFound):
		return apperrors.DependencyError(err, "mint event not found in receipt")
	case errors.Is(err, ticket.ErrTransactionFailed):
		return apperrors.DependencyError(err, "transaction failed on chain")
	default:
		return apperrors.GeneralError(err)
	}
}
