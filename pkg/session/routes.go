package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/viaandina/ticketchain/internal/metrics"
	"github.com/viaandina/ticketchain/pkg/localstore"
)

// maxFrequentRoutes bounds the remembered route list.
const maxFrequentRoutes = 5

// Route is one remembered origin/destination pair.
type Route struct {
	Origin      string `json:"from"`
	Destination string `json:"to"`
}

// loadRoutes reads the persisted route list. A missing key is an empty list;
// a corrupt value is discarded rather than propagated.
func loadRoutes(store localstore.Store) ([]Route, error) {
	raw, err := store.Get(keyFrequentRoutes)
	if err != nil {
		if errors.Is(err, localstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load frequent routes: %w", err)
	}

	var routes []Route
	if err := json.Unmarshal([]byte(raw), &routes); err != nil {
		return nil, nil
	}
	if len(routes) > maxFrequentRoutes {
		routes = routes[:maxFrequentRoutes]
	}
	return routes, nil
}

// pushRoute returns routes with r promoted to the front, deduplicated by
// exact (from, to) match and truncated to maxFrequentRoutes. A->B and B->A
// are distinct routes.
func pushRoute(routes []Route, r Route) []Route {
	out := make([]Route, 0, maxFrequentRoutes)
	out = append(out, r)
	for _, existing := range routes {
		if existing == r {
			continue
		}
		out = append(out, existing)
		if len(out) == maxFrequentRoutes {
			break
		}
	}
	return out
}

// recordRoute persists the purchased route at the front of the list. Called
// with the manager lock held.
func (m *Manager) recordRoute(r Route) {
	m.routes = pushRoute(m.routes, r)
	metrics.FrequentRoutes.Set(float64(len(m.routes)))

	raw, err := json.Marshal(m.routes)
	if err != nil {
		return
	}
	if err := m.store.Set(keyFrequentRoutes, string(raw)); err != nil {
		m.logger.Warn("Failed to persist frequent routes", zap.Error(err))
	}
}
