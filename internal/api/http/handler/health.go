package handler

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/logger"
)

const readinessTimeout = 5 * time.Second

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health handles liveness and readiness probes.
type Health struct {
	logger   *logger.Logger
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewHealth creates a new Health handler.
func NewHealth(logger *logger.Logger) *Health {
	return &Health{logger: logger, checkers: make(map[string]Checker)}
}

// Register adds a named dependency check to readiness.
func (h *Health) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Live answers 200 while the process runs.
func (h *Health) Live(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, http.StatusOK, "alive", nil)
}

// Ready runs every registered check and answers 503 if any fails.
func (h *Health) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	results := make([]checkResult, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		h.mu.RLock()
		check := h.checkers[name]
		h.mu.RUnlock()

		wg.Add(1)
		go func(i int, name string, check Checker) {
			defer wg.Done()
			results[i] = checkResult{Name: name, Status: "up"}
			if err := check(ctx); err != nil {
				results[i] = checkResult{Name: name, Status: "down", Error: err.Error()}
			}
		}(i, name, check)
	}
	wg.Wait()

	for _, res := range results {
		if res.Status == "down" {
			h.logger.Warn("Health handler: dependency is down",
				"dependency", res.Name,
				"error", res.Error)
			response.JSON(w, http.StatusServiceUnavailable, response.Envelope{Message: "not ready", Data: results})
			return
		}
	}
	response.OK(w, http.StatusOK, "ready", results)
}
