package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"affiliate-tracker/affiliate"
	"affiliate-tracker/cache"
	"affiliate-tracker/catalog"
	"affiliate-tracker/config"
	"affiliate-tracker/ledger"
	"affiliate-tracker/utils"

	"github.com/gorilla/mux"
)

// AffiliateHandler exposes the affiliate engine over HTTP
type AffiliateHandler struct {
	service *affiliate.Service
	cache   *cache.Cache
	config  config.Config
	baseURL string
}

// NewAffiliateHandler creates the handler with dependency injection
func NewAffiliateHandler(service *affiliate.Service, cacheClient *cache.Cache, cfg config.Config) *AffiliateHandler {
	// Use configured base_url if provided, otherwise construct from scheme, IP, and port
	baseURL := cfg.WebServer.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s://%s:%s", cfg.WebServer.Scheme, cfg.WebServer.IP, cfg.WebServer.Port)
	}
	return &AffiliateHandler{
		service: service,
		cache:   cacheClient,
		config:  cfg,
		baseURL: baseURL,
	}
}

// opContext derives a request context bounded by the configured persistence
// operation timeout.
func (h *AffiliateHandler) opContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(h.config.Redis.OperationTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// sendServiceError maps the engine's error taxonomy to HTTP status codes.
// Business-rule rejections are terminal for the caller; only the generic 500
// class should be retried.
func (h *AffiliateHandler) sendServiceError(w http.ResponseWriter, err error) {
	var invalidID *affiliate.InvalidIdentifierError
	var invalidIDs *affiliate.InvalidIdentifiersError

	switch {
	case errors.As(err, &invalidID),
		errors.As(err, &invalidIDs),
		errors.Is(err, affiliate.ErrMissingIPAddress),
		errors.Is(err, affiliate.ErrMissingUserAgent),
		errors.Is(err, affiliate.ErrUnknownExportKind),
		errors.Is(err, utils.ErrEmptyBaseURL),
		errors.Is(err, utils.ErrInvalidBaseURL):
		SendJSONError(w, http.StatusBadRequest, err, "")
	case errors.Is(err, catalog.ErrPartnerNotFound), errors.Is(err, catalog.ErrPartnerInactive):
		SendJSONError(w, http.StatusNotFound, err, "Partner is missing or inactive")
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, catalog.ErrProductInactive):
		SendJSONError(w, http.StatusNotFound, err, "Product is missing or inactive")
	case errors.Is(err, ledger.ErrClickNotFound):
		SendJSONError(w, http.StatusNotFound, err, "Unknown tracking ID")
	case errors.Is(err, ledger.ErrAlreadyConverted):
		SendJSONError(w, http.StatusConflict, err, "Conversion was already recorded; do not retry")
	case errors.Is(err, affiliate.ErrAttributionWindowExpired):
		SendJSONError(w, http.StatusUnprocessableEntity, err, "Conversion arrived outside the attribution window")
	case errors.Is(err, affiliate.ErrNoEligibleCommissions):
		SendJSONError(w, http.StatusUnprocessableEntity, err, "No pending commissions matched the request")
	default:
		SendJSONError(w, http.StatusInternalServerError, err, "Internal server error")
	}
}

// parseDateRange reads the start/end query parameters. Dates accept
// YYYY-MM-DD (end expands to end-of-day) or RFC3339. Missing parameters
// default to the configured trailing window ending now.
func (h *AffiliateHandler) parseDateRange(r *http.Request) (affiliate.DateRange, error) {
	now := time.Now().UTC()
	days := h.config.Affiliate.DefaultRangeDays
	if days <= 0 {
		days = 30
	}

	dr := affiliate.DateRange{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := parseDate(raw, false)
		if err != nil {
			return dr, fmt.Errorf("invalid start date: %w", err)
		}
		dr.Start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := parseDate(raw, true)
		if err != nil {
			return dr, fmt.Errorf("invalid end date: %w", err)
		}
		dr.End = parsed
	}

	if dr.End.Before(dr.Start) {
		return dr, errors.New("end date precedes start date")
	}
	return dr, nil
}

func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if endOfDay {
			return t.Add(24*time.Hour - time.Second), nil
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// clientIP extracts the client IP, preferring proxy headers
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take the first IP if there are multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Reports service liveness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /health [get]
func (h *AffiliateHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// CacheMetrics handles GET /cache/metrics
// @Summary Catalog cache metrics
// @Description Returns hit/miss statistics for the catalog read cache
// @Tags System
// @Produce json
// @Success 200 {object} cache.MetricsSnapshot "Cache metrics"
// @Router /cache/metrics [get]
func (h *AffiliateHandler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, h.cache.GetMetricsSnapshot())
}
