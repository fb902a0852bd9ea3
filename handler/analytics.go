package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

// AnalyticsOverview handles GET /affiliate/analytics/overview
// @Summary Overall performance metrics
// @Description Returns click, conversion, and commission totals for the requested date range
// @Tags Analytics
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} model.OverallMetrics "Overall metrics"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/analytics/overview [get]
func (h *AffiliateHandler) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	metrics, err := h.service.OverallMetrics(ctx, dateRange)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, metrics)
}

// PartnerAnalytics handles GET /affiliate/analytics/partners
// @Summary Per-partner performance ranking
// @Description Returns partner performance for the range, ranked by commission, with growth against the preceding period of equal length
// @Tags Analytics
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Param limit query int false "Maximum rows (default from configuration)"
// @Success 200 {array} model.PartnerPerformance "Partner performance rows"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/analytics/partners [get]
func (h *AffiliateHandler) PartnerAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	limit, err := h.parseLimit(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid limit")
		return
	}

	rows, err := h.service.PartnerPerformance(ctx, dateRange, limit)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, rows)
}

// ProductAnalytics handles GET /affiliate/analytics/products
// @Summary Per-product performance ranking
// @Description Returns product performance for the range, optionally filtered to one partner
// @Tags Analytics
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Param partner query string false "Restrict to one partner ID"
// @Param limit query int false "Maximum rows (default from configuration)"
// @Success 200 {array} model.ProductPerformance "Product performance rows"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/analytics/products [get]
func (h *AffiliateHandler) ProductAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	limit, err := h.parseLimit(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid limit")
		return
	}

	rows, err := h.service.ProductPerformance(ctx, dateRange, r.URL.Query().Get("partner"), limit)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, rows)
}

// DailyAnalytics handles GET /affiliate/analytics/daily
// @Summary Day-by-day metrics
// @Description Returns one row per calendar day in the range, zero-filled for days without traffic
// @Tags Analytics
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} model.DailyMetric "Daily metrics"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/analytics/daily [get]
func (h *AffiliateHandler) DailyAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	rows, err := h.service.DailyMetrics(ctx, dateRange)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, rows)
}

// ExportAnalytics handles GET /affiliate/analytics/export
// @Summary Export performance data as CSV
// @Description Renders the partners, products, or daily aggregate as a downloadable CSV file
// @Tags Analytics
// @Produce text/csv
// @Param kind query string true "Export kind: partners, products, or daily"
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/analytics/export [get]
func (h *AffiliateHandler) ExportAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	kind := r.URL.Query().Get("kind")
	data, err := h.service.ExportPerformanceData(ctx, dateRange, kind)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("affiliate-%s-%s.csv", kind, dateRange.End.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))

	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("Failed to write CSV response")
	}
}

// parseLimit reads the optional limit query parameter, falling back to the
// configured partner limit.
func (h *AffiliateHandler) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.config.Affiliate.PartnerLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be a number: %w", err)
	}
	if limit < 0 {
		return 0, fmt.Errorf("limit must not be negative")
	}
	return limit, nil
}
