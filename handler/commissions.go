package handler

import (
	"encoding/json"
	"net/http"
)

// PaymentRequest is the body for POST /affiliate/commissions/payments
type PaymentRequest struct {
	TrackingIDs      []string `json:"trackingIds"`
	PaymentMethod    string   `json:"paymentMethod,omitempty" example:"bank_transfer"`
	PaymentReference string   `json:"paymentReference,omitempty"`
}

// CommissionSummary handles GET /affiliate/commissions/summary
// @Summary Commission summary
// @Description Returns pending and paid commission totals for conversions in the range
// @Tags Commissions
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} model.CommissionSummary "Commission summary"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/commissions/summary [get]
func (h *AffiliateHandler) CommissionSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	summary, err := h.service.CommissionSummary(ctx, dateRange)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, summary)
}

// PartnerCommissions handles GET /affiliate/commissions/partners/{partnerID}
// @Summary Per-partner commission detail
// @Description Lists every converted click for one partner in the range with its commission and payment state
// @Tags Commissions
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} model.PartnerCommissionDetails "Commission entries"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Partner not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/commissions/partners/{partnerID} [get]
func (h *AffiliateHandler) PartnerCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	details, err := h.service.PartnerCommissionDetails(ctx, pathVar(r, "partnerID"), dateRange)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, details)
}

// PayCommissions handles POST /affiliate/commissions/payments
// @Summary Mark commissions as paid
// @Description Settles the pending commissions for the listed tracking IDs under one payment reference. Unknown, unconverted, and already-paid entries are skipped.
// @Tags Commissions
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Tracking IDs and payment details"
// @Success 200 {object} model.PaymentResult "Payment outcome"
// @Failure 400 {object} ErrorResponse "Malformed tracking IDs"
// @Failure 422 {object} ErrorResponse "No eligible commissions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/commissions/payments [post]
func (h *AffiliateHandler) PayCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid JSON body")
		return
	}

	result, err := h.service.MarkCommissionsAsPaid(ctx, req.TrackingIDs, req.PaymentMethod, req.PaymentReference)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, result)
}

// CommissionReport handles GET /affiliate/commissions/report
// @Summary Partner-by-partner commission report
// @Description Returns a per-partner commission breakdown for the range, ranked by total amount, with an overall summary
// @Tags Commissions
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} model.CommissionReport "Commission report"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/commissions/report [get]
func (h *AffiliateHandler) CommissionReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	dateRange, err := h.parseDateRange(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	report, err := h.service.GenerateCommissionReport(ctx, dateRange)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, report)
}
