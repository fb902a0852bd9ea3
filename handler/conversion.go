package handler

import (
	"encoding/json"
	"net/http"

	"affiliate-tracker/affiliate"
)

// ConversionRequest is the body for POST /affiliate/conversions
type ConversionRequest struct {
	TrackingID      string            `json:"trackingId"`
	ConversionType  string            `json:"conversionType,omitempty" example:"loan_approved"`
	ConversionValue float64           `json:"conversionValue,omitempty" example:"500000"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// RecordConversion handles POST /affiliate/conversions
// @Summary Record a conversion
// @Description Marks a tracked click as converted and computes its commission. A click converts at most once.
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body ConversionRequest true "Conversion details"
// @Success 200 {object} ConversionResponse "Conversion recorded"
// @Failure 400 {object} ErrorResponse "Invalid tracking ID"
// @Failure 404 {object} ErrorResponse "Unknown tracking ID"
// @Failure 409 {object} ErrorResponse "Conversion already recorded"
// @Failure 422 {object} ErrorResponse "Attribution window expired"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/conversions [post]
func (h *AffiliateHandler) RecordConversion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	var req ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid JSON body")
		return
	}

	err := h.service.RecordConversion(ctx, affiliate.ConversionInput{
		TrackingID:      req.TrackingID,
		ConversionType:  req.ConversionType,
		ConversionValue: req.ConversionValue,
		Metadata:        req.Metadata,
	})
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, ConversionResponse{Success: true})
}

// DetectFraud handles GET /affiliate/fraud/{trackingID}
// @Summary Score a click for fraud risk
// @Description Evaluates the click against the fraud rule set and returns the score, triggered indicators, and verdict
// @Tags Fraud
// @Produce json
// @Param trackingID path string true "Tracking ID"
// @Success 200 {object} model.FraudReport "Fraud report"
// @Failure 400 {object} ErrorResponse "Invalid tracking ID"
// @Failure 404 {object} ErrorResponse "Unknown tracking ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/fraud/{trackingID} [get]
func (h *AffiliateHandler) DetectFraud(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	report, err := h.service.DetectFraud(ctx, pathVar(r, "trackingID"))
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, report)
}
