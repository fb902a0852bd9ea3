package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"affiliate-tracker/affiliate"

	"github.com/rs/zerolog/log"
)

// TrackClickRequest is the body for POST /affiliate/click
type TrackClickRequest struct {
	PartnerID   string `json:"partnerId" example:"65f1a2b3c4d5e6f701234567"`
	ProductID   string `json:"productId" example:"65f1a2b3c4d5e6f701234570"`
	UserID      string `json:"userId,omitempty"`
	Referrer    string `json:"referrer,omitempty"`
	SessionID   string `json:"sessionId,omitempty"`
	UTMSource   string `json:"utmSource,omitempty"`
	UTMMedium   string `json:"utmMedium,omitempty"`
	UTMCampaign string `json:"utmCampaign,omitempty"`
}

// TrackClick handles POST /affiliate/click
// @Summary Track an affiliate click
// @Description Records an inbound click for an active partner and product and returns the issued tracking ID
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body TrackClickRequest true "Click details"
// @Success 201 {object} TrackResponse "Click tracked"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Partner or product missing or inactive"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/click [post]
func (h *AffiliateHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	var req TrackClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid JSON body")
		return
	}

	trackingID, err := h.service.TrackClick(ctx, affiliate.ClickInput{
		PartnerID:   req.PartnerID,
		ProductID:   req.ProductID,
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
		UserID:      req.UserID,
		Referrer:    firstNonEmpty(req.Referrer, r.Referer()),
		SessionID:   req.SessionID,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusCreated, TrackResponse{TrackingID: trackingID})
}

// Redirect handles GET /affiliate/redirect
// @Summary Follow an affiliate link
// @Description Tracks the click and redirects the visitor to the product's application URL with the tracking reference attached
// @Tags Tracking
// @Param p query string true "Partner ID"
// @Param pr query string true "Product ID"
// @Param uid query string false "Known user ID"
// @Param utm_source query string false "UTM source"
// @Param utm_medium query string false "UTM medium"
// @Param utm_campaign query string false "UTM campaign"
// @Success 302 "Redirect to the partner application page"
// @Failure 400 {object} ErrorResponse "Invalid identifiers"
// @Failure 404 {object} ErrorResponse "Partner or product missing or inactive"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/redirect [get]
func (h *AffiliateHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	query := r.URL.Query()
	partnerID := query.Get("p")
	productID := query.Get("pr")
	if partnerID == "" || productID == "" {
		SendJSONError(w, http.StatusBadRequest, errors.New("missing p or pr parameter"), "Both partner and product IDs are required")
		return
	}

	result, err := h.service.ProcessRedirect(ctx, partnerID, productID, affiliate.RequestContext{
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
		Referrer:    r.Referer(),
		SessionID:   query.Get("sid"),
		UTMSource:   query.Get("utm_source"),
		UTMMedium:   query.Get("utm_medium"),
		UTMCampaign: query.Get("utm_campaign"),
	}, query.Get("uid"))
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	log.Info().
		Str("tracking_id", result.TrackingID).
		Str("partner_id", partnerID).
		Msg("Redirecting visitor")

	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
