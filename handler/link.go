package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

// LinkResponse carries a generated affiliate link
type LinkResponse struct {
	Link string `json:"link"`
}

// GenerateLink handles GET /affiliate/link
// @Summary Generate an affiliate link
// @Description Builds the outbound tracking URL for a partner product, carrying any utm_* query parameters through
// @Tags Links
// @Produce json
// @Param p query string true "Partner ID"
// @Param pr query string true "Product ID"
// @Param base query string false "Base URL override (defaults to the service base URL)"
// @Param utm_source query string false "UTM source"
// @Param utm_medium query string false "UTM medium"
// @Param utm_campaign query string false "UTM campaign"
// @Success 200 {object} LinkResponse "Generated link"
// @Failure 400 {object} ErrorResponse "Invalid identifiers or base URL"
// @Failure 404 {object} ErrorResponse "Partner or product missing or inactive"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/link [get]
func (h *AffiliateHandler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.buildLink(r)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	SendJSONSuccess(w, http.StatusOK, LinkResponse{Link: link})
}

// GenerateLinkQR handles GET /affiliate/link/qr - renders the affiliate link as a QR code
// @Summary Generate a QR code for an affiliate link
// @Description Builds the affiliate link and renders it as a PNG QR code
// @Tags Links
// @Produce png
// @Param p query string true "Partner ID"
// @Param pr query string true "Product ID"
// @Param size query int false "Image size in pixels (128-1024, default 256)"
// @Param level query string false "Error correction level: low, medium, high, highest (default medium)"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Partner or product missing or inactive"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /affiliate/link/qr [get]
func (h *AffiliateHandler) GenerateLinkQR(w http.ResponseWriter, r *http.Request) {
	link, err := h.buildLink(r)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	query := r.URL.Query()

	// Get size parameter (default: 256, min: 128, max: 1024)
	size := 256
	if sizeStr := query.Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil {
			SendJSONError(w, http.StatusBadRequest, errors.New("invalid size parameter"), "Size must be a number")
			return
		}
		if parsedSize < 128 || parsedSize > 1024 {
			SendJSONError(w, http.StatusBadRequest, errors.New("size out of range"), "Size must be between 128 and 1024")
			return
		}
		size = parsedSize
	}

	// Get error correction level (default: medium)
	level := qrcode.Medium
	if levelStr := query.Get("level"); levelStr != "" {
		switch levelStr {
		case "low":
			level = qrcode.Low
		case "medium":
			level = qrcode.Medium
		case "high":
			level = qrcode.High
		case "highest":
			level = qrcode.Highest
		default:
			SendJSONError(w, http.StatusBadRequest, errors.New("invalid level parameter"), "Level must be: low, medium, high, or highest")
			return
		}
	}

	qrCode, err := qrcode.Encode(link, level, size)
	if err != nil {
		log.Error().Err(err).Str("link", link).Msg("Failed to generate QR code")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	w.Header().Set("Content-Length", strconv.Itoa(len(qrCode)))

	if _, err := w.Write(qrCode); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
	}
}

// buildLink assembles the affiliate link from request parameters, passing
// every utm_* query parameter through to the generator.
func (h *AffiliateHandler) buildLink(r *http.Request) (string, error) {
	query := r.URL.Query()

	baseURL := query.Get("base")
	if baseURL == "" {
		baseURL = h.baseURL
	}

	utmParams := make(map[string]string)
	for key, values := range query {
		if strings.HasPrefix(key, "utm_") && len(values) > 0 {
			utmParams[key] = values[0]
		}
	}

	ctx, cancel := h.opContext(r)
	defer cancel()
	return h.service.GenerateAffiliateLink(ctx, query.Get("p"), query.Get("pr"), baseURL, utmParams)
}
