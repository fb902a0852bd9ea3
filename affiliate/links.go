package affiliate

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"affiliate-tracker/utils"

	"github.com/rs/zerolog/log"
)

// RequestContext is the client context of an inbound redirect request.
type RequestContext struct {
	IPAddress   string
	UserAgent   string
	Referrer    string
	SessionID   string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// RedirectResult pairs the issued tracking ID with the resolved partner URL.
type RedirectResult struct {
	TrackingID  string `json:"trackingId"`
	RedirectURL string `json:"redirectUrl"`
}

// GenerateAffiliateLink builds the outbound tracking URL for a partner
// product: baseURL + the redirect path, carrying partner and product IDs
// plus any supplied UTM parameters. It validates the catalog the same way
// TrackClick does but records nothing; link generation is not itself a
// tracked event. Output is deterministic for identical inputs.
func (s *Service) GenerateAffiliateLink(ctx context.Context, partnerID, productID, baseURL string, utmParams map[string]string) (string, error) {
	if err := utils.ValidateEntityID(partnerID); err != nil {
		return "", &InvalidIdentifierError{Field: "partnerId", Reason: err}
	}
	if err := utils.ValidateEntityID(productID); err != nil {
		return "", &InvalidIdentifierError{Field: "productId", Reason: err}
	}
	if err := utils.ValidateBaseURL(baseURL); err != nil {
		return "", err
	}

	if _, err := s.catalog.ActivePartner(ctx, partnerID); err != nil {
		return "", err
	}
	if _, err := s.catalog.ActiveProduct(ctx, productID); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("p", partnerID)
	query.Set("pr", productID)
	for key, value := range utmParams {
		if strings.HasPrefix(key, "utm_") && value != "" {
			query.Set(key, value)
		}
	}

	link := fmt.Sprintf("%s%s?%s", strings.TrimRight(baseURL, "/"), s.cfg.RedirectPath, query.Encode())
	return link, nil
}

// ProcessRedirect records the click and resolves the product's application
// URL, appending the new tracking ID as the ref parameter and propagating
// UTM parameters. The product is re-checked after tracking: it can be
// deactivated between the two reads.
func (s *Service) ProcessRedirect(ctx context.Context, partnerID, productID string, reqCtx RequestContext, userID string) (*RedirectResult, error) {
	trackingID, err := s.TrackClick(ctx, ClickInput{
		PartnerID:   partnerID,
		ProductID:   productID,
		IPAddress:   reqCtx.IPAddress,
		UserAgent:   reqCtx.UserAgent,
		UserID:      userID,
		Referrer:    reqCtx.Referrer,
		SessionID:   reqCtx.SessionID,
		UTMSource:   reqCtx.UTMSource,
		UTMMedium:   reqCtx.UTMMedium,
		UTMCampaign: reqCtx.UTMCampaign,
	})
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.ActiveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	target, err := url.Parse(product.ApplicationURL)
	if err != nil {
		return nil, fmt.Errorf("parsing application URL for product %s: %w", productID, err)
	}

	query := target.Query()
	query.Set("ref", trackingID)
	if reqCtx.UTMSource != "" {
		query.Set("utm_source", reqCtx.UTMSource)
	}
	if reqCtx.UTMMedium != "" {
		query.Set("utm_medium", reqCtx.UTMMedium)
	}
	if reqCtx.UTMCampaign != "" {
		query.Set("utm_campaign", reqCtx.UTMCampaign)
	}
	target.RawQuery = query.Encode()

	log.Info().
		Str("tracking_id", trackingID).
		Str("product_id", productID).
		Str("redirect_host", target.Host).
		Msg("Redirect resolved")

	return &RedirectResult{
		TrackingID:  trackingID,
		RedirectURL: target.String(),
	}, nil
}
