package affiliate

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"affiliate-tracker/model"
	"affiliate-tracker/utils"

	"github.com/rs/zerolog/log"
)

const (
	trackingCharset      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingSuffixLength = 12
)

// ClickInput carries one inbound affiliate click. PartnerID, ProductID,
// IPAddress, and UserAgent are required; everything else is optional
// context.
type ClickInput struct {
	PartnerID   string
	ProductID   string
	IPAddress   string
	UserAgent   string
	UserID      string
	Referrer    string
	SessionID   string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// TrackClick validates and appends a click to the ledger, returning the
// freshly issued tracking ID. Validation order: identifier shape, then
// partner existence/active state, then product existence/active state.
func (s *Service) TrackClick(ctx context.Context, in ClickInput) (string, error) {
	if err := utils.ValidateEntityID(in.PartnerID); err != nil {
		return "", &InvalidIdentifierError{Field: "partnerId", Reason: err}
	}
	if err := utils.ValidateEntityID(in.ProductID); err != nil {
		return "", &InvalidIdentifierError{Field: "productId", Reason: err}
	}
	if in.IPAddress == "" {
		return "", ErrMissingIPAddress
	}
	if in.UserAgent == "" {
		return "", ErrMissingUserAgent
	}

	if _, err := s.catalog.ActivePartner(ctx, in.PartnerID); err != nil {
		return "", err
	}
	if _, err := s.catalog.ActiveProduct(ctx, in.ProductID); err != nil {
		return "", err
	}

	trackingID, err := newTrackingID()
	if err != nil {
		return "", err
	}

	click := model.Click{
		TrackingID:  trackingID,
		PartnerID:   in.PartnerID,
		ProductID:   in.ProductID,
		UserID:      in.UserID,
		IPAddress:   in.IPAddress,
		UserAgent:   in.UserAgent,
		Referrer:    in.Referrer,
		SessionID:   in.SessionID,
		UTMSource:   in.UTMSource,
		UTMMedium:   in.UTMMedium,
		UTMCampaign: in.UTMCampaign,
		ClickedAt:   time.Now().UTC(),
		Converted:   false,
	}

	if err := s.ledger.Append(ctx, click); err != nil {
		return "", err
	}

	log.Info().
		Str("tracking_id", trackingID).
		Str("partner_id", in.PartnerID).
		Str("product_id", in.ProductID).
		Str("utm_source", in.UTMSource).
		Msg("Click tracked")

	return trackingID, nil
}

// newTrackingID issues a collision-resistant, unguessable token: a base-36
// millisecond timestamp followed by a cryptographically random suffix.
func newTrackingID() (string, error) {
	suffix, err := randomString(trackingSuffixLength)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix, nil
}

// randomString generates a cryptographically secure random string
func randomString(length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(trackingCharset))))
		if err != nil {
			return "", err
		}
		result[i] = trackingCharset[num.Int64()]
	}
	return string(result), nil
}
