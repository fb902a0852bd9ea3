package affiliate

import (
	"context"
	"math"
	"time"

	"affiliate-tracker/ledger"
	"affiliate-tracker/model"
	"affiliate-tracker/utils"

	"github.com/rs/zerolog/log"
)

// ConversionInput reports a business conversion for a tracked click.
// ConversionValue is only consulted for percentage commission structures;
// the commission itself is always derived server-side.
type ConversionInput struct {
	TrackingID      string
	ConversionType  string
	ConversionValue float64
	Metadata        map[string]string
}

// RecordConversion transitions a tracked click from pending to converted.
// The transition is terminal: a click converts at most once, and the final
// write is conditional on the stored document still being unconverted, so
// two racing conversions can never both pay out.
//
// A conversion arriving after the owning partner's attribution window
// (window days of elapsed wall-clock time since the click) is rejected
// without mutating anything.
func (s *Service) RecordConversion(ctx context.Context, in ConversionInput) error {
	if err := utils.ValidateTrackingID(in.TrackingID); err != nil {
		return &InvalidIdentifierError{Field: "trackingId", Reason: err}
	}

	click, err := s.ledger.Get(ctx, in.TrackingID)
	if err != nil {
		return err
	}
	if click.Converted {
		return ledger.ErrAlreadyConverted
	}

	partner, err := s.catalog.Partner(ctx, click.PartnerID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	window := time.Duration(partner.TrackingConfig.AttributionWindow) * 24 * time.Hour
	if now.Sub(click.ClickedAt) > window {
		log.Warn().
			Str("tracking_id", in.TrackingID).
			Time("clicked_at", click.ClickedAt).
			Int("window_days", partner.TrackingConfig.AttributionWindow).
			Msg("Conversion rejected: attribution window expired")
		return ErrAttributionWindowExpired
	}

	commission := computeCommission(partner.CommissionStructure, in.ConversionValue)

	updated := *click
	updated.Converted = true
	updated.ConversionDate = &now
	updated.ConversionType = in.ConversionType
	updated.CommissionAmount = commission
	updated.PaymentStatus = model.PaymentPending
	if len(in.Metadata) > 0 {
		if updated.Metadata == nil {
			updated.Metadata = make(map[string]string, len(in.Metadata))
		}
		for k, v := range in.Metadata {
			updated.Metadata[k] = v
		}
	}

	if err := s.ledger.Convert(ctx, updated); err != nil {
		return err
	}

	log.Info().
		Str("tracking_id", in.TrackingID).
		Str("partner_id", click.PartnerID).
		Str("conversion_type", in.ConversionType).
		Float64("commission", commission).
		Msg("Conversion recorded")

	return nil
}

// computeCommission derives the payable commission from the partner's
// commission structure. A missing conversion value is treated as 0 for
// percentage structures. The result is rounded half-up to two decimal
// places (currency minor units).
func computeCommission(cs model.CommissionStructure, conversionValue float64) float64 {
	var amount float64
	switch cs.Type {
	case model.CommissionFixed:
		amount = cs.Amount
	case model.CommissionPercentage:
		amount = conversionValue * cs.Amount / 100
	}
	return roundHalfUp(amount)
}

// roundHalfUp rounds a non-negative amount half-up to two decimals.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
