package affiliate

import (
	"context"
	"errors"
	"sort"
	"time"

	"affiliate-tracker/ledger"
	"affiliate-tracker/model"
	"affiliate-tracker/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// convertedInRange loads the window's clicks and keeps converted ones.
func (s *Service) convertedInRange(ctx context.Context, r DateRange) ([]model.Click, error) {
	clicks, err := s.ledger.Range(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	converted := clicks[:0]
	for _, c := range clicks {
		if c.Converted {
			converted = append(converted, c)
		}
	}
	return converted, nil
}

func summarizeCommissions(converted []model.Click) model.CommissionSummary {
	var summary model.CommissionSummary
	for _, c := range converted {
		summary.TotalConversions++
		summary.TotalAmount += c.CommissionAmount
		if c.PaymentStatus == model.PaymentPaid {
			summary.PaidCount++
			summary.PaidAmount += c.CommissionAmount
		} else {
			summary.PendingCount++
			summary.PendingAmount += c.CommissionAmount
		}
	}
	return summary
}

// CommissionSummary returns the payout-status rollup over converted clicks
// in the window.
func (s *Service) CommissionSummary(ctx context.Context, r DateRange) (*model.CommissionSummary, error) {
	converted, err := s.convertedInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	summary := summarizeCommissions(converted)
	return &summary, nil
}

// PartnerCommissionDetails lists one partner's payable conversions in the
// window, joined to product names for display.
func (s *Service) PartnerCommissionDetails(ctx context.Context, partnerID string, r DateRange) (*model.PartnerCommissionDetails, error) {
	if err := utils.ValidateEntityID(partnerID); err != nil {
		return nil, &InvalidIdentifierError{Field: "partnerId", Reason: err}
	}

	partner, err := s.catalog.Partner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	converted, err := s.convertedInRange(ctx, r)
	if err != nil {
		return nil, err
	}

	details := &model.PartnerCommissionDetails{
		PartnerID:   partnerID,
		PartnerName: partner.Name,
		Entries:     []model.CommissionEntry{},
	}

	productNames := make(map[string]string)
	for _, c := range converted {
		if c.PartnerID != partnerID {
			continue
		}

		productName, cached := productNames[c.ProductID]
		if !cached {
			productName = c.ProductID
			if product, err := s.catalog.Product(ctx, c.ProductID); err == nil {
				productName = product.Name
			}
			productNames[c.ProductID] = productName
		}

		details.Entries = append(details.Entries, model.CommissionEntry{
			TrackingID:       c.TrackingID,
			ProductID:        c.ProductID,
			ProductName:      productName,
			ConversionDate:   c.ConversionDate,
			CommissionAmount: c.CommissionAmount,
			PaymentStatus:    c.PaymentStatus,
			PaymentReference: c.PaymentReference,
			PaymentDate:      c.PaymentDate,
		})

		details.TotalAmount += c.CommissionAmount
		if c.PaymentStatus == model.PaymentPaid {
			details.PaidAmount += c.CommissionAmount
		} else {
			details.PendingAmount += c.CommissionAmount
		}
	}

	return details, nil
}

// MarkCommissionsAsPaid settles the pending commissions among the supplied
// tracking IDs. All IDs must be well-formed; unknown, unconverted, and
// already-paid entries are skipped silently and contribute nothing to the
// result. When nothing eligible remains the call fails without writing.
func (s *Service) MarkCommissionsAsPaid(ctx context.Context, trackingIDs []string, paymentMethod, paymentReference string) (*model.PaymentResult, error) {
	var malformed []string
	for _, id := range trackingIDs {
		if err := utils.ValidateTrackingID(id); err != nil {
			malformed = append(malformed, id)
		}
	}
	if len(malformed) > 0 {
		return nil, &InvalidIdentifiersError{IDs: malformed}
	}

	var eligible []model.Click
	for _, id := range trackingIDs {
		click, err := s.ledger.Get(ctx, id)
		if errors.Is(err, ledger.ErrClickNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		if !click.Converted || click.PaymentStatus != model.PaymentPending {
			continue
		}
		eligible = append(eligible, *click)
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleCommissions
	}

	if paymentReference == "" {
		paymentReference = "PAY-" + uuid.NewString()
	}
	now := time.Now().UTC()

	result := &model.PaymentResult{PaymentReference: paymentReference}
	for _, click := range eligible {
		updated := click
		updated.PaymentStatus = model.PaymentPaid
		updated.PaymentReference = paymentReference
		updated.PaymentMethod = paymentMethod
		updated.PaymentDate = &now

		err := s.ledger.MarkPaid(ctx, updated)
		if errors.Is(err, ledger.ErrNotPending) {
			// Raced with another payment run; treat as already paid.
			continue
		} else if err != nil {
			return nil, err
		}

		result.UpdatedCount++
		result.TotalAmount += click.CommissionAmount
	}
	result.TotalAmount = roundHalfUp(result.TotalAmount)

	log.Info().
		Int("updated", result.UpdatedCount).
		Float64("total_amount", result.TotalAmount).
		Str("payment_reference", paymentReference).
		Str("payment_method", paymentMethod).
		Msg("Commissions marked paid")

	return result, nil
}

// GenerateCommissionReport builds the per-partner commission breakdown for
// the window.
func (s *Service) GenerateCommissionReport(ctx context.Context, r DateRange) (*model.CommissionReport, error) {
	converted, err := s.convertedInRange(ctx, r)
	if err != nil {
		return nil, err
	}

	byPartner := groupBy(converted, func(c model.Click) string { return c.PartnerID })

	rows := make([]model.CommissionReportRow, 0, len(byPartner))
	for partnerID, group := range byPartner {
		row := model.CommissionReportRow{
			PartnerID:   partnerID,
			PartnerName: partnerID,
		}
		if partner, err := s.catalog.Partner(ctx, partnerID); err == nil {
			row.PartnerName = partner.Name
		}
		for _, c := range group {
			row.Conversions++
			row.TotalAmount += c.CommissionAmount
			if c.PaymentStatus == model.PaymentPaid {
				row.PaidAmount += c.CommissionAmount
			} else {
				row.PendingAmount += c.CommissionAmount
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalAmount > rows[j].TotalAmount
	})

	return &model.CommissionReport{
		GeneratedAt: time.Now().UTC(),
		StartDate:   r.Start.Format("2006-01-02"),
		EndDate:     r.End.Format("2006-01-02"),
		Rows:        rows,
		Summary:     summarizeCommissions(converted),
	}, nil
}
