package affiliate

import (
	"context"
	"sort"
	"time"

	"affiliate-tracker/model"
	"affiliate-tracker/utils"
)

// The aggregations below are expressed as small pure functions over click
// slices (group, summarize, project, sort, limit) so the logic is testable
// without the storage engine. Reads are eventually consistent: a conversion
// racing with an in-flight aggregation may or may not be reflected.

type totals struct {
	clicks      int
	conversions int
	commission  float64
}

func summarize(clicks []model.Click) totals {
	var t totals
	for _, c := range clicks {
		t.clicks++
		if c.Converted {
			t.conversions++
			t.commission += c.CommissionAmount
		}
	}
	return t
}

func conversionRate(clicks, conversions int) float64 {
	if clicks == 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

func averageCommission(commission float64, conversions int) float64 {
	if conversions == 0 {
		return 0
	}
	return commission / float64(conversions)
}

// growth computes period-over-period change in percent. A previous value of
// zero maps to 100 when anything appeared, 0 when nothing did.
func growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func groupBy(clicks []model.Click, key func(model.Click) string) map[string][]model.Click {
	groups := make(map[string][]model.Click)
	for _, c := range clicks {
		groups[key(c)] = append(groups[key(c)], c)
	}
	return groups
}

// OverallMetrics returns the whole-ledger rollup for the window.
func (s *Service) OverallMetrics(ctx context.Context, r DateRange) (*model.OverallMetrics, error) {
	clicks, err := s.ledger.Range(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	t := summarize(clicks)
	return &model.OverallMetrics{
		TotalClicks:       t.clicks,
		TotalConversions:  t.conversions,
		ConversionRate:    conversionRate(t.clicks, t.conversions),
		TotalCommission:   t.commission,
		AverageCommission: averageCommission(t.commission, t.conversions),
	}, nil
}

// PartnerPerformance returns per-partner rollups with trends against the
// immediately preceding window, sorted by total commission descending and
// truncated to limit.
func (s *Service) PartnerPerformance(ctx context.Context, r DateRange, limit int) ([]model.PartnerPerformance, error) {
	current, err := s.ledger.Range(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	prev := r.Previous()
	previous, err := s.ledger.Range(ctx, prev.Start, prev.End)
	if err != nil {
		return nil, err
	}

	byPartner := groupBy(current, func(c model.Click) string { return c.PartnerID })
	prevByPartner := groupBy(previous, func(c model.Click) string { return c.PartnerID })

	results := make([]model.PartnerPerformance, 0, len(byPartner))
	for partnerID, clicks := range byPartner {
		t := summarize(clicks)
		p := summarize(prevByPartner[partnerID])

		name := partnerID
		if partner, err := s.catalog.Partner(ctx, partnerID); err == nil {
			name = partner.Name
		}

		results = append(results, model.PartnerPerformance{
			PartnerID:         partnerID,
			PartnerName:       name,
			TotalClicks:       t.clicks,
			TotalConversions:  t.conversions,
			ConversionRate:    conversionRate(t.clicks, t.conversions),
			TotalCommission:   t.commission,
			AverageCommission: averageCommission(t.commission, t.conversions),
			ClicksGrowth:      growth(float64(t.clicks), float64(p.clicks)),
			ConversionsGrowth: growth(float64(t.conversions), float64(p.conversions)),
			RevenueGrowth:     growth(t.commission, p.commission),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalCommission != results[j].TotalCommission {
			return results[i].TotalCommission > results[j].TotalCommission
		}
		return results[i].TotalClicks > results[j].TotalClicks
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ProductPerformance returns per-product rollups, optionally filtered to
// one partner, sorted by total commission descending, truncated to limit.
func (s *Service) ProductPerformance(ctx context.Context, r DateRange, partnerID string, limit int) ([]model.ProductPerformance, error) {
	if partnerID != "" {
		if err := utils.ValidateEntityID(partnerID); err != nil {
			return nil, &InvalidIdentifierError{Field: "partnerId", Reason: err}
		}
	}

	clicks, err := s.ledger.Range(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	if partnerID != "" {
		filtered := clicks[:0]
		for _, c := range clicks {
			if c.PartnerID == partnerID {
				filtered = append(filtered, c)
			}
		}
		clicks = filtered
	}

	byProduct := groupBy(clicks, func(c model.Click) string { return c.ProductID })

	results := make([]model.ProductPerformance, 0, len(byProduct))
	for productID, group := range byProduct {
		t := summarize(group)

		row := model.ProductPerformance{
			ProductID:         productID,
			ProductName:       productID,
			PartnerID:         group[0].PartnerID,
			PartnerName:       group[0].PartnerID,
			TotalClicks:       t.clicks,
			TotalConversions:  t.conversions,
			ConversionRate:    conversionRate(t.clicks, t.conversions),
			TotalCommission:   t.commission,
			AverageCommission: averageCommission(t.commission, t.conversions),
		}
		if product, err := s.catalog.Product(ctx, productID); err == nil {
			row.ProductName = product.Name
		}
		if partner, err := s.catalog.Partner(ctx, row.PartnerID); err == nil {
			row.PartnerName = partner.Name
		}
		results = append(results, row)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalCommission != results[j].TotalCommission {
			return results[i].TotalCommission > results[j].TotalCommission
		}
		return results[i].TotalClicks > results[j].TotalClicks
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DailyMetrics returns one row per calendar day in the range, inclusive.
// Days without traffic yield zero rows, so the output length always equals
// the number of days spanned.
func (s *Service) DailyMetrics(ctx context.Context, r DateRange) ([]model.DailyMetric, error) {
	clicks, err := s.ledger.Range(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	byDay := groupBy(clicks, func(c model.Click) string {
		return c.ClickedAt.Format("2006-01-02")
	})

	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)

	var results []model.DailyMetric
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		t := summarize(byDay[date])
		results = append(results, model.DailyMetric{
			Date:             date,
			TotalClicks:      t.clicks,
			TotalConversions: t.conversions,
			ConversionRate:   conversionRate(t.clicks, t.conversions),
			TotalCommission:  t.commission,
		})
	}
	return results, nil
}
