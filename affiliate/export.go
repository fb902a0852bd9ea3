package affiliate

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
)

// Export kinds accepted by ExportPerformanceData.
const (
	ExportPartners = "partners"
	ExportProducts = "products"
	ExportDaily    = "daily"
)

// ExportPerformanceData renders the requested aggregate as CSV with a fixed
// header row. Numeric fields carry two decimals; the csv writer quotes any
// field containing the delimiter.
func (s *Service) ExportPerformanceData(ctx context.Context, r DateRange, kind string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch kind {
	case ExportPartners:
		rows, err := s.PartnerPerformance(ctx, r, 0)
		if err != nil {
			return nil, err
		}
		if err := w.Write([]string{
			"Partner", "Clicks", "Conversions", "Conversion Rate (%)",
			"Total Commission", "Avg Commission",
			"Clicks Growth (%)", "Conversions Growth (%)", "Revenue Growth (%)",
		}); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := w.Write([]string{
				row.PartnerName,
				strconv.Itoa(row.TotalClicks),
				strconv.Itoa(row.TotalConversions),
				formatAmount(row.ConversionRate),
				formatAmount(row.TotalCommission),
				formatAmount(row.AverageCommission),
				formatAmount(row.ClicksGrowth),
				formatAmount(row.ConversionsGrowth),
				formatAmount(row.RevenueGrowth),
			}); err != nil {
				return nil, err
			}
		}

	case ExportProducts:
		rows, err := s.ProductPerformance(ctx, r, "", 0)
		if err != nil {
			return nil, err
		}
		if err := w.Write([]string{
			"Product", "Partner", "Clicks", "Conversions",
			"Conversion Rate (%)", "Total Commission", "Avg Commission",
		}); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := w.Write([]string{
				row.ProductName,
				row.PartnerName,
				strconv.Itoa(row.TotalClicks),
				strconv.Itoa(row.TotalConversions),
				formatAmount(row.ConversionRate),
				formatAmount(row.TotalCommission),
				formatAmount(row.AverageCommission),
			}); err != nil {
				return nil, err
			}
		}

	case ExportDaily:
		rows, err := s.DailyMetrics(ctx, r)
		if err != nil {
			return nil, err
		}
		if err := w.Write([]string{
			"Date", "Clicks", "Conversions", "Conversion Rate (%)", "Total Commission",
		}); err != nil {
			return nil, err
		}
		for _, row := range rows {
			if err := w.Write([]string{
				row.Date,
				strconv.Itoa(row.TotalClicks),
				strconv.Itoa(row.TotalConversions),
				formatAmount(row.ConversionRate),
				formatAmount(row.TotalCommission),
			}); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportKind, kind)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
