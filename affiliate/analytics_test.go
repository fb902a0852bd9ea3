package affiliate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"affiliate-tracker/model"
)

func TestOverallMetrics_Aggregates(t *testing.T) {
	service, store, _ := newTestService(t)
	ctx := context.Background()

	base := time.Now().UTC().AddDate(0, 0, -2)
	commissions := []float64{100, 150, 200, 250, 300}
	for i, amount := range commissions {
		clickedAt := base.Add(time.Duration(i) * time.Hour)
		convertedAt := clickedAt.Add(time.Hour)
		seedClick(t, store, model.Click{
			TrackingID:       fmt.Sprintf("overall0000000000000%04d", i),
			PartnerID:        testPartnerID,
			ProductID:        testProductID,
			ClickedAt:        clickedAt,
			Converted:        true,
			ConversionDate:   &convertedAt,
			CommissionAmount: amount,
			PaymentStatus:    model.PaymentPending,
		})
	}
	// Two unconverted clicks alongside.
	for i := 0; i < 2; i++ {
		seedClick(t, store, model.Click{
			TrackingID: fmt.Sprintf("overallnoconv000000%05d", i),
			PartnerID:  testPartnerID,
			ProductID:  testProductID,
			ClickedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	metrics, err := service.OverallMetrics(ctx, rangeAround(time.Now().UTC(), 7, 1))
	if err != nil {
		t.Fatalf("OverallMetrics() error = %v", err)
	}

	if metrics.TotalClicks < 5 {
		t.Errorf("Expected at least 5 clicks, got %d", metrics.TotalClicks)
	}
	if metrics.TotalConversions != 5 {
		t.Errorf("Expected 5 conversions, got %d", metrics.TotalConversions)
	}
	if metrics.TotalCommission != 1000 {
		t.Errorf("Expected total commission 1000, got %v", metrics.TotalCommission)
	}
	if metrics.AverageCommission != 200 {
		t.Errorf("Expected average commission 200, got %v", metrics.AverageCommission)
	}
}

func TestOverallMetrics_EmptyLedger(t *testing.T) {
	service, _, _ := newTestService(t)

	metrics, err := service.OverallMetrics(context.Background(), rangeAround(time.Now().UTC(), 7, 0))
	if err != nil {
		t.Fatalf("OverallMetrics() error = %v", err)
	}
	if metrics.TotalClicks != 0 || metrics.ConversionRate != 0 || metrics.AverageCommission != 0 {
		t.Errorf("Empty ledger must produce all-zero metrics: %+v", metrics)
	}
}

func TestDailyMetrics_ZeroFill(t *testing.T) {
	service, _, _ := newTestService(t)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	rows, err := service.DailyMetrics(context.Background(), DateRange{
		Start: start,
		End:   start.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("DailyMetrics() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected exactly 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		wantDate := start.AddDate(0, 0, i).Format("2006-01-02")
		if row.Date != wantDate {
			t.Errorf("Row %d date = %s, want %s", i, row.Date, wantDate)
		}
		if row.TotalClicks != 0 || row.TotalConversions != 0 || row.TotalCommission != 0 || row.ConversionRate != 0 {
			t.Errorf("Row %d not zero-filled: %+v", i, row)
		}
	}
}

func TestDailyMetrics_GroupsByDay(t *testing.T) {
	service, store, _ := newTestService(t)

	day := time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedClick(t, store, model.Click{
			TrackingID: fmt.Sprintf("daily000000000000000%04d", i),
			PartnerID:  testPartnerID,
			ProductID:  testProductID,
			ClickedAt:  day.Add(time.Duration(i) * time.Hour),
		})
	}

	rows, err := service.DailyMetrics(context.Background(), DateRange{
		Start: day.AddDate(0, 0, -1),
		End:   day.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("DailyMetrics() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].TotalClicks != 0 || rows[1].TotalClicks != 3 || rows[2].TotalClicks != 0 {
		t.Errorf("Clicks not grouped to the middle day: %+v", rows)
	}
}

func TestPartnerPerformance_SortAndTrend(t *testing.T) {
	service, store, _ := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	window := DateRange{Start: now.AddDate(0, 0, -7), End: now}
	previous := window.Previous()

	// Current window: fixed partner earns 1000, percentage partner 400.
	for i, amount := range []float64{500, 500} {
		clickedAt := now.Add(-time.Duration(i+1) * time.Hour)
		convertedAt := clickedAt.Add(time.Minute)
		seedClick(t, store, model.Click{
			TrackingID:       fmt.Sprintf("perffixed000000000000%03d", i),
			PartnerID:        testPartnerID,
			ProductID:        testProductID,
			ClickedAt:        clickedAt,
			Converted:        true,
			ConversionDate:   &convertedAt,
			CommissionAmount: amount,
			PaymentStatus:    model.PaymentPending,
		})
	}
	clickedAt := now.Add(-2 * time.Hour)
	convertedAt := clickedAt.Add(time.Minute)
	seedClick(t, store, model.Click{
		TrackingID:       "perfpct00000000000000001",
		PartnerID:        testPercentPartnerID,
		ProductID:        testPercentProductID,
		ClickedAt:        clickedAt,
		Converted:        true,
		ConversionDate:   &convertedAt,
		CommissionAmount: 400,
		PaymentStatus:    model.PaymentPending,
	})

	// Previous window: fixed partner earned 500.
	prevClickedAt := previous.Start.Add(time.Hour)
	prevConvertedAt := prevClickedAt.Add(time.Minute)
	seedClick(t, store, model.Click{
		TrackingID:       "perfprev0000000000000001",
		PartnerID:        testPartnerID,
		ProductID:        testProductID,
		ClickedAt:        prevClickedAt,
		Converted:        true,
		ConversionDate:   &prevConvertedAt,
		CommissionAmount: 500,
		PaymentStatus:    model.PaymentPending,
	})

	rows, err := service.PartnerPerformance(ctx, window, 10)
	if err != nil {
		t.Fatalf("PartnerPerformance() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 partners, got %d", len(rows))
	}

	// Sorted by commission descending.
	if rows[0].PartnerID != testPartnerID || rows[0].TotalCommission != 1000 {
		t.Errorf("Expected fixed partner first with 1000, got %+v", rows[0])
	}
	if rows[0].PartnerName != "HDFC Bank" {
		t.Errorf("Partner name not joined: %s", rows[0].PartnerName)
	}

	// Revenue growth: (1000-500)/500*100 = 100.
	if rows[0].RevenueGrowth != 100 {
		t.Errorf("Expected revenue growth 100, got %v", rows[0].RevenueGrowth)
	}
	// Percentage partner had no previous activity: growth = 100 by rule.
	if rows[1].RevenueGrowth != 100 {
		t.Errorf("Expected revenue growth 100 for new partner, got %v", rows[1].RevenueGrowth)
	}

	t.Run("LimitTruncates", func(t *testing.T) {
		limited, err := service.PartnerPerformance(ctx, window, 1)
		if err != nil {
			t.Fatalf("PartnerPerformance() error = %v", err)
		}
		if len(limited) != 1 || limited[0].PartnerID != testPartnerID {
			t.Errorf("Limit not applied: %+v", limited)
		}
	})
}

func TestProductPerformance_PartnerFilter(t *testing.T) {
	service, store, _ := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedClick(t, store, model.Click{
		TrackingID: "prodperfA000000000000001",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		ClickedAt:  now.Add(-time.Hour),
	})
	seedClick(t, store, model.Click{
		TrackingID: "prodperfB000000000000002",
		PartnerID:  testPercentPartnerID,
		ProductID:  testPercentProductID,
		ClickedAt:  now.Add(-time.Hour),
	})

	window := rangeAround(now, 1, 1)

	all, err := service.ProductPerformance(ctx, window, "", 0)
	if err != nil {
		t.Fatalf("ProductPerformance() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(all))
	}

	filtered, err := service.ProductPerformance(ctx, window, testPartnerID, 0)
	if err != nil {
		t.Fatalf("ProductPerformance() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].ProductID != testProductID {
		t.Errorf("Partner filter not applied: %+v", filtered)
	}
	if filtered[0].ProductName != "Personal Loan" {
		t.Errorf("Product name not joined: %s", filtered[0].ProductName)
	}
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"Doubling", 200, 100, 100},
		{"Halving", 50, 100, -50},
		{"Flat", 100, 100, 0},
		{"FromZero", 10, 0, 100},
		{"BothZero", 0, 0, 0},
		{"ToZero", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := growth(tt.current, tt.previous); got != tt.want {
				t.Errorf("growth(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Days", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 2)}
		if r.Days() != 3 {
			t.Errorf("Days() = %d, want 3", r.Days())
		}
		single := DateRange{Start: start, End: start}
		if single.Days() != 1 {
			t.Errorf("Days() = %d, want 1", single.Days())
		}
	})

	t.Run("Previous", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 7)}
		prev := r.Previous()
		if !prev.End.Before(r.Start) {
			t.Error("Previous window must end before the current one starts")
		}
		if prev.End.Sub(prev.Start) != r.End.Sub(r.Start) {
			t.Error("Previous window must have equal length")
		}
	})
}
