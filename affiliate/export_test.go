package affiliate

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"affiliate-tracker/model"
)

func TestExportPerformanceData_Daily(t *testing.T) {
	service, _, _ := newTestService(t)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	data, err := service.ExportPerformanceData(context.Background(), DateRange{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}, ExportDaily)
	if err != nil {
		t.Fatalf("ExportPerformanceData() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}

	if len(records) != 3 { // header + 2 zero-filled days
		t.Fatalf("Expected 3 CSV rows, got %d", len(records))
	}
	wantHeader := []string{"Date", "Clicks", "Conversions", "Conversion Rate (%)", "Total Commission"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("Header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "2026-08-10" || records[1][4] != "0.00" {
		t.Errorf("Unexpected first data row: %v", records[1])
	}
}

func TestExportPerformanceData_PartnersQuoting(t *testing.T) {
	service, store, client := newTestService(t)
	ctx := context.Background()

	// Partner whose display name contains the delimiter.
	commaPartner := "65f1a2b3c4d5e6f70123aaaa"
	seedCatalogDoc(t, client, "partner:"+commaPartner, model.Partner{
		ID:       commaPartner,
		Name:     "Acme Loans, Ltd",
		IsActive: true,
		CommissionStructure: model.CommissionStructure{
			Type: model.CommissionFixed, Amount: 250, Currency: "INR",
		},
		TrackingConfig: model.TrackingConfig{AttributionWindow: 30},
	})

	now := time.Now().UTC()
	convertedAt := now.Add(-time.Hour)
	seedClick(t, store, model.Click{
		TrackingID:       "exportcomma0000000000001",
		PartnerID:        commaPartner,
		ProductID:        testProductID,
		ClickedAt:        now.Add(-2 * time.Hour),
		Converted:        true,
		ConversionDate:   &convertedAt,
		CommissionAmount: 250,
		PaymentStatus:    model.PaymentPending,
	})

	data, err := service.ExportPerformanceData(ctx, rangeAround(now, 1, 1), ExportPartners)
	if err != nil {
		t.Fatalf("ExportPerformanceData() error = %v", err)
	}

	raw := string(data)
	if !strings.Contains(raw, `"Acme Loans, Ltd"`) {
		t.Errorf("Delimiter-containing field not quoted:\n%s", raw)
	}

	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 partner row, got %d rows", len(records))
	}
	if records[1][0] != "Acme Loans, Ltd" {
		t.Errorf("Partner name mangled: %q", records[1][0])
	}
	if records[1][4] != "250.00" {
		t.Errorf("Commission not formatted to 2 decimals: %q", records[1][4])
	}
}

func TestExportPerformanceData_Products(t *testing.T) {
	service, store, _ := newTestService(t)

	now := time.Now().UTC()
	seedClick(t, store, model.Click{
		TrackingID: "exportprod00000000000001",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		ClickedAt:  now.Add(-time.Hour),
	})

	data, err := service.ExportPerformanceData(context.Background(), rangeAround(now, 1, 1), ExportProducts)
	if err != nil {
		t.Fatalf("ExportPerformanceData() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 product row, got %d", len(records))
	}
	if records[1][0] != "Personal Loan" || records[1][1] != "HDFC Bank" {
		t.Errorf("Names not joined in export: %v", records[1])
	}
}

func TestExportPerformanceData_UnknownKind(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.ExportPerformanceData(context.Background(),
		rangeAround(time.Now().UTC(), 1, 0), "clicks")
	if !errors.Is(err, ErrUnknownExportKind) {
		t.Errorf("Expected ErrUnknownExportKind, got %v", err)
	}
}
