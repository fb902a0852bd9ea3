package affiliate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"affiliate-tracker/ledger"
	"affiliate-tracker/model"
)

func TestDetectFraud_BotAgentAndNoReferrer(t *testing.T) {
	service, store, _ := newTestService(t)

	seedClick(t, store, model.Click{
		TrackingID: "fraudbot0000000000000001",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		IPAddress:  "198.51.100.20",
		UserAgent:  "python-requests/2.28",
		ClickedAt:  time.Now().UTC().Add(-10 * time.Minute),
	})

	report, err := service.DetectFraud(context.Background(), "fraudbot0000000000000001")
	if err != nil {
		t.Fatalf("DetectFraud() error = %v", err)
	}

	// Bot pattern (40) + missing referrer (10) at minimum.
	if report.RiskScore < 50 {
		t.Errorf("Expected score >= 50, got %d (reasons: %v)", report.RiskScore, report.Reasons)
	}
	if !report.IsFraudulent {
		t.Error("Expected click to be flagged fraudulent")
	}
	if len(report.Reasons) < 2 {
		t.Errorf("Expected at least two reasons, got %v", report.Reasons)
	}
}

func TestDetectFraud_CleanClickScoresZero(t *testing.T) {
	service, store, _ := newTestService(t)

	seedClick(t, store, model.Click{
		TrackingID: "fraudclean00000000000002",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		IPAddress:  "198.51.100.21",
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
		Referrer:   "https://investovise.example.com/articles/brokers",
		ClickedAt:  time.Now().UTC().Add(-10 * time.Minute),
	})

	report, err := service.DetectFraud(context.Background(), "fraudclean00000000000002")
	if err != nil {
		t.Fatalf("DetectFraud() error = %v", err)
	}
	if report.RiskScore != 0 {
		t.Errorf("Expected score 0, got %d (reasons: %v)", report.RiskScore, report.Reasons)
	}
	if report.IsFraudulent {
		t.Error("Clean click must not be flagged")
	}
	if len(report.Reasons) != 0 {
		t.Errorf("Expected no reasons, got %v", report.Reasons)
	}
}

func TestDetectFraud_ShortUserAgent(t *testing.T) {
	service, store, _ := newTestService(t)

	seedClick(t, store, model.Click{
		TrackingID: "fraudshort00000000000003",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		IPAddress:  "198.51.100.22",
		UserAgent:  "Mozilla",
		Referrer:   "https://investovise.example.com",
		ClickedAt:  time.Now().UTC().Add(-10 * time.Minute),
	})

	report, err := service.DetectFraud(context.Background(), "fraudshort00000000000003")
	if err != nil {
		t.Fatalf("DetectFraud() error = %v", err)
	}
	if report.RiskScore != 20 {
		t.Errorf("Expected score 20 for short UA only, got %d (reasons: %v)", report.RiskScore, report.Reasons)
	}
	if report.IsFraudulent {
		t.Error("Score 20 must stay under the threshold")
	}
}

func TestDetectFraud_SameIPVolume(t *testing.T) {
	service, store, _ := newTestService(t)

	// The evaluated click plus 10 others from the same IP inside the hour.
	ip := "198.51.100.23"
	seedClick(t, store, model.Click{
		TrackingID: "fraudvolume0000000000004",
		PartnerID:  testPartnerID,
		ProductID:  testProductID,
		IPAddress:  ip,
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36",
		Referrer:   "https://investovise.example.com",
		ClickedAt:  time.Now().UTC().Add(-30 * time.Minute),
	})
	for i := 0; i < 10; i++ {
		seedClick(t, store, model.Click{
			TrackingID: fmt.Sprintf("fraudvolumeother%08d", i),
			PartnerID:  testPartnerID,
			ProductID:  testProductID,
			IPAddress:  ip,
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36",
			Referrer:   "https://investovise.example.com",
			ClickedAt:  time.Now().UTC().Add(-time.Duration(i+1) * time.Minute),
		})
	}

	report, err := service.DetectFraud(context.Background(), "fraudvolume0000000000004")
	if err != nil {
		t.Fatalf("DetectFraud() error = %v", err)
	}
	if report.RiskScore != 30 {
		t.Errorf("Expected score 30 for IP volume only, got %d (reasons: %v)", report.RiskScore, report.Reasons)
	}
}

func TestDetectFraud_FastConversion(t *testing.T) {
	service, store, _ := newTestService(t)

	clickedAt := time.Now().UTC().Add(-5 * time.Minute)
	convertedAt := clickedAt.Add(10 * time.Second)
	seedClick(t, store, model.Click{
		TrackingID:       "fraudfast000000000000005",
		PartnerID:        testPartnerID,
		ProductID:        testProductID,
		IPAddress:        "198.51.100.24",
		UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36",
		Referrer:         "https://investovise.example.com",
		ClickedAt:        clickedAt,
		Converted:        true,
		ConversionDate:   &convertedAt,
		CommissionAmount: 500,
		PaymentStatus:    model.PaymentPending,
	})

	report, err := service.DetectFraud(context.Background(), "fraudfast000000000000005")
	if err != nil {
		t.Fatalf("DetectFraud() error = %v", err)
	}
	if report.RiskScore != 25 {
		t.Errorf("Expected score 25 for fast conversion only, got %d (reasons: %v)", report.RiskScore, report.Reasons)
	}
}

func TestDetectFraud_UnknownClick(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.DetectFraud(context.Background(), "missing00000000000000042")
	if !errors.Is(err, ledger.ErrClickNotFound) {
		t.Errorf("Expected ErrClickNotFound, got %v", err)
	}
}
