package affiliate

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"affiliate-tracker/catalog"
	"affiliate-tracker/config"
	"affiliate-tracker/ledger"
	"affiliate-tracker/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

const (
	testPartnerID        = "65f1a2b3c4d5e6f701234567"
	testPercentPartnerID = "65f1a2b3c4d5e6f701234568"
	testInactivePartner  = "65f1a2b3c4d5e6f701234569"
	testProductID        = "65f1a2b3c4d5e6f701234570"
	testPercentProductID = "65f1a2b3c4d5e6f701234571"
	testInactiveProduct  = "65f1a2b3c4d5e6f701234572"
)

// newTestService spins up a miniredis-backed service with a seeded catalog:
// one fixed-commission partner (500 INR, 30-day window), one
// percentage-commission partner (5%, 30-day window), one inactive partner,
// and matching products.
func newTestService(t *testing.T) (*Service, *ledger.Store, *redis.Client) {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	store := ledger.NewStore(client)
	reader := catalog.NewRedisReader(client, nil)
	cfg := config.AffiliateConfig{
		RedirectPath:     "/affiliate/redirect",
		DefaultRangeDays: 30,
		PartnerLimit:     10,
	}

	seedCatalogDoc(t, client, "partner:"+testPartnerID, model.Partner{
		ID:       testPartnerID,
		Name:     "HDFC Bank",
		Type:     model.PartnerTypeLoan,
		IsActive: true,
		CommissionStructure: model.CommissionStructure{
			Type: model.CommissionFixed, Amount: 500, Currency: "INR",
		},
		TrackingConfig: model.TrackingConfig{
			ConversionGoals:   []string{"application_submitted"},
			AttributionWindow: 30,
		},
	})
	seedCatalogDoc(t, client, "partner:"+testPercentPartnerID, model.Partner{
		ID:       testPercentPartnerID,
		Name:     "Zerodha",
		Type:     model.PartnerTypeBroker,
		IsActive: true,
		CommissionStructure: model.CommissionStructure{
			Type: model.CommissionPercentage, Amount: 5, Currency: "INR",
		},
		TrackingConfig: model.TrackingConfig{
			ConversionGoals:   []string{"account_opened"},
			AttributionWindow: 30,
		},
	})
	seedCatalogDoc(t, client, "partner:"+testInactivePartner, model.Partner{
		ID:       testInactivePartner,
		Name:     "Closed Bank",
		IsActive: false,
	})

	seedCatalogDoc(t, client, "product:"+testProductID, model.Product{
		ID:             testProductID,
		PartnerID:      testPartnerID,
		Name:           "Personal Loan",
		ApplicationURL: "https://apply.hdfc.example.com/personal-loan",
		IsActive:       true,
		MinAmount:      50000,
		MaxAmount:      4000000,
	})
	seedCatalogDoc(t, client, "product:"+testPercentProductID, model.Product{
		ID:             testPercentProductID,
		PartnerID:      testPercentPartnerID,
		Name:           "Demat Account",
		ApplicationURL: "https://signup.zerodha.example.com/open-account",
		IsActive:       true,
	})
	seedCatalogDoc(t, client, "product:"+testInactiveProduct, model.Product{
		ID:        testInactiveProduct,
		PartnerID: testPartnerID,
		Name:      "Retired Offer",
		IsActive:  false,
	})

	return NewService(store, reader, cfg), store, client
}

func seedCatalogDoc(t *testing.T, client *redis.Client, key string, doc interface{}) {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal catalog doc: %v", err)
	}
	if err := client.Set(context.Background(), key, data, 0).Err(); err != nil {
		t.Fatalf("Failed to seed catalog doc: %v", err)
	}
}

// seedClick appends a crafted click straight to the ledger, bypassing
// TrackClick so tests control clickedAt and conversion state.
func seedClick(t *testing.T, store *ledger.Store, click model.Click) {
	t.Helper()

	if click.IPAddress == "" {
		click.IPAddress = "203.0.113.10"
	}
	if click.UserAgent == "" {
		click.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0 Safari/537.36"
	}
	if err := store.Append(context.Background(), click); err != nil {
		t.Fatalf("Failed to seed click: %v", err)
	}
}

func validInput() ClickInput {
	return ClickInput{
		PartnerID: testPartnerID,
		ProductID: testProductID,
		IPAddress: "203.0.113.10",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0 Safari/537.36",
		Referrer:  "https://investovise.example.com/articles/best-loans",
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func rangeAround(now time.Time, daysBack, daysForward int) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -daysBack),
		End:   now.AddDate(0, 0, daysForward),
	}
}
