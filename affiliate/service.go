// Package affiliate implements the attribution and commission engine:
// click tracking, outbound link generation, time-windowed conversion
// attribution, fraud-risk scoring, analytics rollups, and payout
// bookkeeping. All state lives in the ledger; the service itself is
// stateless and safe to replicate.
package affiliate

import (
	"time"

	"affiliate-tracker/catalog"
	"affiliate-tracker/config"
	"affiliate-tracker/ledger"
)

// Service is the affiliate engine. Construct it with NewService; multiple
// instances can share one ledger without coordination.
type Service struct {
	ledger  *ledger.Store
	catalog catalog.Reader
	cfg     config.AffiliateConfig
}

// NewService wires the engine to its ledger store and catalog reader.
func NewService(store *ledger.Store, cat catalog.Reader, cfg config.AffiliateConfig) *Service {
	return &Service{
		ledger:  store,
		catalog: cat,
		cfg:     cfg,
	}
}

// DateRange is an inclusive [Start, End] analytics window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Previous returns the immediately preceding window of equal length, used
// for period-over-period trend computation.
func (r DateRange) Previous() DateRange {
	length := r.End.Sub(r.Start)
	end := r.Start.Add(-time.Second)
	return DateRange{Start: end.Add(-length), End: end}
}

// Days returns the number of calendar days the range spans, inclusive.
func (r DateRange) Days() int {
	start := r.Start.Truncate(24 * time.Hour)
	end := r.End.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}
