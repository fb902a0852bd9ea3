package model

import "time"

// OverallMetrics is the top-line rollup across the whole ledger for a window.
type OverallMetrics struct {
	TotalClicks       int     `json:"totalClicks"`
	TotalConversions  int     `json:"totalConversions"`
	ConversionRate    float64 `json:"conversionRate"` // percent
	TotalCommission   float64 `json:"totalCommission"`
	AverageCommission float64 `json:"averageCommission"`
}

// PartnerPerformance is the per-partner rollup plus period-over-period trends
// against the immediately preceding window of equal length.
type PartnerPerformance struct {
	PartnerID         string  `json:"partnerId"`
	PartnerName       string  `json:"partnerName"`
	TotalClicks       int     `json:"totalClicks"`
	TotalConversions  int     `json:"totalConversions"`
	ConversionRate    float64 `json:"conversionRate"`
	TotalCommission   float64 `json:"totalCommission"`
	AverageCommission float64 `json:"averageCommission"`
	ClicksGrowth      float64 `json:"clicksGrowth"`      // percent vs previous window
	ConversionsGrowth float64 `json:"conversionsGrowth"` // percent vs previous window
	RevenueGrowth     float64 `json:"revenueGrowth"`     // percent vs previous window
}

// ProductPerformance is the per-product rollup.
type ProductPerformance struct {
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	PartnerID         string  `json:"partnerId"`
	PartnerName       string  `json:"partnerName"`
	TotalClicks       int     `json:"totalClicks"`
	TotalConversions  int     `json:"totalConversions"`
	ConversionRate    float64 `json:"conversionRate"`
	TotalCommission   float64 `json:"totalCommission"`
	AverageCommission float64 `json:"averageCommission"`
}

// DailyMetric is one calendar day's rollup. Days without traffic appear as
// zero rows so a range always yields exactly one row per day spanned.
type DailyMetric struct {
	Date             string  `json:"date"` // YYYY-MM-DD
	TotalClicks      int     `json:"totalClicks"`
	TotalConversions int     `json:"totalConversions"`
	ConversionRate   float64 `json:"conversionRate"`
	TotalCommission  float64 `json:"totalCommission"`
}

// FraudReport is the advisory verdict for a single click. The score is
// additive and intentionally unbounded upward.
type FraudReport struct {
	TrackingID   string   `json:"trackingId"`
	IsFraudulent bool     `json:"isFraudulent"`
	RiskScore    int      `json:"riskScore"`
	Reasons      []string `json:"reasons"`
}

// CommissionSummary is the payout-status rollup over converted clicks.
type CommissionSummary struct {
	TotalConversions int     `json:"totalConversions"`
	TotalAmount      float64 `json:"totalAmount"`
	PendingCount     int     `json:"pendingCount"`
	PendingAmount    float64 `json:"pendingAmount"`
	PaidCount        int     `json:"paidCount"`
	PaidAmount       float64 `json:"paidAmount"`
}

// CommissionEntry is one payable conversion in a partner's detail listing.
type CommissionEntry struct {
	TrackingID       string     `json:"trackingId"`
	ProductID        string     `json:"productId"`
	ProductName      string     `json:"productName"`
	ConversionDate   *time.Time `json:"conversionDate,omitempty"`
	CommissionAmount float64    `json:"commissionAmount"`
	PaymentStatus    string     `json:"paymentStatus"`
	PaymentReference string     `json:"paymentReference,omitempty"`
	PaymentDate      *time.Time `json:"paymentDate,omitempty"`
}

// PartnerCommissionDetails lists a partner's converted clicks with totals.
type PartnerCommissionDetails struct {
	PartnerID     string            `json:"partnerId"`
	PartnerName   string            `json:"partnerName"`
	Entries       []CommissionEntry `json:"entries"`
	TotalAmount   float64           `json:"totalAmount"`
	PendingAmount float64           `json:"pendingAmount"`
	PaidAmount    float64           `json:"paidAmount"`
}

// PaymentResult reports a bulk markCommissionsAsPaid outcome. Already-paid
// entries are skipped silently and contribute nothing to either field.
type PaymentResult struct {
	UpdatedCount     int     `json:"updatedCount"`
	TotalAmount      float64 `json:"totalAmount"`
	PaymentReference string  `json:"paymentReference"`
}

// CommissionReportRow is one partner's line in the commission report.
type CommissionReportRow struct {
	PartnerID     string  `json:"partnerId"`
	PartnerName   string  `json:"partnerName"`
	Conversions   int     `json:"conversions"`
	PendingAmount float64 `json:"pendingAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	TotalAmount   float64 `json:"totalAmount"`
}

// CommissionReport is the full per-partner commission breakdown for a window.
type CommissionReport struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	StartDate   string                `json:"startDate"`
	EndDate     string                `json:"endDate"`
	Rows        []CommissionReportRow `json:"rows"`
	Summary     CommissionSummary     `json:"summary"`
}
