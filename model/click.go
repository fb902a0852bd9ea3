package model

import "time"

// Commission payment states
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Click is one attributed visit/referral event: the central entry of the
// append-only ledger. Created once by the tracker, mutated exactly once by
// the conversion recorder, read by fraud scoring and analytics.
//
// JSON field names are the persisted wire contract and must stay stable.
type Click struct {
	TrackingID  string `json:"trackingId"`
	PartnerID   string `json:"partnerId"`
	ProductID   string `json:"productId"`
	UserID      string `json:"userId,omitempty"`
	IPAddress   string `json:"ipAddress"`
	UserAgent   string `json:"userAgent"`
	Referrer    string `json:"referrer,omitempty"`
	SessionID   string `json:"sessionId,omitempty"`
	UTMSource   string `json:"utmSource,omitempty"`
	UTMMedium   string `json:"utmMedium,omitempty"`
	UTMCampaign string `json:"utmCampaign,omitempty"`

	ClickedAt time.Time `json:"clickedAt"`

	// Conversion state: Converted transitions false -> true exactly once.
	Converted        bool       `json:"converted"`
	ConversionDate   *time.Time `json:"conversionDate,omitempty"`
	ConversionType   string     `json:"conversionType,omitempty"`
	CommissionAmount float64    `json:"commissionAmount,omitempty"`

	// Payout bookkeeping, set only by markCommissionsAsPaid.
	PaymentStatus    string     `json:"paymentStatus,omitempty"`
	PaymentReference string     `json:"paymentReference,omitempty"`
	PaymentMethod    string     `json:"paymentMethod,omitempty"`
	PaymentDate      *time.Time `json:"paymentDate,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}
