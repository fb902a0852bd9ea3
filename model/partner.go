package model

// Commission structure types
const (
	CommissionFixed      = "fixed"
	CommissionPercentage = "percentage"
)

// Partner types
const (
	PartnerTypeLoan       = "loan"
	PartnerTypeCreditCard = "credit_card"
	PartnerTypeBroker     = "broker"
)

// CommissionStructure is the partner-level payout rule: either a fixed amount
// per conversion or a percentage of the conversion value.
type CommissionStructure struct {
	Type     string  `json:"type"` // fixed | percentage
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TrackingConfig holds the partner's attribution settings.
type TrackingConfig struct {
	ConversionGoals   []string `json:"conversionGoals"`
	AttributionWindow int      `json:"attributionWindow"` // days
}

// Partner is a monetization counterparty (bank, broker, card issuer).
// Partners are created and edited by an external admin workflow; this service
// only ever reads them.
type Partner struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Type                string              `json:"type"`
	IsActive            bool                `json:"isActive"`
	CommissionStructure CommissionStructure `json:"commissionStructure"`
	TrackingConfig      TrackingConfig      `json:"trackingConfig"`
}

// Product is an offer owned by exactly one partner.
type Product struct {
	ID             string  `json:"id"`
	PartnerID      string  `json:"partnerId"`
	Name           string  `json:"name"`
	ApplicationURL string  `json:"applicationUrl"`
	IsActive       bool    `json:"isActive"`
	MinAmount      float64 `json:"minAmount,omitempty"` // loan-type products only
	MaxAmount      float64 `json:"maxAmount,omitempty"`
}
