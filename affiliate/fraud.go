package affiliate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"affiliate-tracker/model"
	"affiliate-tracker/utils"
)

// Fraud scoring is advisory only: it never blocks tracking or conversion.
// Each signal contributes a fixed weight when triggered; weights sum and the
// total is intentionally uncapped.
const (
	fraudThreshold = 50

	weightIPVolume        = 30
	weightShortUserAgent  = 20
	weightBotUserAgent    = 40
	weightFastConversion  = 25
	weightMissingReferrer = 10

	ipVolumeWindow     = time.Hour
	ipVolumeMinOthers  = 10
	fastConversionSpan = 30 * time.Second
	minUserAgentLength = 10
)

// botTokens are user-agent substrings of automation tools and crawlers.
var botTokens = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"curl",
	"wget",
	"python",
	"java",
}

// fraudContext is the evidence a single scoring pass works from.
type fraudContext struct {
	click        *model.Click
	sameIPOthers int64 // other clicks from this IP in the trailing hour
}

// DetectFraud scores a click's fraud risk from independent signals. It is a
// pure read: no attribution state is mutated.
func (s *Service) DetectFraud(ctx context.Context, trackingID string) (*model.FraudReport, error) {
	if err := utils.ValidateTrackingID(trackingID); err != nil {
		return nil, &InvalidIdentifierError{Field: "trackingId", Reason: err}
	}

	click, err := s.ledger.Get(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	windowStart := now.Add(-ipVolumeWindow)

	sameIP, err := s.ledger.CountByIP(ctx, click.IPAddress, windowStart, now)
	if err != nil {
		return nil, err
	}
	// The evaluated click must not count against itself.
	if !click.ClickedAt.Before(windowStart) && !click.ClickedAt.After(now) {
		sameIP--
	}

	fctx := &fraudContext{click: click, sameIPOthers: sameIP}

	rules := []func(*fraudContext) (int, string){
		ruleIPVolume,
		ruleShortUserAgent,
		ruleBotUserAgent,
		ruleFastConversion,
		ruleMissingReferrer,
	}

	report := &model.FraudReport{
		TrackingID: trackingID,
		Reasons:    []string{},
	}
	for _, rule := range rules {
		if delta, reason := rule(fctx); delta > 0 {
			report.RiskScore += delta
			report.Reasons = append(report.Reasons, reason)
		}
	}
	report.IsFraudulent = report.RiskScore >= fraudThreshold

	return report, nil
}

func ruleIPVolume(fctx *fraudContext) (int, string) {
	if fctx.sameIPOthers >= ipVolumeMinOthers {
		return weightIPVolume, fmt.Sprintf("%d other clicks from IP %s in the last hour", fctx.sameIPOthers, fctx.click.IPAddress)
	}
	return 0, ""
}

func ruleShortUserAgent(fctx *fraudContext) (int, string) {
	if len(fctx.click.UserAgent) < minUserAgentLength {
		return weightShortUserAgent, "user agent missing or suspiciously short"
	}
	return 0, ""
}

func ruleBotUserAgent(fctx *fraudContext) (int, string) {
	ua := strings.ToLower(fctx.click.UserAgent)
	for _, token := range botTokens {
		if strings.Contains(ua, token) {
			return weightBotUserAgent, fmt.Sprintf("user agent matches bot pattern %q", token)
		}
	}
	return 0, ""
}

func ruleFastConversion(fctx *fraudContext) (int, string) {
	c := fctx.click
	if c.Converted && c.ConversionDate != nil && c.ConversionDate.Sub(c.ClickedAt) < fastConversionSpan {
		return weightFastConversion, fmt.Sprintf("conversion %s after click", c.ConversionDate.Sub(c.ClickedAt))
	}
	return 0, ""
}

func ruleMissingReferrer(fctx *fraudContext) (int, string) {
	if fctx.click.Referrer == "" {
		return weightMissingReferrer, "no referrer"
	}
	return 0, ""
}
