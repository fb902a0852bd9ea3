// Package ledger persists the append-only click ledger. Every click is a
// JSON document under its own key, indexed by two sorted sets: a global
// timeline for range scans and a per-IP timeline for fraud volume checks.
// Clicks are never deleted; conversion and payout are guarded single
// conditional writes.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"affiliate-tracker/model"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	clickKeyPrefix   = "click:"
	timelineKey      = "clicks:timeline"
	ipTimelinePrefix = "clicks:ip:"
)

var (
	ErrClickNotFound    = errors.New("click not found")
	ErrAlreadyConverted = errors.New("click already converted")
	ErrNotPending       = errors.New("commission is not pending")
)

// convertScript replaces a click document only while it is still
// unconverted. The guard runs inside Redis so two racing conversions for the
// same tracking ID can never both succeed.
//
// Returns -1 when the key is missing, 0 when the stored document is already
// converted, 1 on success.
var convertScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return -1
end
if string.find(raw, '"converted":true', 1, true) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1])
return 1
`)

// markPaidScript replaces a click document only while its commission is
// still pending. Same guard pattern as convertScript.
var markPaidScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return -1
end
if not string.find(raw, '"paymentStatus":"pending"', 1, true) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[1])
return 1
`)

// Store is the click ledger backed by Redis.
type Store struct {
	redis *redis.Client
}

// NewStore creates a ledger store.
func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

// Append records a new click. Inserts are independent and require no
// coordination with each other.
func (s *Store) Append(ctx context.Context, click model.Click) error {
	data, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("encoding click %s: %w", click.TrackingID, err)
	}

	score := float64(click.ClickedAt.UnixMilli())

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, clickKeyPrefix+click.TrackingID, data, 0)
	pipe.ZAdd(ctx, timelineKey, &redis.Z{Score: score, Member: click.TrackingID})
	pipe.ZAdd(ctx, ipTimelinePrefix+click.IPAddress, &redis.Z{Score: score, Member: click.TrackingID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending click %s: %w", click.TrackingID, err)
	}

	return nil
}

// Get loads a single click by tracking ID.
func (s *Store) Get(ctx context.Context, trackingID string) (*model.Click, error) {
	data, err := s.redis.Get(ctx, clickKeyPrefix+trackingID).Bytes()
	if err == redis.Nil {
		return nil, ErrClickNotFound
	} else if err != nil {
		return nil, fmt.Errorf("loading click %s: %w", trackingID, err)
	}

	var click model.Click
	if err := json.Unmarshal(data, &click); err != nil {
		return nil, fmt.Errorf("decoding click %s: %w", trackingID, err)
	}
	return &click, nil
}

// Convert writes the converted click document, conditional on the stored
// document still being unconverted. The caller is responsible for having
// derived the update from a fresh Get; a concurrent winner makes this call
// return ErrAlreadyConverted.
func (s *Store) Convert(ctx context.Context, updated model.Click) error {
	if !updated.Converted {
		return errors.New("convert called with an unconverted document")
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encoding click %s: %w", updated.TrackingID, err)
	}

	res, err := convertScript.Run(ctx, s.redis, []string{clickKeyPrefix + updated.TrackingID}, string(data)).Int()
	if err != nil {
		return fmt.Errorf("converting click %s: %w", updated.TrackingID, err)
	}

	switch res {
	case -1:
		return ErrClickNotFound
	case 0:
		return ErrAlreadyConverted
	}
	return nil
}

// MarkPaid writes the paid click document, conditional on the stored
// document still carrying a pending commission.
func (s *Store) MarkPaid(ctx context.Context, updated model.Click) error {
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encoding click %s: %w", updated.TrackingID, err)
	}

	res, err := markPaidScript.Run(ctx, s.redis, []string{clickKeyPrefix + updated.TrackingID}, string(data)).Int()
	if err != nil {
		return fmt.Errorf("marking click %s paid: %w", updated.TrackingID, err)
	}

	switch res {
	case -1:
		return ErrClickNotFound
	case 0:
		return ErrNotPending
	}
	return nil
}

// Range returns all clicks whose clickedAt falls in [from, to], ordered by
// click time ascending.
func (s *Store) Range(ctx context.Context, from, to time.Time) ([]model.Click, error) {
	ids, err := s.redis.ZRangeByScore(ctx, timelineKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(from.UnixMilli(), 10),
		Max: strconv.FormatInt(to.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("scanning click timeline: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = clickKeyPrefix + id
	}

	values, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("loading clicks: %w", err)
	}

	clicks := make([]model.Click, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Index entry without a document; the ledger is append-only so
			// this only happens if someone tampered with the store.
			log.Warn().Str("tracking_id", ids[i]).Msg("Dangling timeline entry")
			continue
		}
		var click model.Click
		if err := json.Unmarshal([]byte(raw), &click); err != nil {
			log.Warn().Err(err).Str("tracking_id", ids[i]).Msg("Skipping corrupt click document")
			continue
		}
		clicks = append(clicks, click)
	}

	return clicks, nil
}

// CountByIP returns how many clicks the given IP produced in [from, to].
func (s *Store) CountByIP(ctx context.Context, ip string, from, to time.Time) (int64, error) {
	count, err := s.redis.ZCount(ctx, ipTimelinePrefix+ip,
		strconv.FormatInt(from.UnixMilli(), 10),
		strconv.FormatInt(to.UnixMilli(), 10),
	).Result()
	if err != nil {
		return 0, fmt.Errorf("counting clicks for ip %s: %w", ip, err)
	}
	return count, nil
}
