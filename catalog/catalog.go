// Package catalog provides read-only access to the partner and product
// directory. The records are administered by an external workflow; this
// service never writes them.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"affiliate-tracker/cache"
	"affiliate-tracker/model"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	partnerKeyPrefix = "partner:"
	productKeyPrefix = "product:"
)

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrPartnerInactive = errors.New("partner is not active")
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not active")
)

// Reader is the read side of the partner/product catalog.
type Reader interface {
	Partner(ctx context.Context, id string) (*model.Partner, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	ActivePartner(ctx context.Context, id string) (*model.Partner, error)
	ActiveProduct(ctx context.Context, id string) (*model.Product, error)
}

// RedisReader reads catalog documents stored as JSON values in Redis,
// with an optional in-process cache in front.
type RedisReader struct {
	redis *redis.Client
	cache *cache.Cache
}

// NewRedisReader creates a catalog reader. cacheClient may be nil.
func NewRedisReader(redisClient *redis.Client, cacheClient *cache.Cache) *RedisReader {
	return &RedisReader{
		redis: redisClient,
		cache: cacheClient,
	}
}

// Partner loads a partner by ID regardless of its active flag.
func (r *RedisReader) Partner(ctx context.Context, id string) (*model.Partner, error) {
	key := partnerKeyPrefix + id

	if cached, found := r.cache.Get(key); found {
		if p, ok := cached.(*model.Partner); ok {
			return p, nil
		}
	}

	data, err := r.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrPartnerNotFound
	} else if err != nil {
		return nil, fmt.Errorf("loading partner %s: %w", id, err)
	}

	var partner model.Partner
	if err := json.Unmarshal(data, &partner); err != nil {
		log.Error().Err(err).Str("partner_id", id).Msg("Corrupt partner document")
		return nil, fmt.Errorf("decoding partner %s: %w", id, err)
	}

	r.cache.Set(key, &partner, int64(len(data)))
	return &partner, nil
}

// Product loads a product by ID regardless of its active flag.
func (r *RedisReader) Product(ctx context.Context, id string) (*model.Product, error) {
	key := productKeyPrefix + id

	if cached, found := r.cache.Get(key); found {
		if p, ok := cached.(*model.Product); ok {
			return p, nil
		}
	}

	data, err := r.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrProductNotFound
	} else if err != nil {
		return nil, fmt.Errorf("loading product %s: %w", id, err)
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("Corrupt product document")
		return nil, fmt.Errorf("decoding product %s: %w", id, err)
	}

	r.cache.Set(key, &product, int64(len(data)))
	return &product, nil
}

// ActivePartner loads a partner and requires it to be active.
func (r *RedisReader) ActivePartner(ctx context.Context, id string) (*model.Partner, error) {
	partner, err := r.Partner(ctx, id)
	if err != nil {
		return nil, err
	}
	if !partner.IsActive {
		return nil, ErrPartnerInactive
	}
	return partner, nil
}

// ActiveProduct loads a product and requires it to be active.
func (r *RedisReader) ActiveProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := r.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}
	return product, nil
}
