package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"

	domain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/models"
)

const (
	availableVehiclesKey = "vivacar:vehicles:available"
	availableGenKey      = availableVehiclesKey + ":gen"
)

func availableKey(gen int64) string {
	return fmt.Sprintf("%s:%d", availableVehiclesKey, gen)
}

// NewRedisClient abre e testa a conexão a partir de uma URL redis://.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// VehicleRedisCache é best effort: falhas do Redis só geram log e a
// leitura cai para o banco.
type VehicleRedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVehicleRedisCache(client *redis.Client, ttl time.Duration) *VehicleRedisCache {
	return &VehicleRedisCache{client: client, ttl: ttl}
}

func (c *VehicleRedisCache) GetAvailable(ctx context.Context) ([]models.Vehicle, int64, bool) {
	gen, err := c.client.Get(ctx, availableGenKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		gen = 0
	case err != nil:
		logger.WarnContext(ctx, "vehicle cache generation read failed", logger.Err(err))
		return nil, -1, false
	}

	b, err := c.client.Get(ctx, availableKey(gen)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "vehicle cache read failed", logger.Err(err))
		}
		return nil, gen, false
	}

	var vehicles []models.Vehicle
	if err := json.Unmarshal(b, &vehicles); err != nil {
		logger.WarnContext(ctx, "vehicle cache decode failed", logger.Err(err))
		return nil, gen, false
	}
	return vehicles, gen, true
}

// SetAvailable grava sob gen; se Invalidate rodou depois da leitura, a
// chave fica órfã e expira pelo TTL.
func (c *VehicleRedisCache) SetAvailable(ctx context.Context, gen int64, vehicles []models.Vehicle) {
	if gen < 0 {
		return
	}

	b, err := json.Marshal(vehicles)
	if err != nil {
		logger.WarnContext(ctx, "vehicle cache encode failed", logger.Err(err))
		return
	}
	if err := c.client.Set(ctx, availableKey(gen), b, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "vehicle cache write failed", logger.Err(err))
	}
}

func (c *VehicleRedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, availableGenKey).Err(); err != nil {
		logger.WarnContext(ctx, "vehicle cache invalidate failed", logger.Err(err))
	}
}

var _ domain.AvailabilityCache = (*VehicleRedisCache)(nil)
