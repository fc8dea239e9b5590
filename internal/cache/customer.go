package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/umalmyha/crm/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedCustomerTimeToLive = 10 * time.Minute

// CustomerCacheRepository represents behavior for customer cache
type CustomerCacheRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	DeleteByID(context.Context, string) error
}

type redisCustomerCache struct {
	client *redis.Client
}

// NewRedisCustomerCache builds redis backed CustomerCacheRepository
func NewRedisCustomerCache(client *redis.Client) CustomerCacheRepository {
	return &redisCustomerCache{client: client}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Customer
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *redisCustomerCache) Create(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.SetNX(ctx, r.key(c.ID), encoded, cachedCustomerTimeToLive).Err()
}

func (r *redisCustomerCache) DeleteByID(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisCustomerCache) key(id string) string {
	return fmt.Sprintf("customer:%s", id)
}
