package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savioruz/reserva/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/savioruz/reserva/pkg/redis IRedisCache

// ErrNil is returned by Get and Take when the key does not exist.
var ErrNil = redis.Nil

type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	// Take reads and deletes a key in one step, so concurrent callers never both receive the value.
	Take(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(client *redis.Client, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: client,
		log:    log,
	}
}

// Clear implements IRedisCache.
func (i *iRedisCacheImpl) Clear(ctx context.Context, prefix string) (err error) {
	iter := i.client.Scan(ctx, 0, prefix, 0).Iterator()

	for iter.Next(ctx) {
		if err = i.client.Del(ctx, iter.Val()).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache: " + err.Error())

			return err
		}
	}

	return iter.Err()
}

// Delete implements IRedisCache.
func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	if err := i.client.Del(ctx, key).Err(); err != nil {
		i.log.Error("redis - delete - failed to delete cache: " + err.Error())

		return err
	}

	return nil
}

// Get implements IRedisCache.
func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return i.decode(cacheValue, value)
}

// Take implements IRedisCache.
func (i *iRedisCacheImpl) Take(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.GetDel(ctx, key).Result()
	if err != nil {
		return err
	}

	return i.decode(cacheValue, value)
}

// Save implements IRedisCache.
func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte

	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value: " + err.Error())

			return err
		}
	}

	err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		i.log.Error("redis - save - failed to save value: " + err.Error())

		return err
	}

	i.log.Debug("redis - save - saved value %s", key)

	return nil
}

func (i *iRedisCacheImpl) decode(raw string, value any) error {
	switch v := value.(type) {
	case *string:
		*v = raw
	default:
		if err := json.Unmarshal([]byte(raw), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value: " + err.Error())

			return err
		}
	}

	return nil
}
