package repository

import (
	"context"
	"errors"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

type RedisEventRepositoryImpl struct {
	rdb *redis.Client
	key string
}

func NewRedisEventRepository(rdb *redis.Client) EventRepository {
	return &RedisEventRepositoryImpl{
		rdb: rdb,
		key: EventsKey,
	}
}

func (r *RedisEventRepositoryImpl) load(ctx context.Context) ([]*model.Event, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*model.Event{}, nil
		}
		return nil, err
	}
	return decodeEvents(data)
}

func (r *RedisEventRepositoryImpl) store(ctx context.Context, events []*model.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisEventRepositoryImpl) FindAll(ctx context.Context) ([]*model.Event, error) {
	return r.load(ctx)
}

func (r *RedisEventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return findEventByID(events, id)
}

func (r *RedisEventRepositoryImpl) Save(ctx context.Context, event *model.Event) error {
	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.store(ctx, upsertEvent(events, event))
}

func (r *RedisEventRepositoryImpl) SaveAll(ctx context.Context, events []*model.Event) error {
	return r.store(ctx, events)
}

func (r *RedisEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	filtered, removed := removeEventByID(events, id)
	if !removed {
		return apperrors.ErrEventNotFound
	}
	return r.store(ctx, filtered)
}
