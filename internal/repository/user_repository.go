package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// CurrentUserKey 目前使用者紀錄的固定 key
const CurrentUserKey = "eventpulse:current_user"

// UserStore 保存目前登入使用者的 blob；認證流程本身在系統範圍之外
type UserStore interface {
	Get(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
}

type RedisUserStoreImpl struct {
	rdb *redis.Client
	key string
}

func NewRedisUserStore(rdb *redis.Client) UserStore {
	return &RedisUserStoreImpl{
		rdb: rdb,
		key: CurrentUserKey,
	}
}

func (s *RedisUserStoreImpl) Get(ctx context.Context) (*model.User, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisUserStoreImpl) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}

// MemoryUserStoreImpl 記憶體版 UserStore，供 memory 後端與測試使用
type MemoryUserStoreImpl struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryUserStore() UserStore {
	return &MemoryUserStoreImpl{}
}

func (s *MemoryUserStoreImpl) Get(ctx context.Context) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.data) == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	var user model.User
	if err := json.Unmarshal(s.data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MemoryUserStoreImpl) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}
