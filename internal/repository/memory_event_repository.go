package repository

import (
	"context"
	"sync"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"
)

// MemoryEventRepositoryImpl 單機記憶體後端。集合一樣以序列化 blob 保存，
// 讀寫都經過編解碼，避免呼叫端與儲存內容共享指標
type MemoryEventRepositoryImpl struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryEventRepository() *MemoryEventRepositoryImpl {
	return &MemoryEventRepositoryImpl{}
}

func (r *MemoryEventRepositoryImpl) load() ([]*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return decodeEvents(r.data)
}

func (r *MemoryEventRepositoryImpl) store(events []*model.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}

func (r *MemoryEventRepositoryImpl) FindAll(ctx context.Context) ([]*model.Event, error) {
	return r.load()
}

func (r *MemoryEventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	events, err := r.load()
	if err != nil {
		return nil, err
	}
	return findEventByID(events, id)
}

func (r *MemoryEventRepositoryImpl) Save(ctx context.Context, event *model.Event) error {
	events, err := r.load()
	if err != nil {
		return err
	}
	return r.store(upsertEvent(events, event))
}

func (r *MemoryEventRepositoryImpl) SaveAll(ctx context.Context, events []*model.Event) error {
	return r.store(events)
}

func (r *MemoryEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	events, err := r.load()
	if err != nil {
		return err
	}
	filtered, removed := removeEventByID(events, id)
	if !removed {
		return apperrors.ErrEventNotFound
	}
	return r.store(filtered)
}
