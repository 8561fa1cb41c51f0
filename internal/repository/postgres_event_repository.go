package repository

import (
	"context"
	"errors"
	"time"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEventRepositoryImpl 將整個活動集合存成 blobs 表中的單一 jsonb 列，
// 與其他後端一樣維持「整個集合覆寫」的語意
type PostgresEventRepositoryImpl struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepositoryImpl {
	return &PostgresEventRepositoryImpl{
		pool: pool,
		key:  EventsKey,
	}
}

// EnsureSchema 建立 blobs 表（若不存在）
func (r *PostgresEventRepositoryImpl) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *PostgresEventRepositoryImpl) load(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT data
		FROM blobs
		WHERE key = $1
	`

	var data []byte
	err := r.pool.QueryRow(ctx, query, r.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*model.Event{}, nil
		}
		return nil, err
	}
	return decodeEvents(data)
}

func (r *PostgresEventRepositoryImpl) store(ctx context.Context, events []*model.Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO blobs (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = $3
	`
	_, err = r.pool.Exec(ctx, query, r.key, data, time.Now().UTC())
	return err
}

func (r *PostgresEventRepositoryImpl) FindAll(ctx context.Context) ([]*model.Event, error) {
	return r.load(ctx)
}

func (r *PostgresEventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return findEventByID(events, id)
}

func (r *PostgresEventRepositoryImpl) Save(ctx context.Context, event *model.Event) error {
	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.store(ctx, upsertEvent(events, event))
}

func (r *PostgresEventRepositoryImpl) SaveAll(ctx context.Context, events []*model.Event) error {
	return r.store(ctx, events)
}

func (r *PostgresEventRepositoryImpl) Delete(ctx context.Context, id string) error {
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
