package repository

import (
	"context"
	"testing"
	"time"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id, title string) *model.Event {
	start := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	return &model.Event{
		ID:           id,
		Title:        title,
		Description:  "test event",
		StartTime:    start,
		EndTime:      start.Add(3 * time.Hour),
		Timezone:     "UTC",
		Location:     "Test Hall",
		RSVPDeadline: start.Add(-2 * time.Hour),
		MaxAttendees: 100,
		CreatedBy:    "host-1",
		Status:       model.EventStatusScheduled,
		Attendees:    []model.Attendee{},
		Feedback:     []model.Feedback{},
	}
}

func TestMemoryEventRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAll on empty store", func(t *testing.T) {
		repo := NewMemoryEventRepository()

		events, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Save and FindByID", func(t *testing.T) {
		repo := NewMemoryEventRepository()

		require.NoError(t, repo.Save(ctx, testEvent("event-1", "First")))

		found, err := repo.FindByID(ctx, "event-1")
		require.NoError(t, err)
		assert.Equal(t, "First", found.Title)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		repo := NewMemoryEventRepository()

		_, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("FindAll preserves insertion order", func(t *testing.T) {
		repo := NewMemoryEventRepository()
		require.NoError(t, repo.Save(ctx, testEvent("event-1", "First")))
		require.NoError(t, repo.Save(ctx, testEvent("event-2", "Second")))

		events, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "event-1", events[0].ID)
		assert.Equal(t, "event-2", events[1].ID)
	})

	t.Run("Save upserts by ID", func(t *testing.T) {
		repo := NewMemoryEventRepository()
		require.NoError(t, repo.Save(ctx, testEvent("event-1", "First")))
		require.NoError(t, repo.Save(ctx, testEvent("event-1", "Renamed")))

		events, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Renamed", events[0].Title)
	})

	t.Run("Delete removes the whole aggregate", func(t *testing.T) {
		repo := NewMemoryEventRepository()
		event := testEvent("event-1", "First")
		event.Attendees = []model.Attendee{{ID: "a1", UserID: "u1"}}
		event.Feedback = []model.Feedback{{ID: "f1", UserID: "u1"}}
		require.NoError(t, repo.Save(ctx, event))

		require.NoError(t, repo.Delete(ctx, "event-1"))

		_, err := repo.FindByID(ctx, "event-1")
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Delete not found", func(t *testing.T) {
		repo := NewMemoryEventRepository()

		err := repo.Delete(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("returned events do not alias the store", func(t *testing.T) {
		repo := NewMemoryEventRepository()
		require.NoError(t, repo.Save(ctx, testEvent("event-1", "First")))

		found, err := repo.FindByID(ctx, "event-1")
		require.NoError(t, err)
		found.Title = "mutated"

		again, err := repo.FindByID(ctx, "event-1")
		require.NoError(t, err)
		assert.Equal(t, "First", again.Title)
	})
}
