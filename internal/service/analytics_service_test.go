package service

import (
	"context"
	"testing"
	"time"

	"eventpulse/internal/model"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_GetByEventID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repository.NewMemoryEventRepository()
		svc := NewAnalyticsService(repo)

		event := newScheduledEvent("event-1")
		checkIn := testStart.Add(time.Minute)
		event.Attendees = []model.Attendee{
			{ID: "a1", UserID: "u1", Attended: true, CheckInTime: &checkIn},
			{ID: "a2", UserID: "u2"},
		}
		event.Feedback = []model.Feedback{
			{ID: "f1", UserID: "u1", Text: "nice", Timestamp: testStart.Add(30 * time.Minute)},
		}
		seedEvent(t, repo, event)

		report, err := svc.GetByEventID(ctx, "event-1")

		require.NoError(t, err)
		assert.Equal(t, 2, report.TotalRSVPs)
		assert.Equal(t, 1, report.TotalCheckIns)
		assert.Equal(t, 50.0, report.CheckInPercentage)
		assert.Equal(t, 1, report.FeedbackCount)
		require.Len(t, report.FeedbackTimeline, 1)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		repo := repository.NewMemoryEventRepository()
		svc := NewAnalyticsService(repo)

		_, err := svc.GetByEventID(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
