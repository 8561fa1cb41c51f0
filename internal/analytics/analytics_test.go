package analytics

import (
	"testing"
	"time"

	"eventpulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emoji(s string) *string {
	return &s
}

func TestCompute_EmptyEvent(t *testing.T) {
	event := &model.Event{ID: "event-1"}

	report := Compute(event)

	assert.Equal(t, 0, report.TotalRSVPs)
	assert.Equal(t, 0, report.TotalCheckIns)
	// no division by zero on events without RSVPs
	assert.Equal(t, 0.0, report.CheckInPercentage)
	assert.Equal(t, 0, report.FeedbackCount)
	assert.Empty(t, report.FeedbackTimeline)

	// emoji counts always carry all supported keys
	require.Len(t, report.EmojiCounts, len(model.SupportedEmojis))
	for _, e := range model.SupportedEmojis {
		assert.Equal(t, 0, report.EmojiCounts[e])
	}
}

func TestCompute_Attendance(t *testing.T) {
	event := &model.Event{
		ID: "event-1",
		Attendees: []model.Attendee{
			{ID: "a1", UserID: "u1", Attended: true},
			{ID: "a2", UserID: "u2", Attended: true},
			{ID: "a3", UserID: "u3", Attended: false},
			{ID: "a4", UserID: "u4", Attended: false},
		},
	}

	report := Compute(event)

	assert.Equal(t, 4, report.TotalRSVPs)
	assert.Equal(t, 2, report.TotalCheckIns)
	assert.Equal(t, 50.0, report.CheckInPercentage)
}

func TestCompute_EmojiCounts(t *testing.T) {
	event := &model.Event{
		ID: "event-1",
		Feedback: []model.Feedback{
			{ID: "f1", Emoji: emoji("👍")},
			{ID: "f2", Emoji: emoji("👍")},
			{ID: "f3", Emoji: emoji("❤️")},
			{ID: "f4", Text: "text only, no emoji"},
		},
	}

	report := Compute(event)

	assert.Equal(t, 4, report.FeedbackCount)
	assert.Equal(t, 2, report.EmojiCounts["👍"])
	assert.Equal(t, 1, report.EmojiCounts["❤️"])
	assert.Equal(t, 0, report.EmojiCounts["👎"])
	assert.Equal(t, 0, report.EmojiCounts["😮"])
}

func TestCompute_FeedbackTimeline(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	event := &model.Event{
		ID: "event-1",
		Feedback: []model.Feedback{
			{ID: "f1", Timestamp: day.Add(10*time.Hour + 5*time.Minute)},
			{ID: "f2", Timestamp: day.Add(10*time.Hour + 40*time.Minute)},
			{ID: "f3", Timestamp: day.Add(11*time.Hour + 2*time.Minute)},
		},
	}

	report := Compute(event)

	require.Len(t, report.FeedbackTimeline, 2)
	assert.Equal(t, day.Add(10*time.Hour), report.FeedbackTimeline[0].Timestamp)
	assert.Equal(t, 2, report.FeedbackTimeline[0].Count)
	assert.Equal(t, day.Add(11*time.Hour), report.FeedbackTimeline[1].Timestamp)
	assert.Equal(t, 1, report.FeedbackTimeline[1].Count)
}

func TestCompute_TimelineSortedAscending(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	event := &model.Event{
		ID: "event-1",
		Feedback: []model.Feedback{
			{ID: "f1", Timestamp: day.Add(15 * time.Hour)},
			{ID: "f2", Timestamp: day.Add(9 * time.Hour)},
			{ID: "f3", Timestamp: day.Add(12 * time.Hour)},
		},
	}

	report := Compute(event)

	require.Len(t, report.FeedbackTimeline, 3)
	for i := 1; i < len(report.FeedbackTimeline); i++ {
		assert.True(t, report.FeedbackTimeline[i-1].Timestamp.Before(report.FeedbackTimeline[i].Timestamp))
	}
}
