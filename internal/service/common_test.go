package service

import (
	"context"
	"testing"
	"time"

	"eventpulse/internal/model"
	"eventpulse/internal/repository"

	"github.com/stretchr/testify/require"
)

// 測試基準時間：活動隔天開始，持續三小時，報名截止在開始前兩小時
var (
	testNow      = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	testStart    = testNow.Add(24 * time.Hour)
	testEnd      = testStart.Add(3 * time.Hour)
	testDeadline = testStart.Add(-2 * time.Hour)
)

func newScheduledEvent(id string) *model.Event {
	return &model.Event{
		ID:           id,
		Title:        "Tech Conference 2025",
		Description:  "Annual technology conference.",
		StartTime:    testStart,
		EndTime:      testEnd,
		Timezone:     "UTC",
		Location:     "Convention Center",
		IsVirtual:    false,
		RSVPDeadline: testDeadline,
		MaxAttendees: 100,
		CreatedBy:    "host-1",
		Status:       model.EventStatusScheduled,
		Attendees:    []model.Attendee{},
		Feedback:     []model.Feedback{},
	}
}

func newRSVPAttendee(userID string) *model.Attendee {
	return &model.Attendee{
		ID:       "attendee-" + userID,
		UserID:   userID,
		Name:     "Attendee " + userID,
		Email:    userID + "@example.com",
		RSVPTime: testNow,
	}
}

func seedEvent(t *testing.T, repo repository.EventRepository, event *model.Event) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), event))
}

// recordingNotifier 記錄每種通知的寄送次數；err 非 nil 時所有寄送都回傳該錯誤
type recordingNotifier struct {
	rsvpConfirmations int
	checkInReminders  int
	postEventThanks   int
	err               error
}

func (n *recordingNotifier) SendRSVPConfirmation(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	if n.err != nil {
		return n.err
	}
	n.rsvpConfirmations++
	return nil
}

func (n *recordingNotifier) SendCheckInReminder(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	if n.err != nil {
		return n.err
	}
	n.checkInReminders++
	return nil
}

func (n *recordingNotifier) SendPostEventThankYou(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	if n.err != nil {
		return n.err
	}
	n.postEventThanks++
	return nil
}
