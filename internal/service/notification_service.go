package service

import (
	"context"

	"eventpulse/internal/notifier"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"go.uber.org/zap"
)

// NotificationType 群發通知類型
type NotificationType string

const (
	NotificationCheckInReminder NotificationType = "checkin_reminder"
	NotificationPostEventThanks NotificationType = "post_event_thanks"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationCheckInReminder, NotificationPostEventThanks:
		return true
	}
	return false
}

type NotificationService interface {
	// NotifyAttendees 對活動報名者群發通知，僅活動建立者可觸發。
	// 回傳成功寄出的數量；單封失敗只記錄，不中斷整批。
	NotifyAttendees(ctx context.Context, eventID, requesterID string, kind NotificationType) (int, error)
}

type NotificationServiceImpl struct {
	repo     repository.EventRepository
	notifier notifier.Notifier
}

func NewNotificationService(repo repository.EventRepository, n notifier.Notifier) NotificationService {
	return &NotificationServiceImpl{repo: repo, notifier: n}
}

func (s *NotificationServiceImpl) NotifyAttendees(ctx context.Context, eventID, requesterID string, kind NotificationType) (int, error) {
	if !kind.IsValid() {
		return 0, apperrors.NewValidationError("type", "unknown notification type")
	}

	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if event.CreatedBy != requesterID {
		return 0, apperrors.ErrNotEventCreator
	}

	log := logger.WithComponent("service")
	sent := 0
	for i := range event.Attendees {
		attendee := &event.Attendees[i]

		var sendErr error
		switch kind {
		case NotificationCheckInReminder:
			sendErr = s.notifier.SendCheckInReminder(ctx, event, attendee)
		case NotificationPostEventThanks:
			// 感謝信只寄給有報到的人
			if !attendee.Attended {
				continue
			}
			sendErr = s.notifier.SendPostEventThankYou(ctx, event, attendee)
		}

		if sendErr != nil {
			log.Warn("failed to send notification",
				zap.String("kind", string(kind)),
				zap.String("event_id", event.ID),
				zap.String("attendee_id", attendee.ID),
				zap.Error(sendErr))
			continue
		}
		sent++
	}
	return sent, nil
}
