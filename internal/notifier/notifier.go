package notifier

import (
	"context"
	"fmt"

	"eventpulse/internal/model"
	"eventpulse/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 寄送活動相關通知。所有方法都是 best-effort：呼叫端記錄失敗後
// 直接吞掉，絕不因通知失敗而讓觸發的變更失敗。
type Notifier interface {
	SendRSVPConfirmation(ctx context.Context, event *model.Event, attendee *model.Attendee) error
	SendCheckInReminder(ctx context.Context, event *model.Event, attendee *model.Attendee) error
	SendPostEventThankYou(ctx context.Context, event *model.Event, attendee *model.Attendee) error
}

// EmailNotifierImpl 模擬的 email 寄送器：實際寄送由外部服務負責，
// 這裡把「信件」輸出到結構化 log
type EmailNotifierImpl struct {
	log *zap.Logger
}

func NewEmailNotifier() Notifier {
	return &EmailNotifierImpl{
		log: logger.WithComponent("notifier"),
	}
}

func (n *EmailNotifierImpl) SendRSVPConfirmation(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	n.sendMockEmail(event, attendee,
		fmt.Sprintf("You're confirmed for %s", event.Title),
		"rsvp_confirmation",
	)
	return nil
}

func (n *EmailNotifierImpl) SendCheckInReminder(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	n.sendMockEmail(event, attendee,
		fmt.Sprintf("Check-in now open for %s", event.Title),
		"checkin_reminder",
	)
	return nil
}

func (n *EmailNotifierImpl) SendPostEventThankYou(ctx context.Context, event *model.Event, attendee *model.Attendee) error {
	n.sendMockEmail(event, attendee,
		fmt.Sprintf("Thanks for attending %s!", event.Title),
		"post_event_thanks",
	)
	return nil
}

func (n *EmailNotifierImpl) sendMockEmail(event *model.Event, attendee *model.Attendee, subject, kind string) {
	location := event.Location
	if event.IsVirtual {
		location = "Virtual Event: " + event.Location
	}

	n.log.Info("mock email sent",
		zap.String("kind", kind),
		zap.String("to", attendee.Email),
		zap.String("subject", subject),
		zap.String("event_id", event.ID),
		zap.String("location", location),
		zap.Time("start_time", event.StartTime),
		zap.Time("end_time", event.EndTime),
		zap.String("timezone", event.Timezone),
	)
}
