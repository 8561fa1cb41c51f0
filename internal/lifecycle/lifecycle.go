package lifecycle

import (
	"time"

	"eventpulse/internal/model"
)

const (
	// CheckInLeadTime 報到窗口在活動開始前多久開放
	CheckInLeadTime = time.Hour
	// FeedbackGracePeriod 活動結束後回饋仍可提交的寬限期
	FeedbackGracePeriod = 24 * time.Hour
)

// DeriveStatus 依當前時間推導活動狀態。Pure and total: for any start < end
// exactly one of scheduled/live/closed holds.
func DeriveStatus(now, start, end time.Time) model.EventStatus {
	switch {
	case now.After(end):
		return model.EventStatusClosed
	case !now.Before(start) && !now.After(end):
		return model.EventStatusLive
	default:
		return model.EventStatusScheduled
	}
}

// IsLive 檢查活動是否進行中：start <= now <= end
func IsLive(now, start, end time.Time) bool {
	return !now.Before(start) && !now.After(end)
}

// HasEnded 檢查活動是否已結束：now > end
func HasEnded(now, end time.Time) bool {
	return now.After(end)
}

// CheckInOpen 檢查報到窗口是否開放：start - 1h <= now <= end
func CheckInOpen(now, start, end time.Time) bool {
	opensAt := start.Add(-CheckInLeadTime)
	return !now.Before(opensAt) && !now.After(end)
}

// RSVPDeadlinePassed 檢查報名截止時間是否已過：now > deadline
func RSVPDeadlinePassed(now, deadline time.Time) bool {
	return now.After(deadline)
}

// FeedbackOpen 檢查回饋窗口是否開放：start <= now <= end + 24h
func FeedbackOpen(now, start, end time.Time) bool {
	closesAt := end.Add(FeedbackGracePeriod)
	return !now.Before(start) && !now.After(closesAt)
}
