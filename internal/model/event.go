package model

import (
	"time"
)

// EventStatus 活動狀態類型
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusLive      EventStatus = "live"
	EventStatusClosed    EventStatus = "closed"
)

// IsValid 驗證狀態是否有效
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusScheduled, EventStatusLive, EventStatusClosed:
		return true
	}
	return false
}

// Event 活動模型。Status is derived from wall-clock time and is never
// authoritative on its own; readers recompute it and write back corrections.
type Event struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	StartTime    time.Time   `json:"start_time"`
	EndTime      time.Time   `json:"end_time"`
	Timezone     string      `json:"timezone"`
	Location     string      `json:"location"`
	IsVirtual    bool        `json:"is_virtual"`
	RSVPDeadline time.Time   `json:"rsvp_deadline"`
	MaxAttendees int         `json:"max_attendees"`
	CreatedBy    string      `json:"created_by"`
	Status       EventStatus `json:"status"`
	Attendees    []Attendee  `json:"attendees"`
	Feedback     []Feedback  `json:"feedback"`
}

// FindAttendee 依 userID 取得報名者，回傳指向切片元素的指標
func (e *Event) FindAttendee(userID string) *Attendee {
	for i := range e.Attendees {
		if e.Attendees[i].UserID == userID {
			return &e.Attendees[i]
		}
	}
	return nil
}

// FindFeedback 依 feedback ID 取得回饋
func (e *Event) FindFeedback(feedbackID string) *Feedback {
	for i := range e.Feedback {
		if e.Feedback[i].ID == feedbackID {
			return &e.Feedback[i]
		}
	}
	return nil
}

// IsAtCapacity 檢查活動是否額滿
func (e *Event) IsAtCapacity() bool {
	return len(e.Attendees) >= e.MaxAttendees
}

// Attendee 報名者模型
type Attendee struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	RSVPTime    time.Time  `json:"rsvp_time"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
	Attended    bool       `json:"attended"`
}

// Feedback 回饋模型
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text,omitempty"`
	Emoji     *string   `json:"emoji,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsPinned  bool      `json:"is_pinned"`
	IsFlagged bool      `json:"is_flagged"`
}

// SupportedEmojis 支援的回饋表情符號
var SupportedEmojis = []string{"👍", "👎", "❤️", "😮"}

// IsSupportedEmoji 驗證表情符號是否在支援清單內
func IsSupportedEmoji(emoji string) bool {
	for _, e := range SupportedEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}

// UpdateEventParams 更新活動參數；僅允許的欄位，id/createdBy/attendees/feedback
// 不在此結構中，無法被更新
type UpdateEventParams struct {
	Title        *string
	Description  *string
	StartTime    *time.Time
	EndTime      *time.Time
	Timezone     *string
	Location     *string
	IsVirtual    *bool
	RSVPDeadline *time.Time
	MaxAttendees *int
}
