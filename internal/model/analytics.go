package model

import "time"

// AnalyticsReport 活動分析報告
type AnalyticsReport struct {
	TotalRSVPs        int              `json:"total_rsvps"`
	TotalCheckIns     int              `json:"total_check_ins"`
	CheckInPercentage float64          `json:"check_in_percentage"`
	FeedbackCount     int              `json:"feedback_count"`
	EmojiCounts       map[string]int   `json:"emoji_counts"`
	FeedbackTimeline  []TimelineBucket `json:"feedback_timeline"`
}

// TimelineBucket 每小時回饋數量；只包含有回饋的小時（稀疏時間軸）
type TimelineBucket struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}
