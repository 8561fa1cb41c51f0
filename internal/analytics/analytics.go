package analytics

import (
	"sort"
	"time"

	"eventpulse/internal/model"
)

// Compute 計算活動的出席與回饋分析。Pure function over a single event
// aggregate; the only failure mode (unknown event) belongs to the caller.
func Compute(event *model.Event) *model.AnalyticsReport {
	totalRSVPs := len(event.Attendees)

	totalCheckIns := 0
	for _, a := range event.Attendees {
		if a.Attended {
			totalCheckIns++
		}
	}

	// avoid division by zero on events without RSVPs
	checkInPercentage := 0.0
	if totalRSVPs > 0 {
		checkInPercentage = float64(totalCheckIns) / float64(totalRSVPs) * 100
	}

	emojiCounts := make(map[string]int, len(model.SupportedEmojis))
	for _, emoji := range model.SupportedEmojis {
		emojiCounts[emoji] = 0
	}
	for _, f := range event.Feedback {
		if f.Emoji != nil {
			if _, ok := emojiCounts[*f.Emoji]; ok {
				emojiCounts[*f.Emoji]++
			}
		}
	}

	return &model.AnalyticsReport{
		TotalRSVPs:        totalRSVPs,
		TotalCheckIns:     totalCheckIns,
		CheckInPercentage: checkInPercentage,
		FeedbackCount:     len(event.Feedback),
		EmojiCounts:       emojiCounts,
		FeedbackTimeline:  buildTimeline(event.Feedback),
	}
}

// buildTimeline 將回饋依小時分組，只輸出有回饋的小時，時間遞增排序
func buildTimeline(feedback []model.Feedback) []model.TimelineBucket {
	byHour := make(map[time.Time]int)
	for _, f := range feedback {
		hour := f.Timestamp.UTC().Truncate(time.Hour)
		byHour[hour]++
	}

	timeline := make([]model.TimelineBucket, 0, len(byHour))
	for hour, count := range byHour {
		timeline = append(timeline, model.TimelineBucket{Timestamp: hour, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Timestamp.Before(timeline[j].Timestamp)
	})

	return timeline
}
