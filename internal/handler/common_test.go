package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"eventpulse/internal/clock"
	"eventpulse/internal/model"
	"eventpulse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// 測試基準時間，與 service 層測試相同的活動節奏
var (
	testNow      = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	testStart    = testNow.Add(24 * time.Hour)
	testEnd      = testStart.Add(3 * time.Hour)
	testDeadline = testStart.Add(-2 * time.Hour)
)

// testEnv 以 memory 後端和固定時鐘組出完整的 handler 測試環境
type testEnv struct {
	repo *repository.MemoryEventRepositoryImpl
	clk  *clock.Fixed
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	return &testEnv{
		repo: repository.NewMemoryEventRepository(),
		clk:  &clock.Fixed{Time: testNow},
	}
}

func newScheduledEvent(id string) *model.Event {
	return &model.Event{
		ID:           id,
		Title:        "Tech Conference 2025",
		Description:  "Annual technology conference.",
		StartTime:    testStart,
		EndTime:      testEnd,
		Timezone:     "UTC",
		Location:     "Convention Center",
		RSVPDeadline: testDeadline,
		MaxAttendees: 100,
		CreatedBy:    "host-1",
		Status:       model.EventStatusScheduled,
		Attendees:    []model.Attendee{},
		Feedback:     []model.Feedback{},
	}
}

func (e *testEnv) seed(t *testing.T, event *model.Event) {
	t.Helper()
	require.NoError(t, e.repo.Save(context.Background(), event))
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}
