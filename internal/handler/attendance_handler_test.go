package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventpulse/internal/model"
	"eventpulse/internal/notifier"
	"eventpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAttendanceTestRouter(env *testEnv) *gin.Engine {
	router := gin.New()
	svc := service.NewAttendanceService(env.repo, env.clk, notifier.NewEmailNotifier())
	NewAttendanceHandler(svc).RegisterRoutes(router)
	return router
}

func rsvpRequest(userID string) RSVPRequest {
	return RSVPRequest{
		UserID: userID,
		Name:   "John Doe",
		Email:  "john@example.com",
	}
}

func TestRSVP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", rsvpRequest("user-1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - duplicate RSVP", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", rsvpRequest("user-1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", rsvpRequest("user-1"))
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - event at capacity", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		event := newScheduledEvent("event-1")
		event.MaxAttendees = 1
		event.Attendees = []model.Attendee{{ID: "a1", UserID: "user-a"}}
		env.seed(t, event)

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", rsvpRequest("user-b"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - deadline passed", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))
		env.clk.Set(testDeadline.Add(time.Minute))

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", rsvpRequest("user-1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)

		req := createJSONHTTPRequest("POST", "/api/v1/events/missing/rsvp", rsvpRequest("user-1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/rsvp", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckIn(t *testing.T) {
	seedWithAttendee := func(t *testing.T, env *testEnv) {
		event := newScheduledEvent("event-1")
		event.Attendees = []model.Attendee{{ID: "a1", UserID: "user-1", RSVPTime: testNow}}
		env.seed(t, event)
	}

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		seedWithAttendee(t, env)
		env.clk.Set(testStart)

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/checkin", CheckInRequest{UserID: "user-1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - window not open", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		seedWithAttendee(t, env)

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/checkin", CheckInRequest{UserID: "user-1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failed - no RSVP for user", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		seedWithAttendee(t, env)
		env.clk.Set(testStart)

		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/checkin", CheckInRequest{UserID: "user-unknown"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAddWalkIn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))
		env.clk.Set(testStart)

		body := WalkInRequest{UserID: "host-1", Name: "Walk In", Email: "walkin@example.com"}
		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/walkins", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - not the creator", func(t *testing.T) {
		env := newTestEnv()
		router := setupAttendanceTestRouter(env)
		env.seed(t, newScheduledEvent("event-1"))
		env.clk.Set(testStart)

		body := WalkInRequest{UserID: "user-1", Name: "Walk In", Email: "walkin@example.com"}
		req := createJSONHTTPRequest("POST", "/api/v1/events/event-1/walkins", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
