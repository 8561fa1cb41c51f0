package handler

import (
	"errors"
	"net/http"

	"eventpulse/internal/service"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func (h *AttendanceHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/rsvp", h.RSVP)
		router.POST("events/:id/checkin", h.CheckIn)
		router.POST("events/:id/walkins", h.AddWalkIn)
	}
}

// RSVPRequest 報名請求
type RSVPRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// CheckInRequest 報到請求
type CheckInRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// WalkInRequest 現場報名請求；user_id 是操作的主辦人，name/email 是現場報名者
type WalkInRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

func (h *AttendanceHandler) RSVP(c *gin.Context) {
	var req RSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	attendee, err := h.service.RSVP(c, c.Param("id"), req.UserID, req.Name, req.Email)
	if err != nil {
		h.handleError(c, err, "RSVP")
		return
	}
	c.JSON(http.StatusCreated, attendee)
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	attendee, err := h.service.CheckIn(c, c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err, "CheckIn")
		return
	}
	c.JSON(http.StatusOK, attendee)
}

func (h *AttendanceHandler) AddWalkIn(c *gin.Context) {
	var req WalkInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	attendee, err := h.service.AddWalkIn(c, c.Param("id"), req.UserID, req.Name, req.Email)
	if err != nil {
		h.handleError(c, err, "AddWalkIn")
		return
	}
	c.JSON(http.StatusCreated, attendee)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAlreadyRSVPd):
		log.Warn("Already RSVP'd")
		c.JSON(http.StatusConflict, gin.H{"error": "You have already RSVP'd to this event"})
	case errors.Is(err, apperrors.ErrEventAtCapacity):
		log.Warn("Event at capacity")
		c.JSON(http.StatusConflict, gin.H{"error": "This event has reached maximum capacity"})
	case errors.Is(err, apperrors.ErrRSVPDeadlinePassed):
		log.Warn("RSVP deadline passed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The RSVP deadline has passed"})
	case errors.Is(err, apperrors.ErrCheckInNotOpen):
		log.Warn("Check-in not open")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Check-in is not yet available. It opens 1 hour before the event starts."})
	case errors.Is(err, apperrors.ErrNotEventCreator):
		log.Warn("Not event creator")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the event creator can perform this action"})
	case errors.Is(err, apperrors.ErrAttendeeNotFound):
		log.Warn("Attendee not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "No RSVP found for this user"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
