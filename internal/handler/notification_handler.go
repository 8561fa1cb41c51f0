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

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/notifications", h.NotifyAttendees)
	}
}

// NotifyAttendeesRequest 群發通知請求
type NotifyAttendeesRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

func (h *NotificationHandler) NotifyAttendees(c *gin.Context) {
	var req NotifyAttendeesRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	sent, err := h.service.NotifyAttendees(c, c.Param("id"), req.UserID, service.NotificationType(req.Type))
	if err != nil {
		h.handleError(c, err, "NotifyAttendees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

func (h *NotificationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrNotEventCreator):
		log.Warn("Not event creator")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the event creator can perform this action"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
