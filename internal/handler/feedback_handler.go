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

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/feedback", h.Submit)
		router.PUT("events/:id/feedback/:feedbackId/pin", h.TogglePin)
		router.PUT("events/:id/feedback/:feedbackId/flag", h.ToggleFlag)
	}
}

// SubmitFeedbackRequest 提交回饋請求；text 與 emoji 至少一個必填
type SubmitFeedbackRequest struct {
	UserID   string  `json:"user_id" binding:"required"`
	UserName string  `json:"user_name" binding:"required"`
	Text     string  `json:"text"`
	Emoji    *string `json:"emoji"`
}

// ToggleFeedbackRequest 釘選/標記請求；user_id 必須是活動建立者
type ToggleFeedbackRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := service.SubmitFeedbackParams{
		UserID:   req.UserID,
		UserName: req.UserName,
		Text:     req.Text,
		Emoji:    req.Emoji,
	}
	feedback, err := h.service.Submit(c, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Submit")
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) TogglePin(c *gin.Context) {
	var req ToggleFeedbackRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	feedback, err := h.service.TogglePin(c, c.Param("id"), c.Param("feedbackId"), req.UserID)
	if err != nil {
		h.handleError(c, err, "TogglePin")
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *FeedbackHandler) ToggleFlag(c *gin.Context) {
	var req ToggleFeedbackRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	feedback, err := h.service.ToggleFlag(c, c.Param("id"), c.Param("feedbackId"), req.UserID)
	if err != nil {
		h.handleError(c, err, "ToggleFlag")
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *FeedbackHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrFeedbackWindowClosed):
		log.Warn("Feedback window closed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Feedback can only be submitted during the event or within 24 hours after it ends"})
	case errors.Is(err, apperrors.ErrNotEventCreator):
		log.Warn("Not event creator")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the event creator can perform this action"})
	case errors.Is(err, apperrors.ErrFeedbackNotFound):
		log.Warn("Feedback not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
