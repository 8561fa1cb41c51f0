package handler

import (
	"errors"
	"net/http"
	"time"

	"eventpulse/internal/model"
	"eventpulse/internal/service"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

// CreateEventRequest 建立活動請求；欄位驗證在 service 層，
// 以便回傳具體欄位的錯誤訊息
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Timezone     string    `json:"timezone"`
	Location     string    `json:"location"`
	IsVirtual    bool      `json:"is_virtual"`
	RSVPDeadline time.Time `json:"rsvp_deadline"`
	MaxAttendees int       `json:"max_attendees"`
	CreatedBy    string    `json:"created_by" binding:"required"`
}

// UpdateEventRequest 更新活動請求；id、created_by、attendees、feedback
// 不在結構中，payload 帶了也會被無聲丟棄
type UpdateEventRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Timezone     *string    `json:"timezone"`
	Location     *string    `json:"location"`
	IsVirtual    *bool      `json:"is_virtual"`
	RSVPDeadline *time.Time `json:"rsvp_deadline"`
	MaxAttendees *int       `json:"max_attendees"`
}

func (h *EventHandler) List(c *gin.Context) {
	filter := service.ListEventsFilter{
		CreatedBy:       c.Query("created_by"),
		AttendingUserID: c.Query("attending"),
	}
	events, err := h.service.List(c, filter)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.service.GetByID(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Timezone:     req.Timezone,
		Location:     req.Location,
		IsVirtual:    req.IsVirtual,
		RSVPDeadline: req.RSVPDeadline,
		MaxAttendees: req.MaxAttendees,
		CreatedBy:    req.CreatedBy,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateEventParams{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Timezone:     req.Timezone,
		Location:     req.Location,
		IsVirtual:    req.IsVirtual,
		RSVPDeadline: req.RSVPDeadline,
		MaxAttendees: req.MaxAttendees,
	}
	updated, err := h.service.Update(c, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
