package handler

import (
	"errors"
	"net/http"

	"eventpulse/internal/model"
	"eventpulse/internal/service"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("users/me", h.GetCurrent)
		router.PUT("users/me", h.SaveCurrent)
	}
}

// SaveUserRequest 保存目前使用者請求
type SaveUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, err := h.service.GetCurrent(c)
	if err != nil {
		h.handleError(c, err, "GetCurrent")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) SaveCurrent(c *gin.Context) {
	var req SaveUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	user, err := h.service.SaveCurrent(c, &model.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err, "SaveCurrent")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "No current user"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
