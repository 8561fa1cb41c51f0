package service

import (
	"context"
	"strings"

	"eventpulse/internal/clock"
	"eventpulse/internal/lifecycle"
	"eventpulse/internal/model"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListEventsFilter 活動列表過濾條件；零值表示不過濾
type ListEventsFilter struct {
	// CreatedBy 只列出該使用者建立的活動
	CreatedBy string
	// AttendingUserID 只列出該使用者已報名的活動
	AttendingUserID string
}

type EventService interface {
	List(ctx context.Context, filter ListEventsFilter) ([]*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventServiceImpl struct {
	repo repository.EventRepository
	clk  clock.Clock
}

func NewEventService(repo repository.EventRepository, clk clock.Clock) EventService {
	return &EventServiceImpl{repo: repo, clk: clk}
}

func (s *EventServiceImpl) List(ctx context.Context, filter ListEventsFilter) ([]*model.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 讀取時重新推導狀態；有變更就回寫（write-on-read self-heal）
	now := s.clk.Now()
	changed := false
	for _, event := range events {
		status := lifecycle.DeriveStatus(now, event.StartTime, event.EndTime)
		if event.Status != status {
			event.Status = status
			changed = true
		}
	}
	if changed {
		if err := s.repo.SaveAll(ctx, events); err != nil {
			// 推導後的狀態照常回傳，回寫失敗只記錄
			logger.WithComponent("service").Warn("failed to persist corrected statuses", zap.Error(err))
		}
	}

	if filter.CreatedBy == "" && filter.AttendingUserID == "" {
		return events, nil
	}

	filtered := make([]*model.Event, 0, len(events))
	for _, event := range events {
		if filter.CreatedBy != "" && event.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.AttendingUserID != "" && event.FindAttendee(filter.AttendingUserID) == nil {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := lifecycle.DeriveStatus(s.clk.Now(), event.StartTime, event.EndTime)
	if event.Status != status {
		event.Status = status
		if err := s.repo.Save(ctx, event); err != nil {
			logger.WithComponent("service").Warn("failed to persist corrected status",
				zap.String("event_id", event.ID), zap.Error(err))
		}
	}
	return event, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.Status = lifecycle.DeriveStatus(s.clk.Now(), event.StartTime, event.EndTime)
	event.Attendees = []model.Attendee{}
	event.Feedback = []model.Feedback{}

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyEventParams(event, params)
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	event.Status = lifecycle.DeriveStatus(s.clk.Now(), event.StartTime, event.EndTime)
	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// applyEventParams 只套用允許更新的欄位；id、createdBy、attendees、feedback
// 不在參數中，更新時一律保留原值
func applyEventParams(event *model.Event, params model.UpdateEventParams) {
	if params.Title != nil {
		event.Title = *params.Title
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.StartTime != nil {
		event.StartTime = *params.StartTime
	}
	if params.EndTime != nil {
		event.EndTime = *params.EndTime
	}
	if params.Timezone != nil {
		event.Timezone = *params.Timezone
	}
	if params.Location != nil {
		event.Location = *params.Location
	}
	if params.IsVirtual != nil {
		event.IsVirtual = *params.IsVirtual
	}
	if params.RSVPDeadline != nil {
		event.RSVPDeadline = *params.RSVPDeadline
	}
	if params.MaxAttendees != nil {
		event.MaxAttendees = *params.MaxAttendees
	}
}

func validateEvent(event *model.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(event.Description) == "" {
		return apperrors.NewValidationError("description", "description is required")
	}
	if event.StartTime.IsZero() {
		return apperrors.NewValidationError("start_time", "start time is required")
	}
	if event.EndTime.IsZero() {
		return apperrors.NewValidationError("end_time", "end time is required")
	}
	if event.RSVPDeadline.IsZero() {
		return apperrors.NewValidationError("rsvp_deadline", "RSVP deadline is required")
	}
	if strings.TrimSpace(event.Location) == "" {
		return apperrors.NewValidationError("location", "location is required")
	}
	if event.MaxAttendees <= 0 {
		return apperrors.NewValidationError("max_attendees", "max attendees must be a positive integer")
	}
	if !event.EndTime.After(event.StartTime) {
		return apperrors.NewValidationError("end_time", "end time must be after start time")
	}
	if !event.RSVPDeadline.Before(event.StartTime) {
		return apperrors.NewValidationError("rsvp_deadline", "RSVP deadline must be before the event starts")
	}
	return nil
}
