package service

import (
	"context"
	"strings"

	"eventpulse/internal/clock"
	"eventpulse/internal/lifecycle"
	"eventpulse/internal/model"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/google/uuid"
)

// SubmitFeedbackParams 提交回饋參數；text 與 emoji 至少一個必填
type SubmitFeedbackParams struct {
	UserID   string
	UserName string
	Text     string
	Emoji    *string
}

type FeedbackService interface {
	Submit(ctx context.Context, eventID string, params SubmitFeedbackParams) (*model.Feedback, error)
	// TogglePin 釘選/取消釘選回饋，僅活動建立者可操作
	TogglePin(ctx context.Context, eventID, feedbackID, requesterID string) (*model.Feedback, error)
	// ToggleFlag 標記/取消標記不當回饋，僅活動建立者可操作
	ToggleFlag(ctx context.Context, eventID, feedbackID, requesterID string) (*model.Feedback, error)
}

type FeedbackServiceImpl struct {
	repo repository.EventRepository
	clk  clock.Clock
}

func NewFeedbackService(repo repository.EventRepository, clk clock.Clock) FeedbackService {
	return &FeedbackServiceImpl{repo: repo, clk: clk}
}

func (s *FeedbackServiceImpl) Submit(ctx context.Context, eventID string, params SubmitFeedbackParams) (*model.Feedback, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if !lifecycle.FeedbackOpen(now, event.StartTime, event.EndTime) {
		return nil, apperrors.ErrFeedbackWindowClosed
	}

	if strings.TrimSpace(params.Text) == "" && params.Emoji == nil {
		return nil, apperrors.NewValidationError("feedback", "at least one of text or emoji is required")
	}
	if params.Emoji != nil && !model.IsSupportedEmoji(*params.Emoji) {
		return nil, apperrors.NewValidationError("emoji", "unsupported emoji")
	}

	feedback := model.Feedback{
		ID:        uuid.NewString(),
		UserID:    params.UserID,
		UserName:  params.UserName,
		Text:      params.Text,
		Emoji:     params.Emoji,
		Timestamp: now,
		IsPinned:  false,
		IsFlagged: false,
	}
	event.Feedback = append(event.Feedback, feedback)
	event.Status = lifecycle.DeriveStatus(now, event.StartTime, event.EndTime)

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *FeedbackServiceImpl) TogglePin(ctx context.Context, eventID, feedbackID, requesterID string) (*model.Feedback, error) {
	return s.toggle(ctx, eventID, feedbackID, requesterID, func(f *model.Feedback) {
		f.IsPinned = !f.IsPinned
	})
}

func (s *FeedbackServiceImpl) ToggleFlag(ctx context.Context, eventID, feedbackID, requesterID string) (*model.Feedback, error) {
	return s.toggle(ctx, eventID, feedbackID, requesterID, func(f *model.Feedback) {
		f.IsFlagged = !f.IsFlagged
	})
}

func (s *FeedbackServiceImpl) toggle(ctx context.Context, eventID, feedbackID, requesterID string, flip func(*model.Feedback)) (*model.Feedback, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatedBy != requesterID {
		return nil, apperrors.ErrNotEventCreator
	}

	feedback := event.FindFeedback(feedbackID)
	if feedback == nil {
		return nil, apperrors.ErrFeedbackNotFound
	}

	flip(feedback)
	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return feedback, nil
}
