package service

import (
	"context"

	"eventpulse/internal/analytics"
	"eventpulse/internal/model"
	"eventpulse/internal/repository"
)

type AnalyticsService interface {
	GetByEventID(ctx context.Context, eventID string) (*model.AnalyticsReport, error)
}

type AnalyticsServiceImpl struct {
	repo repository.EventRepository
}

func NewAnalyticsService(repo repository.EventRepository) AnalyticsService {
	return &AnalyticsServiceImpl{repo: repo}
}

func (s *AnalyticsServiceImpl) GetByEventID(ctx context.Context, eventID string) (*model.AnalyticsReport, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return analytics.Compute(event), nil
}
