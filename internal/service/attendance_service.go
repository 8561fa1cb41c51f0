package service

import (
	"context"
	"fmt"

	"eventpulse/internal/clock"
	"eventpulse/internal/lifecycle"
	"eventpulse/internal/model"
	"eventpulse/internal/notifier"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"
	"eventpulse/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AttendanceService interface {
	// RSVP 報名活動；重複報名、額滿、逾期分別回傳對應錯誤
	RSVP(ctx context.Context, eventID, userID, name, email string) (*model.Attendee, error)
	// CheckIn 報到；窗口於活動開始前一小時開放，重複報到會重寫報到時間
	CheckIn(ctx context.Context, eventID, userID string) (*model.Attendee, error)
	// AddWalkIn 主辦人直接加入現場報名者，視為已報到
	AddWalkIn(ctx context.Context, eventID, requesterID, name, email string) (*model.Attendee, error)
}

type AttendanceServiceImpl struct {
	repo     repository.EventRepository
	clk      clock.Clock
	notifier notifier.Notifier
}

func NewAttendanceService(repo repository.EventRepository, clk clock.Clock, n notifier.Notifier) AttendanceService {
	return &AttendanceServiceImpl{repo: repo, clk: clk, notifier: n}
}

func (s *AttendanceServiceImpl) RSVP(ctx context.Context, eventID, userID, name, email string) (*model.Attendee, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()

	// 檢查順序：重複報名 -> 額滿 -> 截止
	if event.FindAttendee(userID) != nil {
		return nil, apperrors.ErrAlreadyRSVPd
	}
	if event.IsAtCapacity() {
		return nil, apperrors.ErrEventAtCapacity
	}
	if lifecycle.RSVPDeadlinePassed(now, event.RSVPDeadline) {
		return nil, apperrors.ErrRSVPDeadlinePassed
	}

	attendee := model.Attendee{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Email:       email,
		RSVPTime:    now,
		CheckInTime: nil,
		Attended:    false,
	}
	event.Attendees = append(event.Attendees, attendee)
	event.Status = lifecycle.DeriveStatus(now, event.StartTime, event.EndTime)

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	// 通知失敗不影響已成功的報名
	if err := s.notifier.SendRSVPConfirmation(ctx, event, &attendee); err != nil {
		logger.WithComponent("service").Warn("failed to send RSVP confirmation",
			zap.String("event_id", event.ID), zap.String("user_id", userID), zap.Error(err))
	}

	return &attendee, nil
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, eventID, userID string) (*model.Attendee, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendee := event.FindAttendee(userID)
	if attendee == nil {
		return nil, apperrors.ErrAttendeeNotFound
	}

	now := s.clk.Now()
	if now.Before(event.StartTime.Add(-lifecycle.CheckInLeadTime)) {
		return nil, apperrors.ErrCheckInNotOpen
	}

	// 已報到者再次報到會覆寫報到時間
	checkInTime := now
	attendee.CheckInTime = &checkInTime
	attendee.Attended = true
	event.Status = lifecycle.DeriveStatus(now, event.StartTime, event.EndTime)

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	if err := s.notifier.SendCheckInReminder(ctx, event, attendee); err != nil {
		logger.WithComponent("service").Warn("failed to send check-in reminder",
			zap.String("event_id", event.ID), zap.String("user_id", userID), zap.Error(err))
	}

	return attendee, nil
}

func (s *AttendanceServiceImpl) AddWalkIn(ctx context.Context, eventID, requesterID, name, email string) (*model.Attendee, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatedBy != requesterID {
		return nil, apperrors.ErrNotEventCreator
	}

	now := s.clk.Now()
	checkInTime := now
	attendee := model.Attendee{
		ID:          uuid.NewString(),
		UserID:      fmt.Sprintf("walkin-%s", uuid.NewString()),
		Name:        name,
		Email:       email,
		RSVPTime:    now,
		CheckInTime: &checkInTime,
		Attended:    true,
	}
	event.Attendees = append(event.Attendees, attendee)
	event.Status = lifecycle.DeriveStatus(now, event.StartTime, event.EndTime)

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return &attendee, nil
}
