package repository

import (
	"context"
	"encoding/json"

	"eventpulse/internal/model"
	apperrors "eventpulse/pkg/app_errors"
)

// EventsKey 活動集合在 blob 儲存中的固定 key
const EventsKey = "eventpulse:events"

// EventRepository 活動儲存介面。每個後端都把整個活動集合存成單一 JSON blob，
// 所有變更都是 read-modify-write 整個集合（沒有部分更新、沒有交易）。
type EventRepository interface {
	FindAll(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	// Save 以 ID upsert 單一活動
	Save(ctx context.Context, event *model.Event) error
	// SaveAll 以整個集合覆寫
	SaveAll(ctx context.Context, events []*model.Event) error
	Delete(ctx context.Context, id string) error
}

func encodeEvents(events []*model.Event) ([]byte, error) {
	if events == nil {
		events = []*model.Event{}
	}
	return json.Marshal(events)
}

func decodeEvents(data []byte) ([]*model.Event, error) {
	if len(data) == 0 {
		return []*model.Event{}, nil
	}
	events := make([]*model.Event, 0)
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func findEventByID(events []*model.Event, id string) (*model.Event, error) {
	for _, event := range events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

// upsertEvent 以 ID 取代既有活動，找不到則附加到集合尾端
func upsertEvent(events []*model.Event, event *model.Event) []*model.Event {
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = event
			return events
		}
	}
	return append(events, event)
}

func removeEventByID(events []*model.Event, id string) ([]*model.Event, bool) {
	filtered := make([]*model.Event, 0, len(events))
	removed := false
	for _, event := range events {
		if event.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, removed
}
