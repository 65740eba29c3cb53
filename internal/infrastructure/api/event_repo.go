package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository against /api/events.
type EventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Event, int, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.PostalCode != "" {
		query.Set("postalCode", filter.PostalCode)
	}
	if filter.Category != "" && filter.Category != entities.CategoryAll {
		query.Set("category", filter.Category)
	}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("limit", strconv.Itoa(filter.PageSize))

	var payload listDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/events", query, nil, &payload); err != nil {
		return nil, 0, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, 0, err
	}

	events := make([]entities.Event, len(payload.Data))
	for i := range payload.Data {
		events[i] = payload.Data[i].toEntity()
	}
	return events, payload.Total, nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (*entities.Event, error) {
	var payload eventDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/events/"+id, nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	event := payload.toEntity()
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, draft *entities.EventDraft) (*entities.Event, error) {
	var payload eventDTO
	if err := r.client.do(ctx, http.MethodPost, "/api/events", nil, payloadFromDraft(draft), &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	event := payload.toEntity()
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, draft *entities.EventDraft) (*entities.Event, error) {
	var payload eventDTO
	if err := r.client.do(ctx, http.MethodPatch, "/api/events/"+id, nil, payloadFromDraft(draft), &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	event := payload.toEntity()
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil, nil); err != nil {
		return asFetchFailed(err)
	}
	return nil
}

func (r *EventRepository) Participants(ctx context.Context, id string) ([]entities.Participant, error) {
	var payload []participantDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/events/"+id+"/participants", nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	participants := make([]entities.Participant, len(payload))
	for i, p := range payload {
		participants[i] = entities.Participant{
			ID:       p.ID,
			Name:     p.Name,
			Email:    p.Email,
			Status:   entities.ReservationStatus(p.Status),
			JoinedAt: p.JoinedAt,
		}
	}
	return participants, nil
}
