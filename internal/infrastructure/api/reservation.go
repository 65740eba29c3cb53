package api

import (
	"context"
	"net/http"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/output"
)

var _ output.ReservationClient = (*ReservationClient)(nil)

// ReservationClient implements output.ReservationClient against the
// my-events and saved-events endpoints.
type ReservationClient struct {
	client *Client
}

func NewReservationClient(client *Client) *ReservationClient {
	return &ReservationClient{client: client}
}

func (r *ReservationClient) ToggleRSVP(ctx context.Context, eventID string) (entities.RsvpResult, error) {
	var payload toggleDTO
	err := r.client.do(ctx, http.MethodPost, "/api/my-events/attending/"+eventID+"/rsvp/toggle", nil, nil, &payload)
	if err != nil {
		return entities.RsvpResult{}, asRsvpRejected(err)
	}
	if err := payload.validate(); err != nil {
		return entities.RsvpResult{}, err
	}
	if !payload.Success {
		return entities.RsvpResult{}, domain.ErrRsvpRejected
	}
	return entities.RsvpResult{
		Reserved:       payload.Status == string(entities.StatusReserved),
		SeatsRemaining: payload.SeatsRemaining,
	}, nil
}

func (r *ReservationClient) RSVPStatus(ctx context.Context, eventID string) (entities.ReservationStatus, error) {
	var payload statusDTO
	err := r.client.do(ctx, http.MethodGet, "/api/my-events/attending/"+eventID, nil, nil, &payload)
	if err != nil {
		// Callers treat any failure here as not-reserved; keep the error so
		// they can tell an auth miss from a network fault.
		return entities.StatusNotReserved, asFetchFailed(err)
	}
	if payload.Status == string(entities.StatusReserved) {
		return entities.StatusReserved, nil
	}
	return entities.StatusNotReserved, nil
}

func (r *ReservationClient) SaveEvent(ctx context.Context, eventID string) error {
	if err := r.client.do(ctx, http.MethodPost, "/api/saved-events/"+eventID, nil, nil, nil); err != nil {
		return asSaveFailed(err)
	}
	return nil
}

func (r *ReservationClient) UnsaveEvent(ctx context.Context, eventID string) error {
	err := r.client.do(ctx, http.MethodDelete, "/api/saved-events/"+eventID, nil, nil, nil)
	if err != nil {
		// Removing an event that is not in the set is a success for the
		// caller: the set ends up in the requested state either way.
		if domain.Code(err) == "event_not_found" {
			return nil
		}
		return asSaveFailed(err)
	}
	return nil
}

func (r *ReservationClient) ListSaved(ctx context.Context) ([]entities.SavedEntry, error) {
	var payload []savedDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/saved-events/", nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	entries := make([]entities.SavedEntry, 0, len(payload))
	for _, d := range payload {
		if d.Event == nil {
			// A dangling reference to a deleted event; skip it.
			continue
		}
		if err := d.Event.validate(); err != nil {
			return nil, err
		}
		entries = append(entries, entities.SavedEntry{ID: d.ID, Event: d.Event.toEntity()})
	}
	return entries, nil
}

func (r *ReservationClient) Attending(ctx context.Context) ([]entities.AttendingEntry, error) {
	var payload []attendingDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/my-events/attending", nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	entries := make([]entities.AttendingEntry, 0, len(payload))
	for _, d := range payload {
		if d.Event == nil {
			continue
		}
		if err := d.Event.validate(); err != nil {
			return nil, err
		}
		entries = append(entries, entities.AttendingEntry{
			ID:     d.ID,
			Status: entities.ReservationStatus(d.Status),
			Event:  d.Event.toEntity(),
		})
	}
	return entries, nil
}

func (r *ReservationClient) Hosting(ctx context.Context) ([]entities.Event, error) {
	var payload []eventDTO
	if err := r.client.do(ctx, http.MethodGet, "/api/my-events/hosting", nil, nil, &payload); err != nil {
		return nil, asFetchFailed(err)
	}
	events := make([]entities.Event, len(payload))
	for i := range payload {
		if err := payload[i].validate(); err != nil {
			return nil, err
		}
		events[i] = payload[i].toEntity()
	}
	return events, nil
}
