package api

import (
	"time"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
)

// Wire schemas for the EventSphere API. Field names follow the server's
// JSON exactly. Every inbound payload passes a validate() before it is
// mapped to an entity; a payload that fails is rejected as
// malformed_response instead of being silently defaulted.

type priceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type capacityDTO struct {
	Number         int `json:"number"`
	SeatsRemaining int `json:"seatsRemaining"`
}

type locationDTO struct {
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	PostCode string `json:"postCode,omitempty"`
	Country  string `json:"country,omitempty"`
}

type organizerDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type eventDTO struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	EventMode   string        `json:"eventMode"`
	Category    string        `json:"category"`
	StartAt     time.Time     `json:"startAt"`
	EndAt       time.Time     `json:"endAt"`
	CoverURL    string        `json:"coverUrl,omitempty"`
	Website     string        `json:"website,omitempty"`
	OnlineURL   string        `json:"onlineUrl,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Price       priceDTO      `json:"price"`
	Capacity    capacityDTO   `json:"capacity"`
	Location    *locationDTO  `json:"location,omitempty"`
	Organizer   *organizerDTO `json:"organizer,omitempty"`
}

func (d *eventDTO) validate() error {
	if d.ID == "" || d.Title == "" {
		return domain.ErrMalformedResponse
	}
	if d.Capacity.Number < 0 || d.Capacity.SeatsRemaining < 0 {
		return domain.ErrMalformedResponse
	}
	if d.Capacity.Number > 0 && d.Capacity.SeatsRemaining > d.Capacity.Number {
		return domain.ErrMalformedResponse
	}
	return nil
}

func (d *eventDTO) toEntity() entities.Event {
	event := entities.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Mode:        entities.EventMode(d.EventMode),
		Category:    d.Category,
		StartAt:     d.StartAt,
		EndAt:       d.EndAt,
		CoverURL:    d.CoverURL,
		Website:     d.Website,
		OnlineURL:   d.OnlineURL,
		Tags:        d.Tags,
		Price:       entities.Price(d.Price),
		Capacity: entities.Capacity{
			Total:          d.Capacity.Number,
			SeatsRemaining: d.Capacity.SeatsRemaining,
		},
	}
	if d.Location != nil {
		event.Location = &entities.Location{
			Address:  d.Location.Address,
			City:     d.Location.City,
			PostCode: d.Location.PostCode,
			Country:  d.Location.Country,
		}
	}
	if d.Organizer != nil {
		event.Organizer = entities.Organizer(*d.Organizer)
	}
	return event
}

type listDTO struct {
	Data  []eventDTO `json:"data"`
	Total int        `json:"total"`
}

func (d *listDTO) validate() error {
	if d.Total < 0 {
		return domain.ErrMalformedResponse
	}
	for i := range d.Data {
		if err := d.Data[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

type toggleDTO struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	SeatsRemaining int    `json:"seatsRemaining"`
}

func (d *toggleDTO) validate() error {
	if d.SeatsRemaining < 0 {
		return domain.ErrMalformedResponse
	}
	switch d.Status {
	case string(entities.StatusReserved), string(entities.StatusCancelled), string(entities.StatusNotReserved):
		return nil
	default:
		return domain.ErrMalformedResponse
	}
}

type statusDTO struct {
	Status string `json:"status"`
}

type attendingDTO struct {
	ID     string    `json:"_id"`
	Status string    `json:"status"`
	Event  *eventDTO `json:"eventId"`
}

type savedDTO struct {
	ID    string    `json:"_id"`
	Event *eventDTO `json:"eventId"`
}

type participantDTO struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

type userDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func (d *authDTO) validate() error {
	if d.Token == "" {
		return domain.ErrMalformedResponse
	}
	return nil
}

// eventPayload is the outbound shape for create/edit.
type eventPayload struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	EventMode   string       `json:"eventMode"`
	Category    string       `json:"category"`
	StartAt     time.Time    `json:"startAt"`
	EndAt       time.Time    `json:"endAt"`
	CoverURL    string       `json:"coverUrl,omitempty"`
	Website     string       `json:"website,omitempty"`
	OnlineURL   string       `json:"onlineUrl,omitempty"`
	Price       priceDTO     `json:"price"`
	Capacity    capacityNew  `json:"capacity"`
	Location    *locationDTO `json:"location,omitempty"`
}

type capacityNew struct {
	Number int `json:"number"`
}

func payloadFromDraft(draft *entities.EventDraft) eventPayload {
	payload := eventPayload{
		Title:       draft.Title,
		Description: draft.Description,
		EventMode:   string(draft.Mode),
		Category:    draft.Category,
		StartAt:     draft.StartAt,
		EndAt:       draft.EndAt,
		CoverURL:    draft.CoverURL,
		Website:     draft.Website,
		OnlineURL:   draft.OnlineURL,
		Price: priceDTO{
			Amount:   draft.Price.Amount,
			Currency: draft.Price.Currency,
		},
		Capacity: capacityNew{Number: draft.Capacity},
	}
	if draft.Location != nil {
		payload.Location = &locationDTO{
			Address:  draft.Location.Address,
			City:     draft.Location.City,
			PostCode: draft.Location.PostCode,
			Country:  draft.Location.Country,
		}
	}
	return payload
}
