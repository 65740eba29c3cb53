package application

import (
	"context"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
	"eventsphere/pkg/paging"
)

var _ input.BrowseUseCase = (*BrowseService)(nil)

const defaultPageSize = 12

// BrowseService serves the listing and detail surfaces. Filtering and
// pagination are fully delegated to the server; the service only normalizes
// the filter and derives page math from the returned total.
type BrowseService struct {
	events output.EventRepository
}

func NewBrowseService(events output.EventRepository) *BrowseService {
	return &BrowseService{events: events}
}

func (s *BrowseService) ListEvents(ctx context.Context, filter entities.ListFilter) (*entities.EventPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.Category == entities.CategoryAll {
		filter.Category = ""
	}

	items, total, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pageCount := paging.PageCount(total, filter.PageSize)
	if filter.Page > pageCount {
		// Past-the-end page: clamp and re-query with the last valid page.
		filter.Page = pageCount
		items, total, err = s.events.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		pageCount = paging.PageCount(total, filter.PageSize)
	}

	return &entities.EventPage{
		Items:     items,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		PageCount: pageCount,
	}, nil
}

func (s *BrowseService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.events.Get(ctx, id)
}
