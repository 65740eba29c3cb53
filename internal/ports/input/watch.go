package input

import "context"

// WatchUseCase tracks full events and raises an alert when seats free up.
type WatchUseCase interface {
	Watch(eventID string)
	Poll(ctx context.Context)
	Watched() int
}
