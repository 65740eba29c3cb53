package output

import "context"

// Notifier delivers watch-mode alerts out of band.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
