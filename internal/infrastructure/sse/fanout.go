package sse

import (
	"context"
	"errors"

	"github.com/marketplace/dealchat/internal/domain/notification"
)

// Fanout publishes each event to every wrapped broadcaster.
type Fanout []notification.Broadcaster

// Publish calls every broadcaster and joins their errors.
func (f Fanout) Publish(ctx context.Context, chatID int64, event string, payload interface{}) error {
	var errs []error
	for _, b := range f {
		if err := b.Publish(ctx, chatID, event, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
