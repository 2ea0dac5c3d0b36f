package sales

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/sales-report/internal/events"
)

// LogNotifier writes emitted report events to the structured log.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements events.Notifier.
func (n LogNotifier) Notify(_ context.Context, event events.Event) error {
	n.Logger.Info().
		Str("event_id", event.ID.String()).
		Str("topic", event.Topic).
		Time("occurred_at", event.OccurredAt).
		Interface("payload", event.Payload).
		Msg("report_event")
	return nil
}
