// pkg/scheduler/view_count_flusher.go
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/service"
)

const defaultFlushInterval = 30 * time.Second

// ViewCountFlusher periodically moves the view deltas accumulated in
// redis into the notes table.
type ViewCountFlusher struct {
	tracker  service.ViewTrackerService
	interval time.Duration
	log      zerolog.Logger
}

func NewViewCountFlusher(tracker service.ViewTrackerService, log zerolog.Logger) *ViewCountFlusher {
	return &ViewCountFlusher{
		tracker:  tracker,
		interval: defaultFlushInterval,
		log:      log.With().Str("component", "view-flusher").Logger(),
	}
}

// Start runs the flush loop until the context is cancelled, with one
// final flush on the way out.
func (f *ViewCountFlusher) Start(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := f.tracker.Flush(context.Background()); err != nil {
				f.log.Error().Err(err).Msg("final view count flush failed")
			}
			return
		case <-ticker.C:
			if err := f.tracker.Flush(ctx); err != nil {
				f.log.Error().Err(err).Msg("view count flush failed")
			}
		}
	}
}
