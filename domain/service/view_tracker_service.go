// domain/service/view_tracker_service.go
package service

import (
	"context"

	"github.com/google/uuid"
)

// ViewTrackerService accumulates note view counts out of band and
// flushes the accumulated deltas into persistent storage. The stored
// counter only ever grows.
type ViewTrackerService interface {
	RecordView(ctx context.Context, noteID uuid.UUID) error
	Flush(ctx context.Context) error
}
