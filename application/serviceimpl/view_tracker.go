// application/serviceimpl/view_tracker.go
package serviceimpl

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpad/gofiber-notes-api/domain/repository"
	"github.com/inkpad/gofiber-notes-api/domain/service"
)

const viewKeyPrefix = "note:views:"

type viewTracker struct {
	redis    *redis.Client
	noteRepo repository.NoteRepository
	log      zerolog.Logger
}

// NewViewTracker creates a redis-backed view counter. Reads bump a
// per-note counter in redis; Flush moves the accumulated deltas into
// the notes table, so the stored count only ever grows.
func NewViewTracker(redisClient *redis.Client, noteRepo repository.NoteRepository, log zerolog.Logger) service.ViewTrackerService {
	return &viewTracker{
		redis:    redisClient,
		noteRepo: noteRepo,
		log:      log.With().Str("component", "views").Logger(),
	}
}

func (s *viewTracker) RecordView(ctx context.Context, noteID uuid.UUID) error {
	return s.redis.Incr(ctx, viewKeyPrefix+noteID.String()).Err()
}

func (s *viewTracker) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.redis.Scan(ctx, cursor, viewKeyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}

		for _, key := range keys {
			if err := s.flushKey(ctx, key); err != nil {
				s.log.Error().Err(err).Str("key", key).Msg("view count flush failed")
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *viewTracker) flushKey(ctx context.Context, key string) error {
	raw, err := s.redis.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	delta, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || delta <= 0 {
		return err
	}

	noteID, err := uuid.Parse(strings.TrimPrefix(key, viewKeyPrefix))
	if err != nil {
		return err
	}

	if err := s.noteRepo.IncrementViewCount(noteID, delta); err != nil {
		// Put the delta back so the views survive until the next flush.
		s.redis.IncrBy(ctx, key, delta)
		return err
	}

	return nil
}
