package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reminder-engine/internal/model"
)

// RecurrenceService completes an occurrence and, for recurring items,
// computes and persists the follow-on occurrence.
type RecurrenceService struct {
	store ItemStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewRecurrenceService(store ItemStore, log zerolog.Logger) *RecurrenceService {
	return &RecurrenceService{store: store, log: log, now: time.Now}
}

// Complete marks the item done and returns it together with the
// successor occurrence, if one was generated.
//
// The done flip is conditional, so a concurrent or repeated completion
// loses the race cleanly: the call returns ErrAlreadyDone and never
// creates a duplicate successor. A successor is generated only while the
// recurrence has not expired and the next occurrence still falls within
// the recurrence end date; otherwise the chain ends here.
func (s *RecurrenceService) Complete(ctx context.Context, userID uint, itemID string) (*model.Item, *model.Item, error) {
	item, err := s.store.FindByOwner(ctx, userID, itemID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	flipped, err := s.store.MarkDone(ctx, item.ID)
	if err != nil {
		return nil, nil, err
	}
	if !flipped {
		s.log.Debug().Str("item", item.ID).Msg("complete: item already done")
		item.Done = true
		return item, nil, ErrAlreadyDone
	}
	item.Done = true

	if !item.CanRecur(s.now()) {
		return item, nil, nil
	}

	next := *item
	next.ID = uuid.NewString()
	next.Done = false
	next.DueAt = item.NextDueAt()
	next.CreatedAt = time.Time{}
	next.UpdatedAt = time.Time{}

	if err := s.store.Create(ctx, &next); err != nil {
		return item, nil, err
	}

	s.log.Info().
		Str("item", item.ID).
		Str("next", next.ID).
		Time("next_due", next.DueAt).
		Msg("recurring item advanced")
	return item, &next, nil
}
