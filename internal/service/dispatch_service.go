package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"reminder-engine/internal/model"
	"reminder-engine/internal/notify"
)

// DispatchService scans for due items and notifies their owners exactly
// once per occurrence.
type DispatchService struct {
	store   ItemStore
	users   ContactDirectory
	gateway notify.Gateway
	log     zerolog.Logger
	window  time.Duration
	workers int
	now     func() time.Time
}

func NewDispatchService(store ItemStore, users ContactDirectory, gateway notify.Gateway, log zerolog.Logger, window time.Duration, workers int) *DispatchService {
	if window <= 0 {
		window = time.Minute
	}
	if workers <= 0 {
		workers = 1
	}
	return &DispatchService{
		store:   store,
		users:   users,
		gateway: gateway,
		log:     log,
		window:  window,
		workers: workers,
		now:     time.Now,
	}
}

// RunCycle performs one scan: it loads the items due within the lookback
// window and dispatches each through a bounded worker pool. Per-item
// failures are logged and skipped so the rest of the batch still goes
// out; only a failing scan aborts the cycle.
func (s *DispatchService) RunCycle(ctx context.Context) error {
	now := s.now()
	items, err := s.store.FindDue(ctx, now, s.window)
	if err != nil {
		s.log.Error().Err(err).Msg("due-item scan failed")
		return err
	}
	if len(items) == 0 {
		return nil
	}

	s.log.Debug().Int("due", len(items)).Time("now", now).Msg("dispatching due items")

	queue := make(chan model.Item)
	var wg sync.WaitGroup
	wg.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		go func() {
			defer wg.Done()
			for item := range queue {
				s.Process(ctx, item)
			}
		}()
	}
	for _, item := range items {
		queue <- item
	}
	close(queue)
	wg.Wait()
	return nil
}

// Process notifies the owner of a single due item and commits the done
// flag after the send is acknowledged. The flag write is conditional, so
// two workers racing over the same item flip it only once. Failures
// leave the flag untouched; the item is picked up again on the next scan.
func (s *DispatchService) Process(ctx context.Context, item model.Item) {
	contact, err := s.users.Contact(ctx, item.UserID)
	if err != nil {
		s.log.Error().Err(mapNotFound(err)).Str("item", item.ID).Uint("owner", item.UserID).Msg("owner lookup failed; item left pending")
		return
	}
	if !contact.HasAny() {
		s.log.Warn().Err(ErrNoContact).Str("item", item.ID).Uint("owner", item.UserID).Msg("no delivery address; item left pending")
		return
	}

	subject, body := notify.BuildMessage(item)
	if err := s.gateway.Send(ctx, contact, subject, body); err != nil {
		if errors.Is(err, notify.ErrNoRecipient) {
			s.log.Warn().Err(err).Str("item", item.ID).Msg("gateway has no address for owner; item left pending")
		} else {
			s.log.Error().Err(err).Str("item", item.ID).Msg("reminder delivery failed; item left pending")
		}
		return
	}

	flipped, err := s.store.MarkDone(ctx, item.ID)
	if err != nil {
		s.log.Error().Err(err).Str("item", item.ID).Msg("failed to persist done flag after send")
		return
	}
	if !flipped {
		// A concurrent worker or an overlapping tick won the flip. The
		// duplicate send is the accepted trade-off of send-before-flag.
		s.log.Debug().Str("item", item.ID).Msg("done flag already set by a concurrent dispatch")
		return
	}
	s.log.Info().Str("item", item.ID).Str("kind", string(item.Kind)).Msg("reminder delivered")
}
