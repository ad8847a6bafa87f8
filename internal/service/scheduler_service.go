package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// SchedulerService wraps cron-based jobs. Interval jobs carry an
// Idle/Running overlap guard: a fire that arrives while the previous run
// is still in flight is dropped, never queued, so at most one scan is
// active at any time.
type SchedulerService struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func NewSchedulerService(loc *time.Location, log zerolog.Logger) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		log:  log,
	}
}

// ScheduleInterval registers a periodic job every given duration. The
// job runs to completion once started; overlapping fires are skipped.
func (s *SchedulerService) ScheduleInterval(interval time.Duration, name string, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	// Convert to cron spec: every N seconds.
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	return s.cron.AddFunc(spec, s.guard(name, job))
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// guard wraps a job with the Idle/Running state transition.
func (s *SchedulerService) guard(name string, job func()) func() {
	var running atomic.Bool
	return func() {
		if !running.CompareAndSwap(false, true) {
			s.log.Warn().Str("job", name).Msg("previous run still active; skipping fire")
			return
		}
		defer running.Store(false)
		job()
	}
}
