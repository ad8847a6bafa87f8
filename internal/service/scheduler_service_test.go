package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminder-engine/internal/logging"
)

func TestScheduleInterval_RejectsNonPositive(t *testing.T) {
	svc := NewSchedulerService(time.UTC, logging.Nop())
	_, err := svc.ScheduleInterval(0, "noop", func() {})
	assert.Error(t, err)
}

func TestGuard_DropsOverlappingFire(t *testing.T) {
	svc := NewSchedulerService(time.UTC, logging.Nop())

	var runs atomic.Int32
	block := make(chan struct{})
	guarded := svc.guard("scan", func() {
		runs.Add(1)
		<-block
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		guarded()
	}()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	// Fire while the first run is still in flight: dropped, not queued.
	guarded()
	assert.Equal(t, int32(1), runs.Load())

	close(block)
	wg.Wait()

	// Back to Idle: the next fire runs normally. The closed channel no
	// longer blocks the job body.
	guarded()
	assert.Equal(t, int32(2), runs.Load())
}
