package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/models"
)

func requestForMovie(movie string) models.MonitorRequest {
	return models.MonitorRequest{Cinema: models.CinemaBuitenhof, Date: "19-09-2026", Movie: movie}
}

func newTestScheduler(service *WatchService, cfg config.MonitorConfig) *Scheduler {
	scheduler := NewScheduler(cfg, service, zerolog.Nop())
	scheduler.interval = 10 * time.Millisecond
	return scheduler
}

func TestScheduler_Start_FirstCycleRunsImmediately(t *testing.T) {
	var calls int32
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		atomic.AddInt32(&calls, 1)
		return models.UnavailableResult(req)
	})
	service := newTestService(fetcher, &notifierRecorder{}, watchRequest)
	scheduler := NewScheduler(config.MonitorConfig{CheckIntervalSeconds: 3600, MaxConcurrentChecks: 1, MaxCycles: 1}, service, zerolog.Nop())

	start := time.Now()
	err := scheduler.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Less(t, time.Since(start), time.Second, "first cycle must not wait for a tick")
}

func TestScheduler_Start_StopsAfterMaxCycles(t *testing.T) {
	var calls int32
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		atomic.AddInt32(&calls, 1)
		return models.UnavailableResult(req)
	})
	recorder := &notifierRecorder{}
	service := newTestService(fetcher, recorder, watchRequest)
	scheduler := newTestScheduler(service, config.MonitorConfig{MaxConcurrentChecks: 2, MaxCycles: 3})

	err := scheduler.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "one check per cycle")
	assert.Empty(t, recorder.Events())
}

func TestScheduler_Start_ReturnsContextError(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		return models.UnavailableResult(req)
	})
	service := newTestService(fetcher, &notifierRecorder{}, watchRequest)
	scheduler := newTestScheduler(service, config.MonitorConfig{MaxConcurrentChecks: 1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func TestScheduler_NotifiesOnceAcrossCycles(t *testing.T) {
	var calls int32
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		if atomic.AddInt32(&calls, 1) == 1 {
			return models.UnavailableResult(req)
		}
		return models.AvailableResult(req, &models.ScheduleItem{Title: req.Movie})
	})
	recorder := &notifierRecorder{}
	service := newTestService(fetcher, recorder, watchRequest)
	scheduler := newTestScheduler(service, config.MonitorConfig{MaxConcurrentChecks: 1, MaxCycles: 3})

	require.NoError(t, scheduler.Start(context.Background()))

	events := recorder.Events()
	require.Len(t, events, 1, "unavailable, then available twice: exactly one notification")
	assert.Equal(t, watchRequest, events[0].Request)
}

func TestScheduler_BoundsConcurrentChecks(t *testing.T) {
	const maxWorkers = 2
	var inFlight, peak int32
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return models.UnavailableResult(req)
	})

	requests := make([]models.MonitorRequest, 0, 6)
	for i := 0; i < 6; i++ {
		requests = append(requests, requestForMovie(fmt.Sprintf("Film %d", i)))
	}
	service := newTestService(fetcher, &notifierRecorder{}, requests...)
	scheduler := newTestScheduler(service, config.MonitorConfig{MaxConcurrentChecks: maxWorkers, MaxCycles: 1})

	require.NoError(t, scheduler.Start(context.Background()))

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(maxWorkers))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&peak), int32(1))
}

func TestScheduler_RecoversFromPanickingCheck(t *testing.T) {
	healthy := requestForMovie("Dune")
	broken := requestForMovie("Boom")
	fetcher := fetcherFunc(func(_ context.Context, req models.MonitorRequest) models.FetchResult {
		if req.Movie == "Boom" {
			panic("malformed schedule response")
		}
		return models.AvailableResult(req, &models.ScheduleItem{Title: req.Movie})
	})
	recorder := &notifierRecorder{}
	service := newTestService(fetcher, recorder, healthy, broken)
	scheduler := newTestScheduler(service, config.MonitorConfig{MaxConcurrentChecks: 1, MaxCycles: 1})

	require.NoError(t, scheduler.Start(context.Background()), "a panicking check must not take down the loop")

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, healthy, events[0].Request)
}
