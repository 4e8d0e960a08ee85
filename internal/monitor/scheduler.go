package monitor

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/models"
)

// watchJob pairs one monitor request with its cycle's WaitGroup.
type watchJob struct {
	request models.MonitorRequest
	cycleWG *sync.WaitGroup
}

// Scheduler runs the recurring watch cycles. Cycles never overlap: each runs
// to completion inside the scheduler loop, and ticks that fire while a slow
// cycle is still in flight coalesce into the ticker's one-slot buffer.
type Scheduler struct {
	logger       zerolog.Logger
	service      *WatchService
	cycleTracker *CycleTracker
	interval     time.Duration
	maxWorkers   int
}

// NewScheduler creates a scheduler for the watch service.
func NewScheduler(cfg config.MonitorConfig, service *WatchService, logger zerolog.Logger) *Scheduler {
	interval := cfg.CheckInterval()
	if interval <= 0 {
		interval = time.Duration(config.DefaultCheckIntervalSeconds) * time.Second
	}
	maxWorkers := cfg.MaxConcurrentChecks
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Scheduler{
		logger:       logger.With().Str("component", "WatchScheduler").Logger(),
		service:      service,
		cycleTracker: NewCycleTracker(cfg.MaxCycles),
		interval:     interval,
		maxWorkers:   maxWorkers,
	}
}

// Start runs the first watch cycle immediately, then one cycle per interval
// tick. It blocks until the context is cancelled or the configured cycle
// limit is reached, returning ctx.Err() in the former case.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Int("max_workers", s.maxWorkers).
		Int("requests", len(s.service.Requests())).
		Msg("Starting watch scheduler")

	s.runCycle(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.cycleTracker.ShouldContinue() {
		s.logger.Info().Msg("Cycle limit reached, watch scheduler stopping")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Watch scheduler stopping")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
			if err := ctx.Err(); err != nil {
				return err
			}
			if !s.cycleTracker.ShouldContinue() {
				s.logger.Info().Msg("Cycle limit reached, watch scheduler stopping")
				return nil
			}
		}
	}
}

// runCycle checks every configured request once, spreading the checks over a
// bounded worker pool, then logs the cycle summary.
func (s *Scheduler) runCycle(ctx context.Context) {
	requests := s.service.Requests()
	cycleID := s.cycleTracker.StartCycle()
	s.logger.Info().Str("cycle_id", cycleID).Int("requests", len(requests)).Msg("Watch cycle started")

	jobs := make(chan watchJob, s.maxWorkers)
	var workerWG sync.WaitGroup
	for i := 0; i < s.maxWorkers; i++ {
		workerWG.Add(1)
		go s.worker(ctx, jobs, &workerWG)
	}

	var cycleWG sync.WaitGroup
	cycleWG.Add(len(requests))
	for _, req := range requests {
		job := watchJob{request: req, cycleWG: &cycleWG}
		select {
		case jobs <- job:
		case <-ctx.Done():
			cycleWG.Done() // job never submitted
		}
	}
	close(jobs)
	cycleWG.Wait()
	workerWG.Wait()

	stats := s.cycleTracker.EndCycle()
	s.logger.Info().
		Str("cycle_id", stats.CycleID).
		Int("processed", stats.Processed).
		Int("available", stats.Available).
		Int("unavailable", stats.Unavailable).
		Int("fetch_errors", stats.FetchErrors).
		Int("notified", stats.Notified).
		Dur("duration", stats.Duration).
		Msg("Watch cycle finished")
}

// worker consumes jobs until the channel closes. After cancellation it keeps
// draining so every job's WaitGroup slot is released.
func (s *Scheduler) worker(ctx context.Context, jobs <-chan watchJob, workerWG *sync.WaitGroup) {
	defer workerWG.Done()
	for job := range jobs {
		select {
		case <-ctx.Done():
			job.cycleWG.Done()
			continue
		default:
		}
		s.checkWithRecovery(ctx, job.request)
		job.cycleWG.Done()
	}
}

// checkWithRecovery isolates panics from a single check so one malformed
// response cannot take down the watch loop. The stack is logged under a
// correlation ID and the check counts as a fetch error.
func (s *Scheduler) checkWithRecovery(ctx context.Context, req models.MonitorRequest) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			s.logger.Error().
				Str("correlation_id", correlationID).
				Str("panic", fmt.Sprintf("%v", r)).
				Str("stack", string(debug.Stack())).
				Stringer("request", req).
				Msg("Availability check panicked")
			s.cycleTracker.RecordResult(models.OutcomeFetchError, false)
		}
	}()

	outcome, notified := s.service.CheckRequest(ctx, req)
	s.cycleTracker.RecordResult(outcome, notified)
}
