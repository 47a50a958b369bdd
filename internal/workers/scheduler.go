// Package workers runs the periodic maintenance jobs and the event stream
// consumer.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Porismic/JupiterBot/internal/dispatch"
	"github.com/Porismic/JupiterBot/internal/domain/member"
)

// Dispatcher is the command sink the workers feed.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd dispatch.Command) (any, error)
}

// Job is a command issued on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Command  func() dispatch.Command
}

// Scheduler ticks each job on its own goroutine. A failing run is logged and
// the job keeps its schedule.
type Scheduler struct {
	dispatcher Dispatcher
	jobs       []Job
	logger     zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(d Dispatcher, logger zerolog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{dispatcher: d, jobs: jobs, logger: logger}
}

// MaintenanceIntervals configures MaintenanceJobs. A zero interval disables
// the job.
type MaintenanceIntervals struct {
	Sweep        time.Duration
	Cleanup      time.Duration
	Retention    time.Duration
	DailyReset   time.Duration
	WeeklyReset  time.Duration
	MonthlyReset time.Duration
}

// MaintenanceJobs are the giveaway sweep, the ended-giveaway cleanup and the
// message bucket resets.
func MaintenanceJobs(in MaintenanceIntervals) []Job {
	candidates := []Job{
		{Name: "giveaway_sweep", Interval: in.Sweep, Command: func() dispatch.Command { return dispatch.SweepExpired{} }},
		{Name: "giveaway_cleanup", Interval: in.Cleanup, Command: func() dispatch.Command {
			return dispatch.PurgeEnded{Retention: in.Retention}
		}},
		{Name: "stats_daily_reset", Interval: in.DailyReset, Command: resetBucket(member.BucketDaily)},
		{Name: "stats_weekly_reset", Interval: in.WeeklyReset, Command: resetBucket(member.BucketWeekly)},
		{Name: "stats_monthly_reset", Interval: in.MonthlyReset, Command: resetBucket(member.BucketMonthly)},
	}
	jobs := make([]Job, 0, len(candidates))
	for _, j := range candidates {
		if j.Interval > 0 {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

func resetBucket(b member.Bucket) func() dispatch.Command {
	return func() dispatch.Command { return dispatch.ResetStatsBucket{Bucket: b} }
}

// Start launches the jobs. It returns immediately; jobs stop when ctx is done
// or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.logger.Info().Int("jobs", len(s.jobs)).Msg("Starting scheduler")
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
}

// Stop cancels every job and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	s.logger.Info().Msg("Stopping scheduler")
	cancel()
	s.wg.Wait()
	s.logger.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.run(ctx, job)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	if _, err := s.dispatcher.Dispatch(ctx, job.Command()); err != nil {
		s.logger.Error().Err(err).Str("job", job.Name).Msg("Scheduled job failed")
		return
	}
	s.logger.Debug().Str("job", job.Name).Msg("Scheduled job finished")
}
