// internal/scheduler/scheduler.go

// Package scheduler runs the in-process periodic jobs. Jobs poll on
// fixed cron expressions and gate themselves on club parameters, so a
// parameter change takes effect without restarting anything.
package scheduler

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	scheduler gocron.Scheduler
	log       zerolog.Logger
}

func New(logger zerolog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error().
						Str("job", jobName).
						Interface("panic", recoverData).
						Msg("scheduled job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, log: logger}, nil
}

// AddCron registers a job. The task context carries a job-scoped
// logger.
func (s *Scheduler) AddCron(name, expr string, fn func(context.Context)) error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(func() {
			jobLogger := s.log.With().Str("job", name).Logger()
			fn(jobLogger.WithContext(context.Background()))
		}),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("error scheduling %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}
