// internal/scheduler/jobs.go
package scheduler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/config"
	"github.com/tvidela/clubcancha/internal/db"
	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
	"github.com/tvidela/clubcancha/internal/dues"
	"github.com/tvidela/clubcancha/internal/params"
)

const (
	jobDuesEmission   = "dues-emission"
	jobDuesPurge      = "dues-purge"
	jobJobRunsCleanup = "job-runs-cleanup"
)

// RegisterJobs wires the periodic dues procedures and the job-history
// cleanup. The dues job polls every minute and fires throughout the
// club's emission day and hour, so a missed tick retries a minute
// later; re-running is safe since emission skips periods that already
// exist.
func RegisterJobs(s *Scheduler, database *db.DB, engine *dues.Engine, paramStore *params.Store, clk clock.Clock, cfg config.JobsConfig, clubID int64) error {
	if err := s.AddCron(jobDuesEmission, cfg.DuesCron, func(ctx context.Context) {
		runDues(ctx, database, engine, paramStore, clk, clubID)
	}); err != nil {
		return err
	}

	return s.AddCron(jobJobRunsCleanup, cfg.HistoryCleanupCron, func(ctx context.Context) {
		runCleanup(ctx, database, clk, cfg.JobRunRetentionDays)
	})
}

func runDues(ctx context.Context, database *db.DB, engine *dues.Engine, paramStore *params.Store, clk clock.Clock, clubID int64) {
	now := clk.Now()
	p, err := paramStore.Dues(ctx, clubID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("could not load dues params")
		return
	}

	if int64(now.Day()) == p.EmissionDay && int64(now.Hour()) == p.EmissionHour {
		emitted, err := engine.EmitDuesForPeriod(ctx, int(now.Month()), now.Year(), 0, "scheduler")
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("dues emission failed")
		} else {
			log.Ctx(ctx).Info().Int("emitted", emitted).Msg("dues emission finished")
			recordJobRun(ctx, database, clk, jobDuesEmission, fmt.Sprintf("emitted %d", emitted))
		}
	}

	if now.Day() == 1 && int64(now.Hour()) == p.EmissionHour {
		purged, err := engine.PurgeDelinquentMembers(ctx, "scheduler")
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("delinquency purge failed")
		} else {
			log.Ctx(ctx).Info().Int("purged", purged).Msg("delinquency purge finished")
			recordJobRun(ctx, database, clk, jobDuesPurge, fmt.Sprintf("purged %d", purged))
		}
	}
}

func runCleanup(ctx context.Context, database *db.DB, clk clock.Clock, retentionDays int) {
	cutoff := clk.Now().AddDate(0, 0, -retentionDays)
	deleted, err := database.Queries.DeleteJobRunsBefore(ctx, cutoff)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("job run cleanup failed")
		return
	}
	log.Ctx(ctx).Info().Int64("deleted", deleted).Msg("job run cleanup finished")
	recordJobRun(ctx, database, clk, jobJobRunsCleanup, fmt.Sprintf("deleted %d", deleted))
}

func recordJobRun(ctx context.Context, database *db.DB, clk clock.Clock, name, detail string) {
	if err := database.Queries.InsertJobRun(ctx, dbgen.InsertJobRunParams{
		JobName: name,
		RanAt:   clk.Now(),
		Detail:  detail,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("job", name).Msg("could not record job run")
	}
}
