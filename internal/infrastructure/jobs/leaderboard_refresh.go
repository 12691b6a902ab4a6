package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"quest-ring.backend/internal/usecases"
	"quest-ring.backend/pkg/logger"
)

// LeaderboardRefreshJob periodically rebuilds the leaderboard table from
// the users table.
type LeaderboardRefreshJob struct {
	usecase   *usecases.LeaderboardUsecase
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewLeaderboardRefreshJob(usecase *usecases.LeaderboardUsecase, interval time.Duration) *LeaderboardRefreshJob {
	return &LeaderboardRefreshJob{
		usecase:  usecase,
		interval: interval,
	}
}

// Start runs one refresh immediately, then repeats on the configured
// interval until Stop or context cancellation.
func (j *LeaderboardRefreshJob) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	j.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			j.refresh(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	logger.Info(ctx, "Leaderboard refresh job started", zap.Duration("interval", j.interval))
	return nil
}

func (j *LeaderboardRefreshJob) Stop() {
	if j.scheduler == nil {
		return
	}
	if err := j.scheduler.Shutdown(); err != nil {
		logger.Warn(context.Background(), "Leaderboard refresh job shutdown error", zap.Error(err))
	}
}

func (j *LeaderboardRefreshJob) refresh(ctx context.Context) {
	if err := j.usecase.Refresh(ctx); err != nil {
		logger.Error(ctx, "Leaderboard refresh failed", zap.Error(err))
		return
	}
	logger.Debug(ctx, "Leaderboard refreshed")
}
