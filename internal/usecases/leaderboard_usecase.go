package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quest-ring.backend/internal/domain/entities"
	"quest-ring.backend/internal/domain/repositories"
	"quest-ring.backend/pkg/logger"
)

// LeaderboardCache abstracts the redis-backed page cache so it can be
// stubbed in tests and skipped entirely when redis is unavailable.
type LeaderboardCache interface {
	GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	SetTop(ctx context.Context, limit int, entries []*entities.LeaderboardEntry) error
	Invalidate(ctx context.Context, limit int) error
}

// LeaderboardUsecase serves ranked standings and rebuilds the denormalized
// leaderboard table from the users table.
type LeaderboardUsecase struct {
	leaderboardRepo repositories.LeaderboardRepository
	userRepo        repositories.UserRepository
	progressRepo    repositories.ProgressRepository
	badgeRepo       repositories.BadgeRepository
	cache           LeaderboardCache
	defaultLimit    int
}

// NewLeaderboardUsecase creates a new leaderboard usecase. cache may be nil.
func NewLeaderboardUsecase(
	leaderboardRepo repositories.LeaderboardRepository,
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	badgeRepo repositories.BadgeRepository,
	cache LeaderboardCache,
	defaultLimit int,
) *LeaderboardUsecase {
	return &LeaderboardUsecase{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
		progressRepo:    progressRepo,
		badgeRepo:       badgeRepo,
		cache:           cache,
		defaultLimit:    defaultLimit,
	}
}

// GetGlobalLeaderboard returns the top entries with ranks assigned.
// Cache misses and cache errors both fall through to the database.
func (u *LeaderboardUsecase) GetGlobalLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = u.defaultLimit
	}

	if u.cache != nil {
		cached, err := u.cache.GetTop(ctx, limit)
		if err != nil {
			logger.Warn(ctx, "leaderboard cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	entries, err := u.leaderboardRepo.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetTop(ctx, limit, entries); err != nil {
			logger.Warn(ctx, "leaderboard cache write failed", zap.Error(err))
		}
	}
	return entries, nil
}

// GetUserRank computes a user's standing directly from the users table:
// rank is one more than the number of strictly higher total scores.
func (u *LeaderboardUsecase) GetUserRank(ctx context.Context, userID uuid.UUID) (*entities.UserRank, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	higher, err := u.userRepo.CountWithHigherScore(ctx, user.TotalScore)
	if err != nil {
		return nil, err
	}

	return &entities.UserRank{
		Rank:          int(higher) + 1,
		Score:         user.TotalScore,
		Username:      user.Username.String,
		WalletAddress: user.WalletAddress,
	}, nil
}

// Refresh rebuilds the leaderboard table with one row per user and drops
// the cached default page. Run by the scheduled job and the update
// endpoint.
func (u *LeaderboardUsecase) Refresh(ctx context.Context) error {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return err
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		completed, err := u.progressRepo.CountCompletedByUser(ctx, user.ID)
		if err != nil {
			return err
		}
		badges, err := u.badgeRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return err
		}

		username := user.Username.String
		if username == "" {
			username = "Anonymous"
		}

		entries = append(entries, &entities.LeaderboardEntry{
			UserID:          user.ID,
			Username:        username,
			WalletAddress:   user.WalletAddress,
			Score:           user.TotalScore,
			Level:           string(user.CurrentLevel),
			QuestsCompleted: int(completed),
			BadgesEarned:    int(badges),
		})
	}

	if err := u.leaderboardRepo.Upsert(ctx, entries); err != nil {
		return err
	}

	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, u.defaultLimit); err != nil {
			logger.Warn(ctx, "leaderboard cache invalidation failed", zap.Error(err))
		}
	}

	logger.Info(ctx, "leaderboard refreshed", zap.Int("entries", len(entries)))
	return nil
}
