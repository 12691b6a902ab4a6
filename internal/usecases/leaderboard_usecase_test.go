package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
)

func TestGetGlobalLeaderboard_CacheHit(t *testing.T) {
	cached := []*entities.LeaderboardEntry{{Username: "alice", Rank: 1, Score: 300}}
	cache := &stubLeaderboardCache{
		getTopFn: func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
			return cached, nil
		},
	}
	repo := &stubLeaderboardRepo{}
	usecase := NewLeaderboardUsecase(repo, &stubUserRepo{}, &stubProgressRepo{}, &stubBadgeRepo{}, cache, 100)

	got, err := usecase.GetGlobalLeaderboard(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	assert.Zero(t, repo.topCalls, "cache hit skips the database")
}

func TestGetGlobalLeaderboard_CacheMissFillsCache(t *testing.T) {
	entries := []*entities.LeaderboardEntry{{Username: "bob", Rank: 1, Score: 120}}
	repo := &stubLeaderboardRepo{
		topFn: func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
			return entries, nil
		},
	}
	cache := &stubLeaderboardCache{}
	usecase := NewLeaderboardUsecase(repo, &stubUserRepo{}, &stubProgressRepo{}, &stubBadgeRepo{}, cache, 100)

	got, err := usecase.GetGlobalLeaderboard(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
	assert.Equal(t, 1, repo.topCalls)
	assert.Equal(t, 1, cache.setTopCalls, "miss populates the cache")
}

func TestGetGlobalLeaderboard_CacheErrorFallsThrough(t *testing.T) {
	entries := []*entities.LeaderboardEntry{{Username: "carol", Rank: 1}}
	repo := &stubLeaderboardRepo{
		topFn: func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
			return entries, nil
		},
	}
	cache := &stubLeaderboardCache{
		getTopFn: func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
			return nil, errors.New("redis down")
		},
	}
	usecase := NewLeaderboardUsecase(repo, &stubUserRepo{}, &stubProgressRepo{}, &stubBadgeRepo{}, cache, 100)

	got, err := usecase.GetGlobalLeaderboard(context.Background(), 100)
	require.NoError(t, err, "cache failures never fail the read")
	assert.Equal(t, entries, got)
}

func TestGetUserRank(t *testing.T) {
	user := &entities.User{
		ID:            uuid.New(),
		WalletAddress: "rank-wallet",
		Username:      null.StringFrom("dave"),
		TotalScore:    250,
	}
	userRepo := &stubUserRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
			return user, nil
		},
		countWithHigherScoreFn: func(ctx context.Context, score int) (int64, error) {
			assert.Equal(t, 250, score)
			return 4, nil
		},
	}
	usecase := NewLeaderboardUsecase(&stubLeaderboardRepo{}, userRepo, &stubProgressRepo{}, &stubBadgeRepo{}, nil, 100)

	rank, err := usecase.GetUserRank(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, rank.Rank, "rank is one more than the higher-score count")
	assert.Equal(t, 250, rank.Score)
	assert.Equal(t, "dave", rank.Username)
	assert.Equal(t, "rank-wallet", rank.WalletAddress)
}

func TestGetUserRank_UserNotFound(t *testing.T) {
	usecase := NewLeaderboardUsecase(&stubLeaderboardRepo{}, &stubUserRepo{}, &stubProgressRepo{}, &stubBadgeRepo{}, nil, 100)

	_, err := usecase.GetUserRank(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRefresh(t *testing.T) {
	named := &entities.User{ID: uuid.New(), WalletAddress: "wallet-a", Username: null.StringFrom("alice"), TotalScore: 300, CurrentLevel: entities.DifficultyBuilder}
	unnamed := &entities.User{ID: uuid.New(), WalletAddress: "wallet-b", TotalScore: 50, CurrentLevel: entities.DifficultyNovice}

	userRepo := &stubUserRepo{
		listFn: func(ctx context.Context) ([]*entities.User, error) {
			return []*entities.User{named, unnamed}, nil
		},
	}
	progressRepo := &stubProgressRepo{
		countCompletedFn: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			if userID == named.ID {
				return 7, nil
			}
			return 1, nil
		},
	}
	badgeRepo := &stubBadgeRepo{
		countByUserFn: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			return 2, nil
		},
	}

	var upserted []*entities.LeaderboardEntry
	repo := &stubLeaderboardRepo{
		upsertFn: func(ctx context.Context, entries []*entities.LeaderboardEntry) error {
			upserted = entries
			return nil
		},
	}
	cache := &stubLeaderboardCache{}
	usecase := NewLeaderboardUsecase(repo, userRepo, progressRepo, badgeRepo, cache, 100)

	require.NoError(t, usecase.Refresh(context.Background()))

	require.Len(t, upserted, 2)
	assert.Equal(t, "alice", upserted[0].Username)
	assert.Equal(t, 7, upserted[0].QuestsCompleted)
	assert.Equal(t, "BUILDER", upserted[0].Level)
	assert.Equal(t, "Anonymous", upserted[1].Username, "users without a name rank as Anonymous")
	assert.Equal(t, 1, cache.invalidateCalls, "refresh drops the cached page")
}

func TestRefresh_UserListError(t *testing.T) {
	boom := errors.New("db down")
	userRepo := &stubUserRepo{
		listFn: func(ctx context.Context) ([]*entities.User, error) { return nil, boom },
	}
	usecase := NewLeaderboardUsecase(&stubLeaderboardRepo{}, userRepo, &stubProgressRepo{}, &stubBadgeRepo{}, nil, 100)

	assert.ErrorIs(t, usecase.Refresh(context.Background()), boom)
}
