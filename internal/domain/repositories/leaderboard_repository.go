package repositories

import (
	"context"

	"github.com/google/uuid"
	"quest-ring.backend/internal/domain/entities"
)

// LeaderboardRepository defines leaderboard cache-table operations
type LeaderboardRepository interface {
	Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	Upsert(ctx context.Context, entries []*entities.LeaderboardEntry) error
}

// BadgeRepository defines badge operations
type BadgeRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Badge, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
