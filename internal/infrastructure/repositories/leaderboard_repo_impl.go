package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quest-ring.backend/internal/domain/entities"
	"quest-ring.backend/internal/infrastructure/models"
)

// LeaderboardRepository implements leaderboard cache-table operations
type LeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Top returns the highest-scoring entries with ranks assigned by position
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	var entryModels []models.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(entryModels))
	for i := range entryModels {
		e := leaderboardToEntity(&entryModels[i])
		e.Rank = i + 1
		entries = append(entries, e)
	}
	return entries, nil
}

// Upsert writes one row per user, inserting or replacing on conflict
func (r *LeaderboardRepository) Upsert(ctx context.Context, entries []*entities.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		entryModels = append(entryModels, models.LeaderboardEntry{
			UserID:          e.UserID,
			Username:        e.Username,
			WalletAddress:   e.WalletAddress,
			Score:           e.Score,
			Level:           e.Level,
			QuestsCompleted: e.QuestsCompleted,
			BadgesEarned:    e.BadgesEarned,
			UpdatedAt:       time.Now(),
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "wallet_address", "score", "level",
			"quests_completed", "badges_earned", "updated_at",
		}),
	}).Create(&entryModels).Error
}

func leaderboardToEntity(m *models.LeaderboardEntry) *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		UserID:          m.UserID,
		Username:        m.Username,
		WalletAddress:   m.WalletAddress,
		Score:           m.Score,
		Level:           m.Level,
		QuestsCompleted: m.QuestsCompleted,
		BadgesEarned:    m.BadgesEarned,
		UpdatedAt:       m.UpdatedAt,
	}
}
