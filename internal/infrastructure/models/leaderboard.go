package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is the table name quirk: the table is a denormalized
// cache of user standings, keyed by user.
type LeaderboardEntry struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(20);not null;default:''"`
	WalletAddress   string    `gorm:"type:varchar(64);not null"`
	Score           int       `gorm:"not null;default:0;index"`
	Level           string    `gorm:"type:varchar(20);not null"`
	QuestsCompleted int       `gorm:"not null;default:0"`
	BadgesEarned    int       `gorm:"not null;default:0"`
	UpdatedAt       time.Time
}

// TableName overrides the GORM default pluralization
func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
