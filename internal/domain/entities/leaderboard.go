package entities

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a denormalized ranking row, rebuilt from the users
// table by the refresh job. Rank is assigned at read time.
type LeaderboardEntry struct {
	UserID          uuid.UUID `json:"userId"`
	Username        string    `json:"username"`
	WalletAddress   string    `json:"walletAddress"`
	Score           int       `json:"score"`
	Level           string    `json:"level"`
	QuestsCompleted int       `json:"questsCompleted"`
	BadgesEarned    int       `json:"badgesEarned"`
	Rank            int       `json:"rank,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserRank is the my-rank projection
type UserRank struct {
	Rank          int    `json:"rank"`
	Score         int    `json:"score"`
	Username      string `json:"username,omitempty"`
	WalletAddress string `json:"walletAddress"`
}
