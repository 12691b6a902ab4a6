package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProgressStatus represents the lifecycle state of a user's quest attempt
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "NOT_STARTED"
	ProgressInProgress ProgressStatus = "IN_PROGRESS"
	ProgressCompleted  ProgressStatus = "COMPLETED"
	ProgressFailed     ProgressStatus = "FAILED"
)

// Progress tracks one user's attempts at one quest. The (UserID, QuestID)
// pair is unique.
type Progress struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	QuestID     uuid.UUID      `json:"questId"`
	Status      ProgressStatus `json:"status"`
	Attempts    int            `json:"attempts"`
	HintsUsed   int            `json:"hintsUsed"`
	TimeSpent   int            `json:"timeSpent"`
	Code        string         `json:"code,omitempty"`
	Score       int            `json:"score"`
	StartedAt   time.Time      `json:"startedAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ProfileStats summarizes a user's progress records
type ProfileStats struct {
	CompletedQuests  int `json:"completedQuests"`
	InProgressQuests int `json:"inProgressQuests"`
	TotalQuests      int `json:"totalQuests"`
	BadgesEarned     int `json:"badgesEarned"`
}

// Profile bundles everything the profile endpoint returns
type Profile struct {
	User              *User        `json:"user"`
	Stats             ProfileStats `json:"stats"`
	CompletedQuestIDs []uuid.UUID  `json:"completedQuestIds"`
}
