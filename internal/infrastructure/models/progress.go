package models

import (
	"time"

	"github.com/google/uuid"
)

type Progress struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_quest;index:idx_progress_user_status"`
	QuestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_quest"`
	Status      string    `gorm:"type:varchar(20);not null;default:'NOT_STARTED';index:idx_progress_user_status"`
	Attempts    int       `gorm:"not null;default:0"`
	HintsUsed   int       `gorm:"not null;default:0"`
	TimeSpent   int       `gorm:"not null;default:0"`
	Code        string    `gorm:"type:text"`
	Score       int       `gorm:"not null;default:0"`
	StartedAt   time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}
