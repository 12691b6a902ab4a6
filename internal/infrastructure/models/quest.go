package models

import (
	"time"

	"github.com/google/uuid"
)

// Quest stores repeated content fields (hints, concepts, blocks,
// correct order) as JSON text columns.
type Quest struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text;not null"`
	Difficulty       string    `gorm:"type:varchar(20);not null;index:idx_quests_difficulty_order"`
	Type             string    `gorm:"type:varchar(32);not null"`
	Category         string    `gorm:"type:varchar(32);not null"`
	ExperienceReward int       `gorm:"not null"`
	SolReward        float64   `gorm:"not null;default:0"`
	SortOrder        int       `gorm:"not null;index:idx_quests_difficulty_order"`
	EstimatedTime    int       `gorm:"not null"`
	Instructions     string    `gorm:"type:text"`
	StarterCode      string    `gorm:"type:text"`
	Solution         string    `gorm:"type:text"`
	Hints            string    `gorm:"type:text"`
	Concepts         string    `gorm:"type:text"`
	VideoURL         string    `gorm:"type:varchar(255)"`
	AvailableBlocks  string    `gorm:"type:text"`
	CorrectOrder     string    `gorm:"type:text"`
	Explanation      string    `gorm:"type:text"`
	CreatedBy        *uuid.UUID `gorm:"type:uuid"`
	IsOfficial       bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
