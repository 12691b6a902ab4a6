package models

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text;not null"`
	Icon        string    `gorm:"type:varchar(100);not null"`
	Requirement string    `gorm:"type:text;not null"`
	Rarity      string    `gorm:"type:varchar(20);not null;default:'COMMON'"`
	MintAddress string    `gorm:"type:varchar(64)"`
	ImageURI    string    `gorm:"type:varchar(255)"`
	Attributes  string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// UserBadge joins users to earned badges
type UserBadge struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BadgeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AwardedAt time.Time
}
