package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WalletAddress       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Username            *string   `gorm:"type:varchar(20);uniqueIndex"`
	CurrentLevel        string    `gorm:"type:varchar(20);not null;default:'NOVICE'"`
	Experience          int       `gorm:"not null;default:0"`
	PlaySolBalance      float64   `gorm:"not null;default:0"`
	DevnetWalletAddress *string   `gorm:"type:varchar(64)"`
	TotalScore          int       `gorm:"not null;default:0;index"`
	Streak              int       `gorm:"not null;default:0"`
	LastStreakDate      *time.Time
	JoinedAt            time.Time
	LastActive          time.Time
}
