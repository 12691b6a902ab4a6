package repositories

import (
	"context"

	"github.com/google/uuid"
	"quest-ring.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	TouchLastActive(ctx context.Context, id uuid.UUID) error
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error
	ApplyQuestRewards(ctx context.Context, id uuid.UUID, experience int, sol float64, score int) error
	List(ctx context.Context) ([]*entities.User, error)
	CountWithHigherScore(ctx context.Context, score int) (int64, error)
}
