package repositories

import (
	"context"

	"github.com/google/uuid"
	"quest-ring.backend/internal/domain/entities"
)

// QuestRepository defines quest catalog operations
type QuestRepository interface {
	Create(ctx context.Context, quest *entities.Quest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Quest, error)
	List(ctx context.Context, filter entities.QuestFilter) ([]*entities.Quest, error)
}

// ProgressRepository defines per-user quest progress operations
type ProgressRepository interface {
	Create(ctx context.Context, progress *entities.Progress) error
	GetByUserAndQuest(ctx context.Context, userID, questID uuid.UUID) (*entities.Progress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Progress, error)
	Update(ctx context.Context, progress *entities.Progress) error
	CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
