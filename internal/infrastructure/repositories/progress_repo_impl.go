package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/infrastructure/models"
)

// ProgressRepository implements per-user quest progress operations
type ProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create creates a progress record. The unique (user, quest) index rejects
// duplicates.
func (r *ProgressRepository) Create(ctx context.Context, progress *entities.Progress) error {
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	if progress.StartedAt.IsZero() {
		progress.StartedAt = time.Now()
	}
	progress.UpdatedAt = time.Now()
	m := progressToModel(progress)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserAndQuest gets the progress record for one user on one quest
func (r *ProgressRepository) GetByUserAndQuest(ctx context.Context, userID, questID uuid.UUID) (*entities.Progress, error) {
	var m models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quest_id = ?", userID, questID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return progressToEntity(&m), nil
}

// ListByUser lists all progress records for a user
func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Progress, error) {
	var progressModels []models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&progressModels).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entities.Progress, 0, len(progressModels))
	for i := range progressModels {
		records = append(records, progressToEntity(&progressModels[i]))
	}
	return records, nil
}

// Update persists the mutable fields of a progress record
func (r *ProgressRepository) Update(ctx context.Context, progress *entities.Progress) error {
	updates := map[string]interface{}{
		"status":     string(progress.Status),
		"attempts":   progress.Attempts,
		"hints_used": progress.HintsUsed,
		"time_spent": progress.TimeSpent,
		"code":       progress.Code,
		"score":      progress.Score,
		"started_at": progress.StartedAt,
		"updated_at": time.Now(),
	}
	if progress.CompletedAt != nil {
		updates["completed_at"] = *progress.CompletedAt
	}

	result := r.db.WithContext(ctx).Model(&models.Progress{}).
		Where("id = ?", progress.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountCompletedByUser counts a user's completed quests
func (r *ProgressRepository) CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Progress{}).
		Where("user_id = ? AND status = ?", userID, string(entities.ProgressCompleted)).
		Count(&count).Error
	return count, err
}

func progressToModel(p *entities.Progress) *models.Progress {
	return &models.Progress{
		ID:          p.ID,
		UserID:      p.UserID,
		QuestID:     p.QuestID,
		Status:      string(p.Status),
		Attempts:    p.Attempts,
		HintsUsed:   p.HintsUsed,
		TimeSpent:   p.TimeSpent,
		Code:        p.Code,
		Score:       p.Score,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func progressToEntity(m *models.Progress) *entities.Progress {
	return &entities.Progress{
		ID:          m.ID,
		UserID:      m.UserID,
		QuestID:     m.QuestID,
		Status:      entities.ProgressStatus(m.Status),
		Attempts:    m.Attempts,
		HintsUsed:   m.HintsUsed,
		TimeSpent:   m.TimeSpent,
		Code:        m.Code,
		Score:       m.Score,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
