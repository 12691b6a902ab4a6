package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quest-ring.backend/internal/domain/entities"
	"quest-ring.backend/internal/infrastructure/models"
)

// BadgeRepository implements badge operations
type BadgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// ListByUser lists the badges a user has earned
func (r *BadgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Badge, error) {
	var badgeModels []models.Badge
	err := r.db.WithContext(ctx).
		Joins("JOIN user_badges ub ON ub.badge_id = badges.id").
		Where("ub.user_id = ?", userID).
		Order("badges.created_at ASC").
		Find(&badgeModels).Error
	if err != nil {
		return nil, err
	}

	badges := make([]*entities.Badge, 0, len(badgeModels))
	for i := range badgeModels {
		b, err := badgeToEntity(&badgeModels[i])
		if err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, nil
}

// CountByUser counts a user's earned badges
func (r *BadgeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func badgeToEntity(m *models.Badge) (*entities.Badge, error) {
	var attributes map[string]string
	if m.Attributes != "" {
		if err := json.Unmarshal([]byte(m.Attributes), &attributes); err != nil {
			return nil, err
		}
	}

	return &entities.Badge{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Requirement: m.Requirement,
		Rarity:      entities.BadgeRarity(m.Rarity),
		MintAddress: m.MintAddress,
		ImageURI:    m.ImageURI,
		Attributes:  attributes,
		CreatedAt:   m.CreatedAt,
	}, nil
}
