package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quest-ring.backend/internal/domain/entities"
	domainerrors "quest-ring.backend/internal/domain/errors"
	"quest-ring.backend/internal/infrastructure/models"
)

// QuestRepository implements quest catalog operations
type QuestRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *gorm.DB) *QuestRepository {
	return &QuestRepository{db: db}
}

// Create creates a new quest
func (r *QuestRepository) Create(ctx context.Context, quest *entities.Quest) error {
	if quest.ID == uuid.Nil {
		quest.ID = uuid.New()
	}
	m, err := questToModel(quest)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a quest by ID, solution fields included
func (r *QuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Quest, error) {
	var m models.Quest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return questToEntity(&m)
}

// List lists quests, official first, then difficulty and sort order
func (r *QuestRepository) List(ctx context.Context, filter entities.QuestFilter) ([]*entities.Quest, error) {
	query := r.db.WithContext(ctx).
		Order("is_official DESC").
		Order("difficulty ASC").
		Order("sort_order ASC")

	switch filter {
	case entities.FilterOfficial:
		query = query.Where("is_official = ?", true)
	case entities.FilterCommunity:
		query = query.Where("is_official = ?", false)
	}

	var questModels []models.Quest
	if err := query.Find(&questModels).Error; err != nil {
		return nil, err
	}

	quests := make([]*entities.Quest, 0, len(questModels))
	for i := range questModels {
		q, err := questToEntity(&questModels[i])
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, nil
}

func questToModel(q *entities.Quest) (*models.Quest, error) {
	hints, err := marshalJSON(q.Content.Hints)
	if err != nil {
		return nil, err
	}
	concepts, err := marshalJSON(q.Content.Concepts)
	if err != nil {
		return nil, err
	}
	blocks, err := marshalJSON(q.Content.AvailableBlocks)
	if err != nil {
		return nil, err
	}
	order, err := marshalJSON(q.Content.CorrectOrder)
	if err != nil {
		return nil, err
	}

	return &models.Quest{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		Difficulty:       string(q.Difficulty),
		Type:             string(q.Type),
		Category:         string(q.Category),
		ExperienceReward: q.ExperienceReward,
		SolReward:        q.SolReward,
		SortOrder:        q.SortOrder,
		EstimatedTime:    q.EstimatedTime,
		Instructions:     q.Content.Instructions,
		StarterCode:      q.Content.StarterCode,
		Solution:         q.Content.Solution,
		Hints:            hints,
		Concepts:         concepts,
		VideoURL:         q.Content.VideoURL,
		AvailableBlocks:  blocks,
		CorrectOrder:     order,
		Explanation:      q.Content.Explanation,
		CreatedBy:        q.CreatedBy,
		IsOfficial:       q.IsOfficial,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}, nil
}

func questToEntity(m *models.Quest) (*entities.Quest, error) {
	var hints, concepts, order []string
	var blocks []entities.Block
	if err := unmarshalJSON(m.Hints, &hints); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(m.Concepts, &concepts); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(m.AvailableBlocks, &blocks); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(m.CorrectOrder, &order); err != nil {
		return nil, err
	}

	return &entities.Quest{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Difficulty:       entities.DifficultyLevel(m.Difficulty),
		Type:             entities.QuestType(m.Type),
		Category:         entities.QuestCategory(m.Category),
		ExperienceReward: m.ExperienceReward,
		SolReward:        m.SolReward,
		SortOrder:        m.SortOrder,
		EstimatedTime:    m.EstimatedTime,
		Content: entities.QuestContent{
			Instructions:    m.Instructions,
			StarterCode:     m.StarterCode,
			Solution:        m.Solution,
			Hints:           hints,
			Concepts:        concepts,
			VideoURL:        m.VideoURL,
			AvailableBlocks: blocks,
			CorrectOrder:    order,
			Explanation:     m.Explanation,
		},
		CreatedBy:  m.CreatedBy,
		IsOfficial: m.IsOfficial,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func marshalJSON(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalJSON(raw string, v interface{}) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}
